package geom

import (
	"math"
	"testing"
)

func TestFromPolar(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		angle  float64
		want   Vector
	}{
		{"east", 1, 0, Vector{1, 0}},
		{"north", 2, math.Pi / 2, Vector{0, 2}},
		{"west", 3, math.Pi, Vector{-3, 0}},
		{"south", 1, -math.Pi / 2, Vector{0, -1}},
		{"zero radius", 0, 1.234, Vector{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromPolar(tt.radius, tt.angle)
			if !got.ApproxEqual(tt.want, 1e-12) {
				t.Errorf("FromPolar(%v, %v) = %v, want %v", tt.radius, tt.angle, got, tt.want)
			}
		})
	}
}

func TestPolarRoundTrip(t *testing.T) {
	for _, angle := range []float64{-3, -1.5, -0.1, 0.3, 1.2, 2.9} {
		v := FromPolar(4.5, angle)
		r, a := v.Polar()
		if math.Abs(r-4.5) > 1e-9 {
			t.Errorf("radius: got %.6f, want 4.5", r)
		}
		if math.Abs(a-angle) > 1e-9 {
			t.Errorf("angle: got %.6f, want %.6f", a, angle)
		}
	}
}

func TestVectorArithmetic(t *testing.T) {
	a := Vector{1, 2}
	b := Vector{3, -1}

	if got := a.Add(b); got != (Vector{4, 1}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vector{-2, 3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2.5); got != (Vector{2.5, 5}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := (Vector{3, 4}).Radius(); got != 5 {
		t.Errorf("Radius: got %v", got)
	}
	if got := a.Distance(a); got != 0 {
		t.Errorf("Distance to self: got %v", got)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{2 * math.Pi, 0},
	}
	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%.4f) = %.4f, want %.4f", tt.in, got, tt.want)
		}
	}
}

func TestBounds(t *testing.T) {
	points := []Vector{{0, 0}, {10, -5}, {-2, 8}}

	r := Bounds(points, 0)
	if r.MinX != -2 || r.MaxX != 10 || r.MinY != -5 || r.MaxY != 8 {
		t.Errorf("unexpected bounds %+v", r)
	}

	// Margin grows every side by 10% of the extent
	m := Bounds(points, 0.1)
	if math.Abs(m.MinX-(-3.2)) > 1e-9 || math.Abs(m.MaxY-9.3) > 1e-9 {
		t.Errorf("unexpected margin bounds %+v", m)
	}

	for i, p := range points {
		if p.X < m.MinX || p.X > m.MaxX || p.Y < m.MinY || p.Y > m.MaxY {
			t.Errorf("Point %d (%.2f, %.2f) outside bounds %+v", i, p.X, p.Y, m)
		}
	}

	if got := Bounds(nil, 0.1); got != (Rect{}) {
		t.Errorf("empty input should give zero rect, got %+v", got)
	}
}

func TestSquare(t *testing.T) {
	r := Square(Rect{0, 0, 10, 4})
	if r.Width() != r.Height() {
		t.Errorf("not square: %+v", r)
	}
	if c := r.Center(); c != (Vector{5, 2}) {
		t.Errorf("centre moved: %v", c)
	}
}

func TestRectUnion(t *testing.T) {
	u := Rect{0, 0, 1, 1}.Union(Rect{-1, 0.5, 0.5, 3})
	if u != (Rect{-1, 0, 1, 3}) {
		t.Errorf("unexpected union %+v", u)
	}
	if !(Rect{1, 1, 1, 5}).Empty() {
		t.Error("zero-width rect should be empty")
	}
}
