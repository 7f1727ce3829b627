// Package geom provides the 2D vector primitive used by the glyph layout.
// Vectors are stored in Cartesian form and built from or decomposed into
// polar coordinates on demand.
package geom

import "math"

// Vector represents a 2D coordinate.
type Vector struct {
	X, Y float64
}

// Zero is the origin.
var Zero = Vector{}

// FromPolar builds a vector from a radius and an angle in radians.
func FromPolar(radius, angle float64) Vector {
	return Vector{
		X: radius * math.Cos(angle),
		Y: radius * math.Sin(angle),
	}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{v.X * k, v.Y * k}
}

// Radius returns the distance from the origin.
func (v Vector) Radius() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the polar angle in (-π, π].
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Polar decomposes v into radius and angle.
func (v Vector) Polar() (radius, angle float64) {
	return v.Radius(), v.Angle()
}

// Distance returns |v - o|.
func (v Vector) Distance(o Vector) float64 {
	return v.Sub(o).Radius()
}

// ApproxEqual reports whether both components differ by at most eps.
func (v Vector) ApproxEqual(o Vector, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// NormalizeAngle maps an angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
