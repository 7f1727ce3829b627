// Bounding-box helpers for fitting drawings onto a canvas.

package geom

import "math"

// Rect represents an axis-aligned rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vector {
	return Vector{(r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// Bounds returns the bounding box of the points plus a margin expressed as a
// fraction of each dimension. Returns the zero Rect for no points.
func Bounds(points []Vector, margin float64) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	r := Rect{points[0].X, points[0].Y, points[0].X, points[0].Y}
	for _, p := range points {
		if p.X < r.MinX {
			r.MinX = p.X
		}
		if p.Y < r.MinY {
			r.MinY = p.Y
		}
		if p.X > r.MaxX {
			r.MaxX = p.X
		}
		if p.Y > r.MaxY {
			r.MaxY = p.Y
		}
	}

	dx := r.Width() * margin
	dy := r.Height() * margin
	return Rect{r.MinX - dx, r.MinY - dy, r.MaxX + dx, r.MaxY + dy}
}

// Square expands the shorter side of r around its centre so both sides match.
func Square(r Rect) Rect {
	c := r.Center()
	half := math.Max(r.Width(), r.Height()) / 2
	return Rect{c.X - half, c.Y - half, c.X + half, c.Y + half}
}
