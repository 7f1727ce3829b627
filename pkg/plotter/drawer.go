// Package plotter turns laid-out glyph parts into polylines and dots.
package plotter

import (
	"math"

	"github.com/ha1tch/gallifreyan/pkg/geom"
)

// LineExtent is how far a radial mark reaches, as a multiple of its
// starting radius.
const LineExtent = 1.5

// DrawBase samples the arc of radius size around origin from start to end
// (radians) at 1 degree steps, rotated by rotation.
func DrawBase(origin geom.Vector, size, start, end, rotation float64) []geom.Vector {
	return DrawArc(origin, size, start, end, rotation, 1)
}

// DrawArc samples an arc at a fixed step in degrees. The range is rounded to
// whole degrees first; when start is not below end the arc runs the long way
// round, so (0, 0) is a full circle. An arc that wraps by more than a full
// turn, or that rounds away to nothing, yields no points.
func DrawArc(origin geom.Vector, size, start, end, rotation, step float64) []geom.Vector {
	span := end - start
	if span <= 0 {
		span += 2 * math.Pi
	}
	if span <= 0 {
		return nil
	}

	from := math.Round(start * 180 / math.Pi)
	to := math.Round(end * 180 / math.Pi)
	// Move to onto the same turn as from+span
	to += 360 * math.Round((from+span*180/math.Pi-to)/360)
	if to <= from {
		return nil
	}
	if step <= 0 {
		step = 1
	}

	n := int(math.Floor((to - from) / step))
	points := make([]geom.Vector, 0, n+2)
	for i := 0; i <= n; i++ {
		points = append(points, arcPoint(origin, size, from+float64(i)*step, rotation))
	}
	if from+float64(n)*step < to {
		points = append(points, arcPoint(origin, size, to, rotation))
	}
	return points
}

func arcPoint(origin geom.Vector, size, degrees, rotation float64) geom.Vector {
	return origin.Add(geom.FromPolar(size, degrees*math.Pi/180+rotation))
}

// DrawDots places one dot per angle, dotOffset beyond size, on the side of
// origin opposite the angle.
func DrawDots(origin geom.Vector, size, dotOffset float64, angles []float64, rotation float64) [][]geom.Vector {
	series := make([][]geom.Vector, 0, len(angles))
	for _, a := range angles {
		p := origin.Sub(geom.FromPolar(size+dotOffset, a+rotation))
		series = append(series, []geom.Vector{p})
	}
	return series
}

// DrawLines draws one radial tick per angle from size to LineExtent*size.
func DrawLines(origin geom.Vector, size float64, angles []float64, rotation float64) [][]geom.Vector {
	series := make([][]geom.Vector, 0, len(angles))
	for _, a := range angles {
		series = append(series, []geom.Vector{
			origin.Sub(geom.FromPolar(size, a+rotation)),
			origin.Sub(geom.FromPolar(LineExtent*size, a+rotation)),
		})
	}
	return series
}
