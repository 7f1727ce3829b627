package plotter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/gallifreyan/pkg/geom"
)

const eps = 1e-9

func TestDrawBaseRanges(t *testing.T) {
	origin := geom.Vector{X: 3, Y: -2}

	tests := []struct {
		name       string
		start, end float64
		want       int
	}{
		{"full circle", 0, 2 * math.Pi, 361},
		{"crescent wraps", math.Pi / 6, -math.Pi / 6, 301},
		{"quarter wraps", 5 * math.Pi / 9, -5 * math.Pi / 9, 161},
		{"notch", -math.Pi / 2, math.Pi / 2, 181},
		{"equal bounds go all the way round", 1, 1, 361},
		{"wraps past a full turn", 4.596488, -1.769054, 0},
		{"rounds away to nothing", 1, 1.001, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := DrawBase(origin, 2, tt.start, tt.end, 0)
			require.Len(t, pts, tt.want)
			for _, p := range pts {
				assert.InDelta(t, 2, p.Distance(origin), eps)
			}
		})
	}
}

func TestDrawBaseRotation(t *testing.T) {
	pts := DrawBase(geom.Zero, 1, math.Pi/6, -math.Pi/6, math.Pi/2)
	want := geom.FromPolar(1, math.Pi/6+math.Pi/2)
	assert.True(t, pts[0].ApproxEqual(want, eps), "got %v want %v", pts[0], want)

	last := pts[len(pts)-1]
	want = geom.FromPolar(1, 330*math.Pi/180+math.Pi/2)
	assert.True(t, last.ApproxEqual(want, eps), "got %v want %v", last, want)
}

func TestDrawBaseDeterministic(t *testing.T) {
	a := DrawBase(geom.Vector{X: 1.5, Y: 2}, 5, 0.3, -0.3, 1.1)
	b := DrawBase(geom.Vector{X: 1.5, Y: 2}, 5, 0.3, -0.3, 1.1)
	assert.Equal(t, a, b)
}

func TestDrawArcStep(t *testing.T) {
	pts := DrawArc(geom.Zero, 1, 0, 20*math.Pi/180, 0, 7)
	require.Len(t, pts, 4)
	assert.True(t, pts[3].ApproxEqual(geom.FromPolar(1, 20*math.Pi/180), eps))

	// Non-positive steps fall back to one degree
	assert.Len(t, DrawArc(geom.Zero, 1, 0, math.Pi, 0, 0), 181)
}

func TestDrawDots(t *testing.T) {
	series := DrawDots(geom.Vector{X: 1, Y: 1}, 1, 0.4, []float64{0, math.Pi / 2}, 0)
	require.Len(t, series, 2)
	require.Len(t, series[0], 1)
	assert.True(t, series[0][0].ApproxEqual(geom.Vector{X: -0.4, Y: 1}, eps))
	assert.True(t, series[1][0].ApproxEqual(geom.Vector{X: 1, Y: -0.4}, eps))
}

func TestDrawLines(t *testing.T) {
	series := DrawLines(geom.Zero, 2, []float64{0}, 0)
	require.Len(t, series, 1)
	require.Len(t, series[0], 2)
	assert.True(t, series[0][0].ApproxEqual(geom.Vector{X: -2, Y: 0}, eps))
	assert.True(t, series[0][1].ApproxEqual(geom.Vector{X: -3, Y: 0}, eps))

	rotated := DrawLines(geom.Zero, 2, []float64{0}, math.Pi)
	assert.True(t, rotated[0][0].ApproxEqual(geom.Vector{X: 2, Y: 0}, eps))
}
