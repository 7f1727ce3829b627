package render

import (
	"bytes"
	"encoding/json"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/gallifreyan/pkg/gallifreyan"
	"github.com/ha1tch/gallifreyan/pkg/geom"
	"github.com/ha1tch/gallifreyan/pkg/plotter"
)

func renderHI(t *testing.T) []plotter.Drawing {
	t.Helper()
	drawings, err := plotter.RenderText("hi", gallifreyan.DefaultGeometry(), plotter.DefaultPalette())
	require.NoError(t, err)
	return drawings
}

func TestViewport(t *testing.T) {
	world := geom.Rect{MinX: -20, MinY: -20, MaxX: 20, MaxY: 20}
	vp := newViewport(world, 640, 640, 20, 0)
	assert.InDelta(t, 15.0, vp.scale, 1e-9)

	x, y := vp.toPixel(geom.Zero)
	assert.InDelta(t, 320.0, x, 1e-9)
	assert.InDelta(t, 320.0, y, 1e-9)

	// y grows downwards on the canvas
	x, y = vp.toPixel(geom.Vector{X: 0, Y: 10})
	assert.InDelta(t, 320.0, x, 1e-9)
	assert.InDelta(t, 170.0, y, 1e-9)
}

func TestWorldBounds(t *testing.T) {
	r := worldBounds(nil, 20)
	assert.Equal(t, geom.Rect{MinX: -20, MinY: -20, MaxX: 20, MaxY: 20}, r)

	// Fitting an empty drawing falls back to a unit window
	r = worldBounds(nil, 0)
	assert.False(t, r.Empty())

	d := []plotter.Drawing{{Series: [][]geom.Vector{{{X: 0, Y: 0}, {X: 4, Y: 2}}}}}
	r = worldBounds(d, 0)
	assert.InDelta(t, r.Width(), r.Height(), 1e-9)
	assert.InDelta(t, 2.0, r.Center().X, 1e-9)
	assert.InDelta(t, 1.0, r.Center().Y, 1e-9)
}

func TestRenderPNG(t *testing.T) {
	opts := DefaultPNGOptions()
	opts.Width, opts.Height = 200, 200
	opts.Supersample = 2
	opts.Title = "HI"

	var buf bytes.Buffer
	require.NoError(t, RenderPNG(renderHI(t), &buf, opts))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Greater(t, min(r, g, b), uint32(0xf000), "corner should stay background")

	inked := 0
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if min(r, g, b) < 0xc000 {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 100, "glyph strokes should be visible")
}

func TestRenderImageSinglePass(t *testing.T) {
	opts := DefaultPNGOptions()
	opts.Width, opts.Height = 64, 48
	opts.Supersample = 0

	img, err := RenderImage(renderHI(t), opts)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestGenerateSVG(t *testing.T) {
	opts := DefaultSVGOptions()
	opts.Title = "<hi>"
	svg := GenerateSVG(renderHI(t), opts)

	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(svg), "</svg>"))
	assert.Contains(t, svg, `width="640" height="640"`)
	assert.Contains(t, svg, `viewBox="0 0 6400 6400"`)
	assert.Contains(t, svg, "&lt;hi&gt;")
	assert.NotContains(t, svg, "<hi>")
	assert.Contains(t, svg, `stroke="#00ff00"`)
	assert.Contains(t, svg, `stroke="#2196f3"`)

	// HI: crescent, line pair, core, vowel line, notch, outer circle and
	// word and sentence edges; no dots
	assert.NotContains(t, svg, "<circle")
	assert.GreaterOrEqual(t, strings.Count(svg, "<polyline"), 8)
}

func TestGenerateSVGDots(t *testing.T) {
	d := []plotter.Drawing{{
		Series: [][]geom.Vector{{{X: 1, Y: 1}}, {{X: -1, Y: 1}}},
		Style:  plotter.Style{Color: color.RGBA{255, 0, 0, 255}, Width: 2, Filled: true},
	}}
	svg := GenerateSVG(d, SVGOptions{})
	assert.Equal(t, 2, strings.Count(svg, "<circle"))
	assert.Contains(t, svg, `fill="#ff0000"`)
	assert.NotContains(t, svg, "<text")
}

func TestToJSON(t *testing.T) {
	drawings := renderHI(t)
	data, err := ToJSON(drawings, false)
	require.NoError(t, err)

	var out []struct {
		Color  string         `json:"color"`
		Width  float64        `json:"width"`
		Series [][][2]float64 `json:"series"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, len(drawings))
	for i, d := range drawings {
		assert.Equal(t, hexColor(d.Style.Color), out[i].Color)
		assert.Len(t, out[i].Series, len(d.Series))
	}
}

func TestPlotsToJSON(t *testing.T) {
	plots, err := gallifreyan.LayoutSentence("hi", gallifreyan.DefaultGeometry())
	require.NoError(t, err)

	data, err := PlotsToJSON(plots, true)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ")

	var out []jsonPlot
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, len(plots))
	assert.Equal(t, "Crescent", out[0].Kind)
	assert.Equal(t, plots[0].Vector.X, out[0].Center[0])
}

func TestRasterizeDot(t *testing.T) {
	d := []plotter.Drawing{{
		Series: [][]geom.Vector{{geom.Zero}},
		Style:  plotter.Style{Filled: true, Width: 1},
	}}
	g := Rasterize(d, 21, 11, 10)
	assert.Equal(t, 'o', g.At(10, 5).Ch)
	assert.Equal(t, ' ', g.At(0, 0).Ch)
	assert.Equal(t, ' ', g.At(-1, 100).Ch)
}

func TestRasterizeCircle(t *testing.T) {
	circle := plotter.DrawArc(geom.Zero, 8, 0, 2*3.141592653589793, 0, 1)
	d := []plotter.Drawing{{Series: [][]geom.Vector{circle}, Style: plotter.Style{Width: 1}}}
	g := Rasterize(d, 40, 20, 10)

	text := g.String()
	assert.Equal(t, 20, strings.Count(text, "\n"))
	assert.Greater(t, strings.Count(text, "*"), 20)
	assert.Equal(t, ' ', g.At(20, 10).Ch, "circle interior stays blank")
}

func TestRasterizeEmpty(t *testing.T) {
	g := Rasterize(nil, 0, 0, 10)
	assert.Empty(t, g.String())
}
