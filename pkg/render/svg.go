// Native SVG rendering for glyph drawings.

package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ha1tch/gallifreyan/pkg/plotter"
)

// svgo works in integer user units; the viewBox is this many times finer
// than the pixel size.
const svgUnits = 10

// SVGOptions controls native SVG rendering.
type SVGOptions struct {
	Width      int     // canvas width in pixels
	Height     int     // canvas height in pixels
	Padding    int     // padding around edges
	Title      string  // optional caption above the glyph
	FontSize   int     // title font size
	Extent     float64 // half-width of the world window; 0 fits the drawings
	Background color.RGBA
}

// DefaultSVGOptions returns the same canvas as DefaultPNGOptions.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:      640,
		Height:     640,
		Padding:    20,
		FontSize:   14,
		Extent:     20,
		Background: color.RGBA{255, 255, 255, 255},
	}
}

// GenerateSVG renders drawings to an SVG document.
func GenerateSVG(drawings []plotter.Drawing, opts SVGOptions) string {
	if opts.Width == 0 {
		opts.Width = 640
	}
	if opts.Height == 0 {
		opts.Height = 640
	}
	if opts.FontSize == 0 {
		opts.FontSize = 14
	}

	titleSpace := 0.0
	if opts.Title != "" {
		titleSpace = float64(opts.FontSize * 2)
	}
	vp := newViewport(worldBounds(drawings, opts.Extent), opts.Width, opts.Height, opts.Padding, titleSpace)
	units := func(v float64) int { return int(math.Round(v * svgUnits)) }

	var sb strings.Builder
	canvas := svg.New(&sb)
	canvas.Startview(opts.Width, opts.Height, 0, 0, opts.Width*svgUnits, opts.Height*svgUnits)

	if opts.Background.A != 0 {
		canvas.Rect(0, 0, opts.Width*svgUnits, opts.Height*svgUnits,
			fmt.Sprintf(`fill="%s"`, hexColor(opts.Background)))
	}

	if opts.Title != "" {
		canvas.Text(opts.Width*svgUnits/2, units(float64(opts.Padding)+titleSpace*0.6), opts.Title,
			fmt.Sprintf(`text-anchor="middle" font-family="sans-serif" font-size="%d" fill="#333333"`, opts.FontSize*svgUnits))
	}

	for _, d := range drawings {
		stroke := hexColor(d.Style.Color)
		for _, series := range d.Series {
			if len(series) == 0 {
				continue
			}
			if len(series) == 1 || d.Style.Filled {
				for _, p := range series {
					x, y := vp.toPixel(p)
					canvas.Circle(units(x), units(y), units(d.Style.Width), fmt.Sprintf(`fill="%s"`, stroke))
				}
				continue
			}

			xs := make([]int, len(series))
			ys := make([]int, len(series))
			for i, p := range series {
				x, y := vp.toPixel(p)
				xs[i], ys[i] = units(x), units(y)
			}
			canvas.Polyline(xs, ys, fmt.Sprintf(
				`fill="none" stroke="%s" stroke-width="%d" stroke-linecap="round" stroke-linejoin="round"`,
				stroke, units(d.Style.Width)))
		}
	}

	canvas.End()
	return sb.String()
}

func hexColor(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
