// Native PNG rendering for glyph drawings.
// Strokes are rasterized with rasterx at 4x and downsampled.

package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ha1tch/gallifreyan/pkg/geom"
	"github.com/ha1tch/gallifreyan/pkg/plotter"
)

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	Width       int
	Height      int
	Padding     int
	Title       string
	FontSize    int
	Extent      float64 // half-width of the world window; 0 fits the drawings
	Supersample int
	Background  color.RGBA
}

// DefaultPNGOptions returns the reference 640x640 canvas showing ±20 units.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Width:       640,
		Height:      640,
		Padding:     20,
		FontSize:    14,
		Extent:      20,
		Supersample: 4,
		Background:  color.RGBA{255, 255, 255, 255},
	}
}

var colorTitle = color.RGBA{51, 51, 51, 255} // #333

// renderContext holds rendering parameters including scale
type renderContext struct {
	img    *image.RGBA
	scale  float64 // supersampling multiplier for stroke widths and text
	dasher *rasterx.Dasher
	filler *rasterx.Filler
	face   font.Face
}

func newRenderContext(img *image.RGBA, scale, fontSize int) (*renderContext, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(fontSize * scale),
		DPI:     72,
		Hinting: font.HintingNone, // supersampled instead
	})
	if err != nil {
		return nil, err
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &renderContext{
		img:    img,
		scale:  float64(scale),
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, scanner),
		face:   face,
	}, nil
}

// RenderPNG renders drawings to PNG format.
func RenderPNG(drawings []plotter.Drawing, w io.Writer, opts PNGOptions) error {
	img, err := RenderImage(drawings, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// RenderImage renders drawings to an RGBA image of opts.Width x opts.Height.
func RenderImage(drawings []plotter.Drawing, opts PNGOptions) (*image.RGBA, error) {
	scale := opts.Supersample
	if scale < 1 {
		scale = 1
	}

	large := image.NewRGBA(image.Rect(0, 0, opts.Width*scale, opts.Height*scale))
	draw.Draw(large, large.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	ctx, err := newRenderContext(large, scale, opts.FontSize)
	if err != nil {
		return nil, err
	}

	titleSpace := 0.0
	if opts.Title != "" {
		titleSpace = float64(opts.FontSize*2) * ctx.scale
	}
	vp := newViewport(worldBounds(drawings, opts.Extent),
		large.Bounds().Dx(), large.Bounds().Dy(), opts.Padding*scale, titleSpace)

	for _, d := range drawings {
		for _, series := range d.Series {
			if len(series) == 0 {
				continue
			}
			if len(series) == 1 || d.Style.Filled {
				for _, p := range series {
					x, y := vp.toPixel(p)
					fillDot(ctx, x, y, d.Style.Width*ctx.scale, d.Style.Color)
				}
				continue
			}
			strokePolyline(ctx, vp, series, d.Style)
		}
	}

	if opts.Title != "" {
		drawTextCentered(ctx, large.Bounds().Dx()/2, int(titleSpace*0.6), opts.Title, colorTitle)
	}

	if scale == 1 {
		return large, nil
	}
	final := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(final, final.Bounds(), large, large.Bounds(), draw.Over, nil)
	return final, nil
}

func strokePolyline(ctx *renderContext, vp viewport, series []geom.Vector, style plotter.Style) {
	d := ctx.dasher
	d.Clear()
	width := style.Width * ctx.scale
	d.SetStroke(fixed.Int26_6(width*64), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	d.SetColor(style.Color)

	x, y := vp.toPixel(series[0])
	d.Start(rasterx.ToFixedP(x, y))
	for _, p := range series[1:] {
		x, y = vp.toPixel(p)
		d.Line(rasterx.ToFixedP(x, y))
	}
	d.Stop(false)
	d.Draw()
}

func fillDot(ctx *renderContext, x, y, radius float64, c color.RGBA) {
	f := ctx.filler
	f.Clear()
	f.SetColor(c)
	rasterx.AddCircle(x, y, radius, f)
	f.Draw()
}

func drawTextCentered(ctx *renderContext, x, y int, text string, c color.Color) {
	width := font.MeasureString(ctx.face, text).Ceil()

	// Baseline sits a little below the centre line so caps look centred
	ascent := ctx.face.Metrics().Ascent.Ceil()
	baselineY := y + int(float64(ascent)*0.35)

	d := &font.Drawer{
		Dst:  ctx.img,
		Src:  image.NewUniform(c),
		Face: ctx.face,
		Dot:  fixed.Point26_6{X: fixed.I(x - width/2), Y: fixed.I(baselineY)},
	}
	d.DrawString(text)
}
