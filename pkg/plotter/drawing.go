package plotter

import (
	"image/color"

	"github.com/ha1tch/gallifreyan/pkg/geom"
)

// Style describes how a drawing is stroked or filled.
type Style struct {
	Color  color.RGBA
	Width  float64 // stroke width, or dot radius when Filled, in pixels
	Filled bool
}

// Drawing is a group of point series sharing one style. A series of one
// point is a dot; longer series are open polylines.
type Drawing struct {
	Series [][]geom.Vector
	Style  Style
}

// Palette assigns styles to the families of parts.
type Palette struct {
	Edge  Style // word and sentence circle arcs
	Base  Style // letter bases and the outer circle
	Dot   Style
	Line  Style
	Notch Style
}

// Colors used in rendering
var (
	colorGreen = color.RGBA{0, 255, 0, 255}
	colorBlue  = color.RGBA{33, 150, 243, 255} // #2196f3
	colorRed   = color.RGBA{255, 0, 0, 255}
	colorBrown = color.RGBA{121, 85, 72, 255} // #795548
)

// DefaultPalette returns the reference colours.
func DefaultPalette() Palette {
	return Palette{
		Edge:  Style{Color: colorGreen, Width: 2},
		Base:  Style{Color: colorBlue, Width: 1},
		Dot:   Style{Color: colorRed, Width: 2, Filled: true},
		Line:  Style{Color: colorBlue, Width: 1},
		Notch: Style{Color: colorBrown, Width: 1},
	}
}

// Points flattens every series of every drawing.
func Points(drawings []Drawing) []geom.Vector {
	var pts []geom.Vector
	for _, d := range drawings {
		for _, s := range d.Series {
			pts = append(pts, s...)
		}
	}
	return pts
}
