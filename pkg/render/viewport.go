// Package render writes glyph drawings to PNG, SVG, JSON and character
// grids.
package render

import (
	"math"

	"github.com/ha1tch/gallifreyan/pkg/geom"
	"github.com/ha1tch/gallifreyan/pkg/plotter"
)

// viewport maps world coordinates (y up) onto a pixel canvas (y down),
// preserving aspect ratio and centring the content.
type viewport struct {
	world   geom.Rect
	scale   float64
	offsetX float64
	offsetY float64
}

// worldBounds returns ±extent when extent is positive, otherwise the square
// bounding box of the drawings.
func worldBounds(drawings []plotter.Drawing, extent float64) geom.Rect {
	if extent > 0 {
		return geom.Rect{MinX: -extent, MinY: -extent, MaxX: extent, MaxY: extent}
	}
	r := geom.Square(geom.Bounds(plotter.Points(drawings), 0.05))
	if r.Empty() {
		return geom.Rect{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}
	}
	return r
}

func newViewport(world geom.Rect, width, height, padding int, top float64) viewport {
	availableWidth := float64(width - 2*padding)
	availableHeight := float64(height-2*padding) - top

	scale := math.Min(availableWidth/world.Width(), availableHeight/world.Height())

	// Centre the content in the available area
	scaledWidth := world.Width() * scale
	scaledHeight := world.Height() * scale
	return viewport{
		world:   world,
		scale:   scale,
		offsetX: float64(padding) + (availableWidth-scaledWidth)/2,
		offsetY: float64(padding) + top + (availableHeight-scaledHeight)/2,
	}
}

func (v viewport) toPixel(p geom.Vector) (x, y float64) {
	x = v.offsetX + (p.X-v.world.MinX)*v.scale
	y = v.offsetY + (v.world.MaxY-p.Y)*v.scale
	return x, y
}
