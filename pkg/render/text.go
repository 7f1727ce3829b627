package render

import (
	"image/color"
	"math"
	"strings"

	"github.com/ha1tch/gallifreyan/pkg/plotter"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2

// Cell is one character of a rasterized glyph.
type Cell struct {
	Ch    rune
	Color color.RGBA
}

// Grid is a character raster of a glyph, row-major.
type Grid struct {
	Cols, Rows int
	Cells      []Cell
}

// At returns the cell at column x, row y. Out-of-range cells are blank.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.Cols || y >= g.Rows {
		return Cell{Ch: ' '}
	}
	return g.Cells[y*g.Cols+x]
}

func (g *Grid) set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= g.Cols || y >= g.Rows {
		return
	}
	// Dots win over strokes
	if cur := g.Cells[y*g.Cols+x]; cur.Ch == 'o' && c.Ch != 'o' {
		return
	}
	g.Cells[y*g.Cols+x] = c
}

// String renders the grid as plain text, trailing spaces trimmed.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.Rows; y++ {
		var line strings.Builder
		for x := 0; x < g.Cols; x++ {
			line.WriteRune(g.At(x, y).Ch)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Rasterize draws the drawings onto a cols x rows character grid. Strokes
// become '*', dots become 'o'. extent works as in PNGOptions.
func Rasterize(drawings []plotter.Drawing, cols, rows int, extent float64) *Grid {
	g := &Grid{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	for i := range g.Cells {
		g.Cells[i].Ch = ' '
	}
	if cols <= 0 || rows <= 0 {
		return g
	}

	// Lay out on a square-pixel canvas, then squash rows
	vp := newViewport(worldBounds(drawings, extent), cols, rows*cellAspect, 0, 0)
	plot := func(x, y float64, c Cell) {
		g.set(int(math.Floor(x)), int(math.Floor(y/cellAspect)), c)
	}

	for _, d := range drawings {
		for _, series := range d.Series {
			if len(series) == 1 || d.Style.Filled {
				for _, p := range series {
					x, y := vp.toPixel(p)
					plot(x, y, Cell{Ch: 'o', Color: d.Style.Color})
				}
				continue
			}
			for i := 1; i < len(series); i++ {
				x0, y0 := vp.toPixel(series[i-1])
				x1, y1 := vp.toPixel(series[i])
				steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)) * 2))
				if steps < 1 {
					steps = 1
				}
				for s := 0; s <= steps; s++ {
					t := float64(s) / float64(steps)
					plot(x0+(x1-x0)*t, y0+(y1-y0)*t, Cell{Ch: '*', Color: d.Style.Color})
				}
			}
		}
	}
	return g
}
