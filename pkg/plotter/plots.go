package plotter

import (
	"math"

	"github.com/ha1tch/gallifreyan/pkg/gallifreyan"
	"github.com/ha1tch/gallifreyan/pkg/geom"
)

var (
	dotAngles = map[gallifreyan.PartKind][]float64{
		gallifreyan.KindDot1: {0},
		gallifreyan.KindDot2: {-math.Pi / 4, math.Pi / 4},
		gallifreyan.KindDot3: {-math.Pi / 4, 0, math.Pi / 4},
		gallifreyan.KindDot4: {-math.Pi / 4, -math.Pi / 8, math.Pi / 8, math.Pi / 4},
	}
	lineAngles = map[gallifreyan.PartKind][]float64{
		gallifreyan.KindLine2: {-math.Pi / 4, math.Pi / 4},
		gallifreyan.KindLine3: {-math.Pi / 4, 0, math.Pi / 4},
	}
)

// DrawPlot converts one plot into its drawing.
func DrawPlot(p gallifreyan.Plot, g gallifreyan.Geometry, pal Palette) Drawing {
	arc := func(start, end float64) [][]geom.Vector {
		pts := DrawArc(p.Vector, p.Radius, start, end, p.Offset, g.ArcStep)
		if len(pts) < 2 {
			return nil
		}
		return [][]geom.Vector{pts}
	}

	switch k := p.Part.Kind(); k {
	case gallifreyan.KindEdge:
		start, end := p.Part.Span()
		return Drawing{Series: arc(start, end), Style: pal.Edge}
	case gallifreyan.KindMoon, gallifreyan.KindCore, gallifreyan.KindFull, gallifreyan.KindNew:
		return Drawing{Series: arc(0, 2*math.Pi), Style: pal.Base}
	case gallifreyan.KindCrescent:
		return Drawing{Series: arc(g.CrescentBaseOffset, -g.CrescentBaseOffset), Style: pal.Base}
	case gallifreyan.KindQuarter:
		return Drawing{Series: arc(g.QuarterBaseOffset, -g.QuarterBaseOffset), Style: pal.Base}
	case gallifreyan.KindNotch:
		return Drawing{Series: arc(-g.NotchBaseOffset, g.NotchBaseOffset), Style: pal.Notch}
	case gallifreyan.KindDot1, gallifreyan.KindDot2, gallifreyan.KindDot3, gallifreyan.KindDot4:
		return Drawing{
			Series: DrawDots(p.Vector, p.Radius, g.DotOffset, dotAngles[k], p.Offset),
			Style:  pal.Dot,
		}
	case gallifreyan.KindVowelLine1:
		return Drawing{
			Series: DrawLines(p.Vector, p.Radius, []float64{0}, p.Offset+p.Part.Angle()),
			Style:  pal.Line,
		}
	case gallifreyan.KindLine1:
		return Drawing{
			Series: DrawLines(p.Vector, p.Radius, []float64{math.Pi}, p.Offset+math.Pi),
			Style:  pal.Line,
		}
	case gallifreyan.KindLine2, gallifreyan.KindLine3:
		return Drawing{
			Series: DrawLines(p.Vector, p.Radius, lineAngles[k], p.Offset),
			Style:  pal.Line,
		}
	}
	panic("plotter: unhandled part " + p.Part.String())
}

// DrawPlots converts plots to drawings, one per plot, in order.
func DrawPlots(plots []gallifreyan.Plot, g gallifreyan.Geometry, pal Palette) []Drawing {
	drawings := make([]Drawing, 0, len(plots))
	for _, p := range plots {
		drawings = append(drawings, DrawPlot(p, g, pal))
	}
	return drawings
}

// RenderText lays out text and draws it.
func RenderText(text string, g gallifreyan.Geometry, pal Palette) ([]Drawing, error) {
	plots, err := gallifreyan.LayoutSentence(text, g)
	if err != nil {
		return nil, err
	}
	return DrawPlots(plots, g, pal), nil
}
