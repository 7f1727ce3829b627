package gallifreyan

import (
	"math"

	"github.com/ha1tch/gallifreyan/pkg/geom"
)

// EdgeSpan returns the half-angle, seen from the centre of a circle of
// circleRadius, covered by a shape of shapeRadius whose rim opens by the
// kind's half-opening. ok is false for shapes that do not cut the circle.
func (g Geometry) EdgeSpan(k PartKind, shapeRadius, circleRadius float64) (half float64, ok bool) {
	opening, ok := g.halfOpening(k)
	if !ok {
		return 0, false
	}
	x := shapeRadius * math.Sin(opening) / circleRadius
	x = math.Max(-1, math.Min(1, x))
	return math.Asin(x), true
}

// gaps pairs the end of each span with the start of the next one, wrapping
// the last end around to the first start. Gaps closed by overlapping spans
// are dropped.
func gaps(bounds []float64) [][2]float64 {
	if len(bounds) < 2 {
		return nil
	}
	rotated := make([]float64, 0, len(bounds))
	rotated = append(rotated, bounds[1:]...)
	rotated = append(rotated, bounds[0])

	pairs := make([][2]float64, 0, len(rotated)/2)
	for i := 0; i+1 < len(rotated); i += 2 {
		start, end := rotated[i], rotated[i+1]
		width := end - start
		if i+2 >= len(rotated) {
			// The last pair runs past the first slot on the next turn
			width += 2 * math.Pi
		}
		if width <= 0 {
			continue
		}
		pairs = append(pairs, [2]float64{start, end})
	}
	return pairs
}

func edgePlots(bounds []float64, centre geom.Vector, radius float64) []Plot {
	if len(bounds) == 0 {
		return []Plot{{
			Part:   Edge(0, 2*math.Pi),
			Vector: centre,
			Radius: radius,
		}}
	}

	pairs := gaps(bounds)
	plots := make([]Plot, 0, len(pairs))
	for _, p := range pairs {
		plots = append(plots, Plot{
			Part:   Edge(p[0], p[1]),
			Vector: centre,
			Radius: radius,
		})
	}
	return plots
}

// WordEdges returns the arcs of the word circle between the letters that
// cut it. A word with no crescents or quarters gets one full circle; a word
// whose letters cover the whole circle gets none.
func WordEdges(plots []Plot, wordAngle float64, g Geometry) []Plot {
	var bounds []float64
	for _, p := range plots {
		if !p.Part.TouchesCircle() {
			continue
		}
		half, _ := g.EdgeSpan(p.Part.Kind(), p.Radius, g.WordRadius)
		bounds = append(bounds, p.Offset-half, p.Offset+half)
	}
	return edgePlots(bounds, geom.FromPolar(g.SentenceRadius, wordAngle), g.WordRadius)
}

// NotchFor returns the notch that follows the word at wordAngle on the
// inner sentence circle, halfway to the next word.
func NotchFor(wordAngle float64, wordCount int, g Geometry) Plot {
	a := wordAngle + math.Pi/float64(wordCount)
	return Plot{
		Part: Notch,
		Vector: geom.FromPolar(g.InnerRadius(), a).
			Sub(geom.FromPolar(g.NotchBaseRatio*g.WordRadius, a)),
		Radius: g.WordRadius,
		// Drawn facing the sentence centre.
		Offset: a + math.Pi,
	}
}

// SentenceEdges returns the arcs of the inner sentence circle between
// notches.
func SentenceEdges(notches []Plot, g Geometry) []Plot {
	var bounds []float64
	for _, n := range notches {
		if n.Part.Kind() != KindNotch {
			continue
		}
		a := n.Offset - math.Pi
		half, _ := g.EdgeSpan(KindNotch, n.Radius, g.InnerRadius())
		bounds = append(bounds, a-half, a+half)
	}
	return edgePlots(bounds, geom.Zero, g.InnerRadius())
}
