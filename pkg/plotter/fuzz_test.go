package plotter

import (
	"testing"

	"github.com/ha1tch/gallifreyan/pkg/gallifreyan"
)

// FuzzRenderText checks that any text that lays out also draws, and that
// arcs come out as polylines.
// Run with: go test -fuzz=FuzzRenderText -fuzztime=30s ./pkg/plotter/
func FuzzRenderText(f *testing.F) {
	f.Add("hello world")
	f.Add("supercalifragilisticexpialidocious")
	f.Add("tttttttttttttttttttt")
	f.Add("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	f.Add("tabtabtabtabtabtabtabtab t")
	f.Add("a e i o u")

	g := gallifreyan.DefaultGeometry()
	pal := DefaultPalette()
	f.Fuzz(func(t *testing.T, text string) {
		drawings, err := RenderText(text, g, pal)
		if err != nil {
			return
		}
		for i, d := range drawings {
			if d.Style == pal.Dot {
				continue
			}
			for _, s := range d.Series {
				if len(s) < 2 {
					t.Fatalf("drawing %d has a %d-point series", i, len(s))
				}
			}
		}
	})
}
