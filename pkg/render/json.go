package render

import (
	"encoding/json"
	"fmt"

	"github.com/ha1tch/gallifreyan/pkg/gallifreyan"
	"github.com/ha1tch/gallifreyan/pkg/plotter"
)

// jsonDrawing is the JSON representation of one drawing.
type jsonDrawing struct {
	Color  string         `json:"color"`
	Width  float64        `json:"width"`
	Filled bool           `json:"filled,omitempty"`
	Series [][][2]float64 `json:"series"`
}

// jsonPlot is the JSON representation of a placed part.
type jsonPlot struct {
	Part   string     `json:"part"`
	Kind   string     `json:"kind"`
	Center [2]float64 `json:"center"`
	Radius float64    `json:"radius"`
	Offset float64    `json:"offset"`
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToJSON converts drawings to JSON.
func ToJSON(drawings []plotter.Drawing, pretty bool) ([]byte, error) {
	out := make([]jsonDrawing, 0, len(drawings))
	for _, d := range drawings {
		jd := jsonDrawing{
			Color:  hexColor(d.Style.Color),
			Width:  d.Style.Width,
			Filled: d.Style.Filled,
			Series: make([][][2]float64, len(d.Series)),
		}
		for i, s := range d.Series {
			pts := make([][2]float64, len(s))
			for j, p := range s {
				pts[j] = [2]float64{p.X, p.Y}
			}
			jd.Series[i] = pts
		}
		out = append(out, jd)
	}
	return marshal(out, pretty)
}

// PlotsToJSON converts layout plots to JSON.
func PlotsToJSON(plots []gallifreyan.Plot, pretty bool) ([]byte, error) {
	out := make([]jsonPlot, 0, len(plots))
	for _, p := range plots {
		out = append(out, jsonPlot{
			Part:   p.Part.String(),
			Kind:   p.Part.Kind().String(),
			Center: [2]float64{p.Vector.X, p.Vector.Y},
			Radius: p.Radius,
			Offset: p.Offset,
		})
	}
	data, err := marshal(out, pretty)
	if err != nil {
		return nil, fmt.Errorf("encoding plots: %w", err)
	}
	return data, nil
}
