// Package config loads and saves persistent settings for the gallifreyan
// commands: layout geometry, palette and output canvas.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/ha1tch/gallifreyan/pkg/gallifreyan"
	"github.com/ha1tch/gallifreyan/pkg/plotter"
	"github.com/ha1tch/gallifreyan/pkg/render"
)

// FileName is the config file kept in the home directory.
const FileName = ".gallifreyan.yaml"

// Config holds persistent settings.
type Config struct {
	Geometry Geometry `yaml:"geometry"`
	Palette  Palette  `yaml:"palette"`
	Output   Output   `yaml:"output"`
}

// Geometry mirrors gallifreyan.Geometry. Angles are radians.
type Geometry struct {
	SentenceRadius     float64 `yaml:"sentence_radius"`
	WordRadius         float64 `yaml:"word_radius"`
	LetterRadius       float64 `yaml:"letter_radius"`
	InnerCircleRatio   float64 `yaml:"inner_circle_ratio"`
	OuterCircleRatio   float64 `yaml:"outer_circle_ratio"`
	CrescentBaseRatio  float64 `yaml:"crescent_base_ratio"`
	FullBaseRatio      float64 `yaml:"full_base_ratio"`
	MoonBaseRatio      float64 `yaml:"moon_base_ratio"`
	NotchBaseRatio     float64 `yaml:"notch_base_ratio"`
	CrescentBaseOffset float64 `yaml:"crescent_base_offset"`
	QuarterBaseOffset  float64 `yaml:"quarter_base_offset"`
	NotchBaseOffset    float64 `yaml:"notch_base_offset"`
	DotOffset          float64 `yaml:"dot_offset"`
	ArcStep            float64 `yaml:"arc_step"`
}

// Style is one palette entry. Color is a hex string such as "#2196f3".
type Style struct {
	Color  string  `yaml:"color"`
	Width  float64 `yaml:"width"`
	Filled bool    `yaml:"filled,omitempty"`
}

// Palette mirrors plotter.Palette.
type Palette struct {
	Edge  Style `yaml:"edge"`
	Base  Style `yaml:"base"`
	Dot   Style `yaml:"dot"`
	Line  Style `yaml:"line"`
	Notch Style `yaml:"notch"`
}

// Output holds canvas settings shared by the PNG and SVG sinks.
type Output struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Padding     int     `yaml:"padding"`
	Extent      float64 `yaml:"extent"` // 0 fits the drawing
	Supersample int     `yaml:"supersample"`
	Background  string  `yaml:"background"`
	File        string  `yaml:"file"` // default output for the prompt command
}

// Default returns the reference configuration.
func Default() Config {
	g := gallifreyan.DefaultGeometry()
	pal := plotter.DefaultPalette()
	png := render.DefaultPNGOptions()
	return Config{
		Geometry: Geometry{
			SentenceRadius:     g.SentenceRadius,
			WordRadius:         g.WordRadius,
			LetterRadius:       g.LetterRadius,
			InnerCircleRatio:   g.InnerCircleRatio,
			OuterCircleRatio:   g.OuterCircleRatio,
			CrescentBaseRatio:  g.CrescentBaseRatio,
			FullBaseRatio:      g.FullBaseRatio,
			MoonBaseRatio:      g.MoonBaseRatio,
			NotchBaseRatio:     g.NotchBaseRatio,
			CrescentBaseOffset: g.CrescentBaseOffset,
			QuarterBaseOffset:  g.QuarterBaseOffset,
			NotchBaseOffset:    g.NotchBaseOffset,
			DotOffset:          g.DotOffset,
			ArcStep:            g.ArcStep,
		},
		Palette: Palette{
			Edge:  styleFrom(pal.Edge),
			Base:  styleFrom(pal.Base),
			Dot:   styleFrom(pal.Dot),
			Line:  styleFrom(pal.Line),
			Notch: styleFrom(pal.Notch),
		},
		Output: Output{
			Width:       png.Width,
			Height:      png.Height,
			Padding:     png.Padding,
			Extent:      png.Extent,
			Supersample: png.Supersample,
			Background:  hexOf(png.Background),
			File:        "gallifreyan-message.png",
		},
	}
}

// Path returns the path to the config file
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Load reads the config at path over the defaults. A missing file yields
// the defaults; a malformed or invalid one is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	content := append([]byte("# gallifreyan configuration\n"), data...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Validate checks every section converts cleanly.
func (c Config) Validate() error {
	if err := c.LayoutGeometry().Validate(); err != nil {
		return err
	}
	if _, err := c.PlotPalette(); err != nil {
		return err
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		return fmt.Errorf("output size %dx%d must be positive", c.Output.Width, c.Output.Height)
	}
	if c.Output.Extent < 0 {
		return fmt.Errorf("output extent %g must not be negative", c.Output.Extent)
	}
	if _, err := parseColor(c.Output.Background); err != nil {
		return fmt.Errorf("output background: %w", err)
	}
	return nil
}

// LayoutGeometry converts the geometry section.
func (c Config) LayoutGeometry() gallifreyan.Geometry {
	g := c.Geometry
	return gallifreyan.Geometry{
		SentenceRadius:     g.SentenceRadius,
		WordRadius:         g.WordRadius,
		LetterRadius:       g.LetterRadius,
		InnerCircleRatio:   g.InnerCircleRatio,
		OuterCircleRatio:   g.OuterCircleRatio,
		CrescentBaseRatio:  g.CrescentBaseRatio,
		FullBaseRatio:      g.FullBaseRatio,
		MoonBaseRatio:      g.MoonBaseRatio,
		NotchBaseRatio:     g.NotchBaseRatio,
		CrescentBaseOffset: g.CrescentBaseOffset,
		QuarterBaseOffset:  g.QuarterBaseOffset,
		NotchBaseOffset:    g.NotchBaseOffset,
		DotOffset:          g.DotOffset,
		ArcStep:            g.ArcStep,
	}
}

// PlotPalette converts the palette section, parsing hex colours.
func (c Config) PlotPalette() (plotter.Palette, error) {
	var pal plotter.Palette
	entries := []struct {
		name string
		src  Style
		dst  *plotter.Style
	}{
		{"edge", c.Palette.Edge, &pal.Edge},
		{"base", c.Palette.Base, &pal.Base},
		{"dot", c.Palette.Dot, &pal.Dot},
		{"line", c.Palette.Line, &pal.Line},
		{"notch", c.Palette.Notch, &pal.Notch},
	}
	for _, e := range entries {
		col, err := parseColor(e.src.Color)
		if err != nil {
			return plotter.Palette{}, fmt.Errorf("palette %s: %w", e.name, err)
		}
		if e.src.Width <= 0 {
			return plotter.Palette{}, fmt.Errorf("palette %s: width %g must be positive", e.name, e.src.Width)
		}
		*e.dst = plotter.Style{Color: col, Width: e.src.Width, Filled: e.src.Filled}
	}
	return pal, nil
}

// PNGOptions returns PNG options for the output section.
func (c Config) PNGOptions() render.PNGOptions {
	opts := render.DefaultPNGOptions()
	opts.Width = c.Output.Width
	opts.Height = c.Output.Height
	opts.Padding = c.Output.Padding
	opts.Extent = c.Output.Extent
	opts.Supersample = c.Output.Supersample
	if bg, err := parseColor(c.Output.Background); err == nil {
		opts.Background = bg
	}
	return opts
}

// SVGOptions returns SVG options for the output section.
func (c Config) SVGOptions() render.SVGOptions {
	png := c.PNGOptions()
	opts := render.DefaultSVGOptions()
	opts.Width = png.Width
	opts.Height = png.Height
	opts.Padding = png.Padding
	opts.Extent = png.Extent
	opts.Background = png.Background
	return opts
}

func parseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

func styleFrom(s plotter.Style) Style {
	return Style{Color: hexOf(s.Color), Width: s.Width, Filled: s.Filled}
}

func hexOf(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
