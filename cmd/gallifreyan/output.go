package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ha1tch/gallifreyan/pkg/config"
	"github.com/ha1tch/gallifreyan/pkg/gallifreyan"
	"github.com/ha1tch/gallifreyan/pkg/render"
)

// Size of the character raster written for .txt output.
const (
	textCols = 80
	textRows = 40
)

type options struct {
	text    string
	output  string
	title   string
	config  string
	fit     bool
	pretty  bool
	verbose bool
}

// parseArgs splits flags from the words of the text.
func parseArgs(args []string) (options, error) {
	var opts options
	var words []string

	value := func(i int) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s needs a value", args[i])
		}
		return args[i+1], nil
	}

	for i := 0; i < len(args); i++ {
		var err error
		switch args[i] {
		case "-o", "--output":
			opts.output, err = value(i)
			i++
		case "-t", "--title":
			opts.title, err = value(i)
			i++
		case "-c", "--config":
			opts.config, err = value(i)
			i++
		case "--fit", "-fit":
			opts.fit = true
		case "--pretty":
			opts.pretty = true
		case "-v", "--verbose":
			opts.verbose = true
		default:
			words = append(words, args[i])
		}
		if err != nil {
			return opts, err
		}
	}

	opts.text = strings.Join(words, " ")
	return opts, nil
}

// renderFile draws text and writes it in the format named by the extension
// of output.
func renderFile(text, output, title string, pretty bool, cfg config.Config) error {
	drawings, plots, err := drawText(text, cfg)
	if err != nil {
		return err
	}

	var data []byte
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		opts := cfg.PNGOptions()
		opts.Title = title
		var buf bytes.Buffer
		if err := render.RenderPNG(drawings, &buf, opts); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		data = buf.Bytes()
	case ".svg":
		opts := cfg.SVGOptions()
		opts.Title = title
		data = []byte(render.GenerateSVG(drawings, opts))
	case ".json":
		data, err = render.PlotsToJSON(plots, pretty)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
	case ".txt":
		grid := render.Rasterize(drawings, textCols, textRows, cfg.Output.Extent)
		data = []byte(grid.String())
	default:
		return fmt.Errorf("unknown output format: %q", ext)
	}

	debugf("writing %d bytes to %s", len(data), output)
	return os.WriteFile(output, data, 0644)
}

func formatTokens(words [][]gallifreyan.Letter) string {
	var sb strings.Builder
	for i, tokens := range words {
		slots, err := gallifreyan.Slots(tokens)
		if err != nil {
			continue
		}
		fmt.Fprintf(&sb, "Word %d: %s (%d slots)\n", i+1, gallifreyan.Spell(tokens), gallifreyan.SlotCount(tokens))
		for _, s := range slots {
			attach := "standalone"
			if !s.Standalone {
				attach = "attached"
			}
			fmt.Fprintf(&sb, "  %-3s slot %-2d %8.2f°  %s\n",
				s.Letter.Spelling(), s.Index, s.Angle*180/math.Pi, attach)
		}
	}
	return sb.String()
}

func formatPlots(plots []gallifreyan.Plot) string {
	var sb strings.Builder
	for i, p := range plots {
		fmt.Fprintf(&sb, "%3d  %-26s (%8.4f, %8.4f)  r=%.4f  rot=%.4f\n",
			i, p.Part, p.Vector.X, p.Vector.Y, p.Radius, p.Offset)
	}
	return sb.String()
}

func formatAlphabet() string {
	var sb strings.Builder
	for _, l := range gallifreyan.Alphabet() {
		kind := "consonant"
		if l.IsVowel() {
			kind = "vowel"
		}
		mod := "-"
		if m, ok := l.Modifier(); ok {
			mod = m.String()
		}
		fmt.Fprintf(&sb, "%-3s %-9s %-14s %s\n", l.Spelling(), kind, l.Base(), mod)
	}
	return sb.String()
}
