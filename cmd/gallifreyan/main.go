// Command gallifreyan renders English text as Circular Gallifreyan.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ha1tch/gallifreyan/pkg/config"
	"github.com/ha1tch/gallifreyan/pkg/gallifreyan"
	"github.com/ha1tch/gallifreyan/pkg/plotter"
	"github.com/ha1tch/gallifreyan/pkg/render"
)

const usage = `gallifreyan - Circular Gallifreyan renderer

Usage:
  gallifreyan <command> [options]

Commands:
  render     Render text to PNG, SVG, JSON or text
  tokens     Show the token stream and slot table
  plots      List the placed parts
  alphabet   Print the alphabet table
  prompt     Read a line from stdin and write gallifreyan-message.png
  config     Write the default config file

Options:
  -o <file>    output file (render)
  -t <title>   caption drawn above the glyph
  -c <file>    config file (default ~/.gallifreyan.yaml)
  --fit        fit the canvas to the glyph instead of a fixed window
  --pretty     indent JSON output
  -v           print debug information to stderr

Examples:
  gallifreyan render hello world -o hello.png
  gallifreyan render doctor who -o who.svg -t "Doctor Who"
  gallifreyan tokens strength
  gallifreyan plots hi --pretty
  echo "allons y" | gallifreyan prompt
`

var verbose bool

func debugf(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	opts, err := parseArgs(os.Args[2:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	verbose = opts.verbose

	switch cmd {
	case "render":
		cmdRender(opts)
	case "tokens":
		cmdTokens(opts)
	case "plots":
		cmdPlots(opts)
	case "alphabet":
		cmdAlphabet()
	case "prompt":
		cmdPrompt(opts)
	case "config":
		cmdConfig(opts)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}

func loadConfig(opts options) config.Config {
	path := opts.config
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	debugf("config %s", path)
	if opts.fit {
		cfg.Output.Extent = 0
	}
	return cfg
}

func requireText(opts options, cmd string) {
	if opts.text == "" {
		fmt.Fprintf(os.Stderr, "Usage: gallifreyan %s <text> [options]\n", cmd)
		os.Exit(1)
	}
}

func cmdRender(opts options) {
	requireText(opts, "render")
	if opts.output == "" {
		fmt.Fprintln(os.Stderr, "Usage: gallifreyan render <text> -o <file.png|file.svg|file.json|file.txt>")
		os.Exit(1)
	}
	cfg := loadConfig(opts)

	if err := renderFile(opts.text, opts.output, opts.title, opts.pretty, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Written: %s\n", opts.output)
}

func cmdTokens(opts options) {
	requireText(opts, "tokens")

	words, err := gallifreyan.TokenizeSentence(opts.text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(formatTokens(words))
}

func cmdPlots(opts options) {
	requireText(opts, "plots")
	cfg := loadConfig(opts)

	plots, err := gallifreyan.LayoutSentence(opts.text, cfg.LayoutGeometry())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	debugf("%d plots", len(plots))

	if opts.pretty {
		data, err := render.PlotsToJSON(plots, true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}
	fmt.Print(formatPlots(plots))
}

func cmdAlphabet() {
	fmt.Print(formatAlphabet())
}

// cmdPrompt reads one line from stdin and renders it to the configured file.
func cmdPrompt(opts options) {
	cfg := loadConfig(opts)
	output := opts.output
	if output == "" {
		output = cfg.Output.File
	}

	fmt.Print("Enter a sentence: ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	text := strings.TrimSpace(scanner.Text())

	if err := renderFile(text, output, opts.title, opts.pretty, cfg); err != nil {
		var te *gallifreyan.TokenizationError
		if errors.As(err, &te) {
			fmt.Fprintf(os.Stderr, "Cannot write %q: %q is not a Gallifreyan letter\n", te.Word, te.Substring)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Printf("Written: %s\n", output)
}

func cmdConfig(opts options) {
	path := opts.output
	if path == "" {
		path = config.Path()
	}
	if err := config.Save(path, config.Default()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Written: %s\n", path)
}

// drawText lays out and draws text with the configured geometry and palette.
func drawText(text string, cfg config.Config) ([]plotter.Drawing, []gallifreyan.Plot, error) {
	g := cfg.LayoutGeometry()
	pal, err := cfg.PlotPalette()
	if err != nil {
		return nil, nil, err
	}

	plots, err := gallifreyan.LayoutSentence(text, g)
	if err != nil {
		return nil, nil, err
	}
	debugf("%q: %d plots %v", text, len(plots), gallifreyan.Count(plots))
	return plotter.DrawPlots(plots, g, pal), plots, nil
}
