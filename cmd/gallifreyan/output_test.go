package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/gallifreyan/pkg/config"
	"github.com/ha1tch/gallifreyan/pkg/gallifreyan"
)

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"hello", "-o", "out.png", "world", "-t", "Hi there", "--fit", "-v"})
	require.NoError(t, err)
	assert.Equal(t, "hello world", opts.text)
	assert.Equal(t, "out.png", opts.output)
	assert.Equal(t, "Hi there", opts.title)
	assert.True(t, opts.fit)
	assert.True(t, opts.verbose)
	assert.False(t, opts.pretty)

	_, err = parseArgs([]string{"hello", "-o"})
	assert.Error(t, err)
}

func TestRenderFileFormats(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Width, cfg.Output.Height = 120, 120
	cfg.Output.Supersample = 1
	dir := t.TempDir()

	for _, name := range []string{"out.png", "out.svg", "out.json", "OUT.TXT"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, renderFile("hello world", path, "", false, cfg))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}

	f, err := os.Open(filepath.Join(dir, "out.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
}

func TestRenderFileErrors(t *testing.T) {
	cfg := config.Default()
	dir := t.TempDir()

	err := renderFile("hello", filepath.Join(dir, "out.gif"), "", false, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")

	err = renderFile("b4d", filepath.Join(dir, "out.png"), "", false, cfg)
	assert.ErrorIs(t, err, gallifreyan.ErrTokenization)

	_, statErr := os.Stat(filepath.Join(dir, "out.png"))
	assert.True(t, os.IsNotExist(statErr), "failed renders must not write a file")
}

func TestFormatTokens(t *testing.T) {
	words, err := gallifreyan.TokenizeSentence("shoe")
	require.NoError(t, err)

	out := formatTokens(words)
	assert.True(t, strings.HasPrefix(out, "Word 1: SHOE (2 slots)\n"), out)
	assert.Contains(t, out, "SH ")
	assert.Equal(t, 1, strings.Count(out, "attached"))
}

func TestFormatAlphabet(t *testing.T) {
	out := formatAlphabet()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(gallifreyan.Alphabet()))
	assert.True(t, strings.HasPrefix(lines[0], "A   vowel"))
	assert.Contains(t, out, "NG  consonant New")
}

func TestFormatPlots(t *testing.T) {
	plots, err := gallifreyan.LayoutSentence("hi", gallifreyan.DefaultGeometry())
	require.NoError(t, err)

	out := formatPlots(plots)
	assert.Equal(t, len(plots), strings.Count(out, "\n"))
	assert.Contains(t, out, "Crescent")
	assert.Contains(t, out, "Notch")
}
