package gallifreyan

import (
	"errors"
	"math"
	"testing"
)

// FuzzTokenize checks the tokenizer never panics and that a successful
// tokenization spells back the word it was given.
// Run with: go test -fuzz=FuzzTokenize -fuzztime=30s ./pkg/gallifreyan/
func FuzzTokenize(f *testing.F) {
	f.Add("HELLO")
	f.Add("STRENGTH")
	f.Add("QUEUE")
	f.Add("CHTHPHWHSHGHNG")
	f.Add("")
	f.Add("B4D")
	f.Add("Q")
	f.Add("NGH")
	f.Add("ÄÖÜ")

	f.Fuzz(func(t *testing.T, word string) {
		tokens, err := Tokenize(word)
		if err != nil {
			var te *TokenizationError
			if errors.As(err, &te) {
				if te.Position < 0 || te.Position >= len([]rune(word)) {
					t.Errorf("position %d outside %q", te.Position, word)
				}
			} else if !errors.Is(err, ErrEmptyInput) {
				t.Errorf("unexpected error type %T: %v", err, err)
			}
			return
		}
		if got := Spell(tokens); got != word {
			t.Errorf("Spell(Tokenize(%q)) = %q", word, got)
		}
	})
}

// FuzzLayoutSentence checks layout never panics and only produces finite
// coordinates.
func FuzzLayoutSentence(f *testing.F) {
	f.Add("hello world")
	f.Add("a e i o u")
	f.Add("the quick brown fox jumps over the lazy dog")
	f.Add("   ")
	f.Add("straße")
	f.Add("x\ty\nz")

	g := DefaultGeometry()
	f.Fuzz(func(t *testing.T, text string) {
		plots, err := LayoutSentence(text, g)
		if err != nil {
			return
		}
		if len(plots) == 0 {
			t.Fatal("successful layout produced no plots")
		}
		for i, p := range plots {
			start, end := p.Part.Span()
			for _, v := range []float64{p.Vector.X, p.Vector.Y, p.Radius, p.Offset, start, end} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("plot %d (%s) has non-finite value", i, p.Part)
				}
			}
		}
	})
}
