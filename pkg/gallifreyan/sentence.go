package gallifreyan

import (
	"fmt"

	"github.com/ha1tch/gallifreyan/pkg/geom"
)

// LayoutSentence lays out text as plots: for each word its letters, the
// notch that follows it and its circle edges; then the outer sentence
// circle and the inner circle edges.
func LayoutSentence(text string, g Geometry) ([]Plot, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	words, err := TokenizeSentence(text)
	if err != nil {
		return nil, err
	}
	return LayoutTokens(words, g)
}

// LayoutTokens is LayoutSentence for already tokenized words.
func LayoutTokens(words [][]Letter, g Geometry) ([]Plot, error) {
	if len(words) == 0 {
		return nil, ErrEmptyInput
	}

	var plots, notches []Plot
	for i, tokens := range words {
		wordAngle := WordAngle(i, len(words))

		letters, err := LayoutWord(tokens, wordAngle, g)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i+1, err)
		}
		notch := NotchFor(wordAngle, len(words), g)

		plots = append(plots, letters...)
		plots = append(plots, notch)
		plots = append(plots, WordEdges(letters, wordAngle, g)...)
		notches = append(notches, notch)
	}

	plots = append(plots, Plot{
		Part:   New,
		Vector: geom.Zero,
		Radius: g.OuterRadius(),
	})
	plots = append(plots, SentenceEdges(notches, g)...)
	return plots, nil
}

// Count tallies plots by part kind.
func Count(plots []Plot) map[PartKind]int {
	counts := make(map[PartKind]int)
	for _, p := range plots {
		counts[p.Part.Kind()]++
	}
	return counts
}

// Filter returns the plots of the given kinds, in order.
func Filter(plots []Plot, kinds ...PartKind) []Plot {
	var out []Plot
	for _, p := range plots {
		for _, k := range kinds {
			if p.Part.Kind() == k {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
