package gallifreyan

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned for text with no words, or a word with no
	// letters, since no angular slots can be laid out.
	ErrEmptyInput = errors.New("gallifreyan: empty input")

	// ErrUnknownLetter is returned when a spelling is not in the alphabet.
	ErrUnknownLetter = errors.New("gallifreyan: unknown letter")

	// ErrTokenization matches any *TokenizationError with errors.Is.
	ErrTokenization = errors.New("gallifreyan: tokenization failed")
)

// TokenizationError reports the letter grouping that could not be parsed.
// The whole word is rejected; nothing of it is laid out.
type TokenizationError struct {
	Word      string // word being tokenized
	Substring string // offending grouping
	Position  int    // rune offset of the grouping within Word
}

func (e *TokenizationError) Error() string {
	return fmt.Sprintf("gallifreyan: cannot tokenize %q: unrecognized %q at position %d",
		e.Word, e.Substring, e.Position)
}

// Is lets errors.Is(err, ErrTokenization) match.
func (e *TokenizationError) Is(target error) bool {
	return target == ErrTokenization
}
