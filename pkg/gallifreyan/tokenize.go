package gallifreyan

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// digraphs maps a leading letter to the letters that merge with it.
var digraphs = map[rune]rune{
	'C': 'H',
	'P': 'H',
	'W': 'H',
	'S': 'H',
	'T': 'H',
	'G': 'H',
	'Q': 'U',
	'N': 'G',
}

// Normalize upper-cases text the way the tokenizer expects.
func Normalize(text string) string {
	// A Caser keeps state, so each call gets its own.
	return cases.Upper(language.Und).String(text)
}

// SplitWords normalizes text and splits it on white space.
func SplitWords(text string) []string {
	return strings.Fields(Normalize(text))
}

// Tokenize splits an upper-case word into letters, merging CH, PH, WH, SH,
// TH, GH, QU and NG.
func Tokenize(word string) ([]Letter, error) {
	runes := []rune(word)
	if len(runes) == 0 {
		return nil, ErrEmptyInput
	}

	tokens := make([]Letter, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		group := string(runes[i])
		pos := i
		if next, ok := digraphs[runes[i]]; ok && i+1 < len(runes) && runes[i+1] == next {
			group += string(runes[i+1])
			i++
		}

		letter, err := ParseLetter(group)
		if err != nil {
			return nil, &TokenizationError{Word: word, Substring: group, Position: pos}
		}
		tokens = append(tokens, letter)
	}
	return tokens, nil
}

// TokenizeSentence normalizes and tokenizes every word of text.
func TokenizeSentence(text string) ([][]Letter, error) {
	words := SplitWords(text)
	if len(words) == 0 {
		return nil, ErrEmptyInput
	}

	sentence := make([][]Letter, 0, len(words))
	for _, w := range words {
		tokens, err := Tokenize(w)
		if err != nil {
			return nil, err
		}
		sentence = append(sentence, tokens)
	}
	return sentence, nil
}

// Spell joins the canonical spellings of tokens.
func Spell(tokens []Letter) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.Spelling())
	}
	return sb.String()
}
