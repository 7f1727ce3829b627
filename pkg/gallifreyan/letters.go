package gallifreyan

import (
	"fmt"
	"math"
)

// Letter is one token of the Gallifreyan alphabet: a vowel, a consonant or
// a consonant digraph.
type Letter int

const (
	A Letter = iota
	E
	I
	O
	U
	B
	CH
	D
	G
	H
	F
	J
	PH
	K
	L
	C
	N
	P
	M
	T
	WH
	SH
	R
	V
	W
	S
	TH
	GH
	Y
	Z
	Q
	QU
	X
	NG
	letterCount
)

// glyph is one row of the alphabet table.
type glyph struct {
	spelling string
	base     Part
	modifier *Part
}

func mod(p Part) *Part { return &p }

var alphabet = [letterCount]glyph{
	A:  {"A", Moon(math.Pi), nil},
	E:  {"E", Core, nil},
	I:  {"I", Core, mod(VowelLine1(0))},
	O:  {"O", Moon(0), nil},
	U:  {"U", Core, mod(VowelLine1(math.Pi))},
	B:  {"B", Crescent, nil},
	CH: {"CH", Crescent, mod(Dot2)},
	D:  {"D", Crescent, mod(Dot3)},
	G:  {"G", Crescent, mod(Line1)},
	H:  {"H", Crescent, mod(Line2)},
	F:  {"F", Crescent, mod(Line3)},
	J:  {"J", Full, nil},
	PH: {"PH", Full, mod(Dot1)},
	K:  {"K", Full, mod(Dot2)},
	L:  {"L", Full, mod(Dot3)},
	C:  {"C", Full, mod(Dot4)},
	N:  {"N", Full, mod(Line1)},
	P:  {"P", Full, mod(Line2)},
	M:  {"M", Full, mod(Line3)},
	T:  {"T", Quarter, nil},
	WH: {"WH", Quarter, mod(Dot1)},
	SH: {"SH", Quarter, mod(Dot2)},
	R:  {"R", Quarter, mod(Dot3)},
	V:  {"V", Quarter, mod(Line1)},
	W:  {"W", Quarter, mod(Line2)},
	S:  {"S", Quarter, mod(Line3)},
	TH: {"TH", New, nil},
	GH: {"GH", New, mod(Dot1)},
	Y:  {"Y", New, mod(Dot2)},
	Z:  {"Z", New, mod(Dot3)},
	Q:  {"Q", New, mod(Dot4)},
	QU: {"QU", New, mod(Line1)},
	X:  {"X", New, mod(Line2)},
	NG: {"NG", New, mod(Line3)},
}

var bySpelling = func() map[string]Letter {
	m := make(map[string]Letter, len(alphabet))
	for i, g := range alphabet {
		m[g.spelling] = Letter(i)
	}
	return m
}()

// ParseLetter looks up the letter spelled by s (upper case).
func ParseLetter(s string) (Letter, error) {
	l, ok := bySpelling[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLetter, s)
	}
	return l, nil
}

// Alphabet returns every letter in table order.
func Alphabet() []Letter {
	letters := make([]Letter, letterCount)
	for i := range letters {
		letters[i] = Letter(i)
	}
	return letters
}

func (l Letter) valid() bool { return l >= 0 && l < letterCount }

// Spelling returns the canonical English spelling ("CH", "A", ...).
func (l Letter) Spelling() string {
	if !l.valid() {
		return fmt.Sprintf("Letter(%d)", int(l))
	}
	return alphabet[l].spelling
}

func (l Letter) String() string {
	return "Gallifreyan " + l.Spelling()
}

// IsVowel reports whether the letter is A, E, I, O or U.
func (l Letter) IsVowel() bool {
	return l >= A && l <= U
}

// IsLetter is true for every valid token.
func (l Letter) IsLetter() bool {
	return l.valid()
}

// Base returns the base shape of the letter.
func (l Letter) Base() Part {
	return alphabet[l].base
}

// Modifier returns the letter's mark, if any.
func (l Letter) Modifier() (Part, bool) {
	m := alphabet[l].modifier
	if m == nil {
		return Part{}, false
	}
	return *m, true
}

// Parts returns the base followed by the optional modifier.
func (l Letter) Parts() []Part {
	parts := []Part{l.Base()}
	if m, ok := l.Modifier(); ok {
		parts = append(parts, m)
	}
	return parts
}
