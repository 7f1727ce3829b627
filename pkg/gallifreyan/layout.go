package gallifreyan

import (
	"fmt"
	"math"

	"github.com/ha1tch/gallifreyan/pkg/geom"
)

// Plot is a part placed in sentence coordinates.
type Plot struct {
	Part   Part
	Vector geom.Vector // absolute centre of the part
	Radius float64     // radius the part is drawn at
	Offset float64     // rotation applied when drawing, radians
}

// Slot records where one token sits on its word circle.
type Slot struct {
	Letter     Letter
	Standalone bool    // false for a vowel riding on the preceding consonant
	Index      int     // angular slot number, shared by attached vowels
	Angle      float64 // slot angle on the word circle
}

// slotScanner is the attachment state machine: a vowel that directly
// follows a consonant shares that consonant's slot.
type slotScanner struct {
	prevConsonant bool
}

func (s *slotScanner) next(l Letter) (standalone bool) {
	standalone = !(s.prevConsonant && l.IsVowel())
	s.prevConsonant = !l.IsVowel()
	return standalone
}

// SlotCount returns the number of angular slots the tokens occupy.
func SlotCount(tokens []Letter) int {
	var sc slotScanner
	n := 0
	for _, t := range tokens {
		if sc.next(t) {
			n++
		}
	}
	return n
}

// Slots assigns each token its slot. Slots start at 12 o'clock (-π/2) and
// are spaced 2π/N apart.
func Slots(tokens []Letter) ([]Slot, error) {
	n := SlotCount(tokens)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	step := 2 * math.Pi / float64(n)

	var sc slotScanner
	slots := make([]Slot, len(tokens))
	angle := -math.Pi / 2
	index := 0
	for i, t := range tokens {
		standalone := sc.next(t)
		if standalone && i != 0 {
			angle += step
			index++
		}
		slots[i] = Slot{Letter: t, Standalone: standalone, Index: index, Angle: angle}
	}
	return slots, nil
}

// WordAngle is the angle of word index on the sentence circle.
func WordAngle(index, count int) float64 {
	return 2*math.Pi/float64(count)*float64(index) - math.Pi/2
}

// baseOffset is the vector from a slot point to the centre of part.
func (g Geometry) baseOffset(p Part, slotAngle float64) geom.Vector {
	return geom.FromPolar(g.baseRatio(p)*g.LetterRadius, slotAngle+p.Angle())
}

// partRadius is the drawing radius of a part.
func (g Geometry) partRadius(p Part) float64 {
	switch p.Kind() {
	case KindMoon, KindCore, KindVowelLine1:
		return g.LetterRadius / 3
	}
	return g.LetterRadius
}

// LayoutWord places every part of every token of one word whose circle is
// centred at wordAngle on the sentence circle.
func LayoutWord(tokens []Letter, wordAngle float64, g Geometry) ([]Plot, error) {
	slots, err := Slots(tokens)
	if err != nil {
		return nil, err
	}

	centre := geom.FromPolar(g.SentenceRadius, wordAngle)
	plots := make([]Plot, 0, 2*len(tokens))
	for i, s := range slots {
		base := s.Letter.Base()
		point := centre.Add(geom.FromPolar(g.WordRadius, s.Angle))

		for _, part := range s.Letter.Parts() {
			v := point.Sub(g.baseOffset(part, s.Angle))

			// Marks and attached vowels line up with the letter's base.
			if !s.Standalone || part.IsModifier() {
				v = v.Sub(g.baseOffset(base, s.Angle))
			}

			// An attached vowel sits on its consonant's base.
			if !s.Standalone && part.IsBase() {
				prev := precedingConsonant(tokens, i)
				v = v.Sub(g.baseOffset(prev.Base(), s.Angle))
			}

			plots = append(plots, Plot{
				Part:   part,
				Vector: v,
				Radius: g.partRadius(part),
				Offset: s.Angle,
			})
		}
	}
	return plots, nil
}

// precedingConsonant returns the token an attached vowel rides on. The slot
// scanner never attaches the first token, so failing here is a bug.
func precedingConsonant(tokens []Letter, i int) Letter {
	if i == 0 {
		panic("gallifreyan: attached vowel has no preceding token")
	}
	prev := tokens[i-1]
	if prev.IsVowel() {
		panic(fmt.Sprintf("gallifreyan: attached vowel follows vowel %s", prev.Spelling()))
	}
	return prev
}
