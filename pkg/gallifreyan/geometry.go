package gallifreyan

import (
	"errors"
	"math"
)

// Geometry holds the radii and shape ratios of the layout. The defaults
// reproduce the reference glyph shapes; change them only to experiment.
type Geometry struct {
	SentenceRadius float64 // distance from the sentence centre to each word centre
	WordRadius     float64 // radius of a word circle
	LetterRadius   float64 // radius of a consonant base

	InnerCircleRatio float64 // inner sentence circle, as a multiple of SentenceRadius
	OuterCircleRatio float64 // outer sentence circle, as a multiple of SentenceRadius

	CrescentBaseRatio float64 // crescent centre inset, in letter radii
	FullBaseRatio     float64 // full circle centre inset, in letter radii
	MoonBaseRatio     float64 // moon vowel offset, in letter radii
	NotchBaseRatio    float64 // notch inset, in word radii

	CrescentBaseOffset float64 // half-opening of a crescent, radians
	QuarterBaseOffset  float64 // half-opening of a quarter, radians
	NotchBaseOffset    float64 // half-opening of a notch, radians

	DotOffset float64 // dot distance beyond the base rim
	ArcStep   float64 // arc sampling step, degrees
}

// DefaultGeometry returns the reference constants.
func DefaultGeometry() Geometry {
	return Geometry{
		SentenceRadius:     10,
		WordRadius:         5,
		LetterRadius:       1,
		InnerCircleRatio:   1.6,
		OuterCircleRatio:   1.8,
		CrescentBaseRatio:  0.9,
		FullBaseRatio:      1.2,
		MoonBaseRatio:      1.0,
		NotchBaseRatio:     0.15,
		CrescentBaseOffset: math.Pi / 6,
		QuarterBaseOffset:  5 * math.Pi / 9,
		NotchBaseOffset:    math.Pi / 2,
		DotOffset:          0.4,
		ArcStep:            1,
	}
}

// Validate checks the geometry can be laid out.
func (g Geometry) Validate() error {
	if g.SentenceRadius <= 0 || g.WordRadius <= 0 || g.LetterRadius <= 0 {
		return errors.New("gallifreyan: radii must be positive")
	}
	if g.InnerCircleRatio <= 0 || g.OuterCircleRatio <= 0 {
		return errors.New("gallifreyan: sentence circle ratios must be positive")
	}
	if g.ArcStep <= 0 || g.ArcStep > 360 {
		return errors.New("gallifreyan: arc step must be in (0, 360]")
	}
	return nil
}

// baseRatio is the inset of a part's centre from its slot point, in letter
// radii.
func (g Geometry) baseRatio(p Part) float64 {
	switch p.Kind() {
	case KindCrescent:
		return g.CrescentBaseRatio
	case KindFull:
		return g.FullBaseRatio
	case KindMoon:
		return g.MoonBaseRatio
	}
	return 0
}

// halfOpening is the angular half-width of a shape at its own centre.
func (g Geometry) halfOpening(k PartKind) (float64, bool) {
	switch k {
	case KindCrescent:
		return g.CrescentBaseOffset, true
	case KindQuarter:
		return g.QuarterBaseOffset, true
	case KindNotch:
		return g.NotchBaseOffset, true
	}
	return 0, false
}

// InnerRadius is the radius of the inner sentence circle.
func (g Geometry) InnerRadius() float64 { return g.InnerCircleRatio * g.SentenceRadius }

// OuterRadius is the radius of the outer sentence circle.
func (g Geometry) OuterRadius() float64 { return g.OuterCircleRatio * g.SentenceRadius }
