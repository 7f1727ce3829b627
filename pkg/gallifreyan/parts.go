package gallifreyan

import "fmt"

// PartKind identifies a constructive shape regardless of its parameters.
type PartKind int

const (
	KindMoon PartKind = iota
	KindCore
	KindCrescent
	KindFull
	KindQuarter
	KindNew
	KindDot1
	KindDot2
	KindDot3
	KindDot4
	KindVowelLine1
	KindLine1
	KindLine2
	KindLine3
	KindEdge
	KindNotch
)

var kindNames = [...]string{
	KindMoon:       "Moon",
	KindCore:       "Core",
	KindCrescent:   "Crescent",
	KindFull:       "Full",
	KindQuarter:    "Quarter",
	KindNew:        "New",
	KindDot1:       "Dot1",
	KindDot2:       "Dot2",
	KindDot3:       "Dot3",
	KindDot4:       "Dot4",
	KindVowelLine1: "VowelLine1",
	KindLine1:      "Line1",
	KindLine2:      "Line2",
	KindLine3:      "Line3",
	KindEdge:       "Edge",
	KindNotch:      "Notch",
}

func (k PartKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("PartKind(%d)", int(k))
	}
	return kindNames[k]
}

// Part is one shape of a glyph. Moon and VowelLine1 carry the angle of the
// side their mark sits on; Edge carries the start and end of its arc.
// Two parts are equal only when kind and payload match; use Kind to compare
// shapes alone.
type Part struct {
	kind  PartKind
	angle float64
	start float64
	end   float64
}

// Parameterless parts.
var (
	Core     = Part{kind: KindCore}
	Crescent = Part{kind: KindCrescent}
	Full     = Part{kind: KindFull}
	Quarter  = Part{kind: KindQuarter}
	New      = Part{kind: KindNew}
	Dot1     = Part{kind: KindDot1}
	Dot2     = Part{kind: KindDot2}
	Dot3     = Part{kind: KindDot3}
	Dot4     = Part{kind: KindDot4}
	Line1    = Part{kind: KindLine1}
	Line2    = Part{kind: KindLine2}
	Line3    = Part{kind: KindLine3}
	Notch    = Part{kind: KindNotch}
)

// Moon is the vowel base that sits off the word circle on the side given by
// angle.
func Moon(angle float64) Part {
	return Part{kind: KindMoon, angle: angle}
}

// VowelLine1 is the single vowel stroke pointing along angle.
func VowelLine1(angle float64) Part {
	return Part{kind: KindVowelLine1, angle: angle}
}

// Edge is a connector arc from start to end, in radians.
func Edge(start, end float64) Part {
	return Part{kind: KindEdge, start: start, end: end}
}

// Kind returns the shape of the part without its parameters.
func (p Part) Kind() PartKind { return p.kind }

// Angle returns the carried angle of Moon and VowelLine1, zero otherwise.
func (p Part) Angle() float64 { return p.angle }

// Span returns the start and end angles of an Edge.
func (p Part) Span() (start, end float64) { return p.start, p.end }

// IsBase reports whether the part is one of the letter bases.
func (p Part) IsBase() bool {
	switch p.kind {
	case KindMoon, KindCore, KindCrescent, KindFull, KindQuarter, KindNew:
		return true
	}
	return false
}

// IsModifier reports whether the part is a dot or line mark.
func (p Part) IsModifier() bool {
	switch p.kind {
	case KindDot1, KindDot2, KindDot3, KindDot4,
		KindVowelLine1, KindLine1, KindLine2, KindLine3:
		return true
	}
	return false
}

// TouchesCircle reports whether the part cuts the circle it sits on, so that
// the circle must be broken around it.
func (p Part) TouchesCircle() bool {
	return p.kind == KindCrescent || p.kind == KindQuarter
}

func (p Part) String() string {
	switch p.kind {
	case KindMoon, KindVowelLine1:
		return fmt.Sprintf("%s(%.4f)", p.kind, p.angle)
	case KindEdge:
		return fmt.Sprintf("Edge(%.4f, %.4f)", p.start, p.end)
	}
	return p.kind.String()
}
