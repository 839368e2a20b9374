// Package pathdata parses the mini-language found in the `d` attribute
// of SVG path elements into a sequence of typed drawing segments.
// Only the move, line, horizontal/vertical line, cubic curve and
// close-path commands are supported; arcs and smooth or quadratic
// variants are out of scope.
package pathdata

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported path commands.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindMove
	KindLine
	KindHLine
	KindVLine
	KindCubic
	KindClose
)

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "Move"
	case KindLine:
		return "Line"
	case KindHLine:
		return "HLine"
	case KindVLine:
		return "VLine"
	case KindCubic:
		return "Cubic"
	case KindClose:
		return "Close"
	default:
		return "<unknown Kind>"
	}
}

// Segment is one typed drawing operation with its operands.
// Coordinates are document-space when the segment is absolute,
// offsets from the current point otherwise; tracking the current
// point is the consumer's concern.
type Segment interface {
	// Kind returns the command this segment was decoded from.
	Kind() Kind
}

// MoveTo starts a new subpath at (X, Y).
type MoveTo struct {
	X, Y float64
	Abs  bool
}

// LineTo draws a straight line to (X, Y).
type LineTo struct {
	X, Y float64
	Abs  bool
}

// HLineTo draws a horizontal line to X.
type HLineTo struct {
	X   float64
	Abs bool
}

// VLineTo draws a vertical line to Y.
type VLineTo struct {
	Y   float64
	Abs bool
}

// CubicTo draws a cubic bezier curve to (X, Y) with control
// points (X1, Y1) and (X2, Y2).
type CubicTo struct {
	X1, Y1, X2, Y2, X, Y float64
	Abs                  bool
}

// Close closes the current subpath. A relative close is
// grammatically identical to an absolute one.
type Close struct{}

func (MoveTo) Kind() Kind  { return KindMove }
func (LineTo) Kind() Kind  { return KindLine }
func (HLineTo) Kind() Kind { return KindHLine }
func (VLineTo) Kind() Kind { return KindVLine }
func (CubicTo) Kind() Kind { return KindCubic }
func (Close) Kind() Kind   { return KindClose }

// Path describes an ordered sequence of segments; order is drawing order.
type Path []Segment

// letter returns the command letter for the given kind,
// upper case when abs is true.
func letter(k Kind, abs bool) byte {
	var l byte
	switch k {
	case KindMove:
		l = 'M'
	case KindLine:
		l = 'L'
	case KindHLine:
		l = 'H'
	case KindVLine:
		l = 'V'
	case KindCubic:
		l = 'C'
	case KindClose:
		return 'Z'
	}
	if !abs {
		l += 'a' - 'A'
	}
	return l
}

// ToSVGPath returns a string representation of the path,
// suitable to be parsed again.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, seg := range p {
		switch seg := seg.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("%c%4.3f,%4.3f", letter(KindMove, seg.Abs), seg.X, seg.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("%c%4.3f,%4.3f", letter(KindLine, seg.Abs), seg.X, seg.Y)
		case HLineTo:
			chunks[i] = fmt.Sprintf("%c%4.3f", letter(KindHLine, seg.Abs), seg.X)
		case VLineTo:
			chunks[i] = fmt.Sprintf("%c%4.3f", letter(KindVLine, seg.Abs), seg.Y)
		case CubicTo:
			chunks[i] = fmt.Sprintf("%c%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f", letter(KindCubic, seg.Abs),
				seg.X1, seg.Y1, seg.X2, seg.Y2, seg.X, seg.Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}
