package svgscene

import (
	"encoding/xml"
	"image/color"
	"strings"
)

// GradientUnits is the type for gradient units
type GradientUnits byte

// SVG bounds parameter constants
const (
	ObjectBoundingBox GradientUnits = iota
	UserSpaceOnUse
)

// SpreadMethod is the type for spread parameters
type SpreadMethod byte

// SVG spread parameter constants
const (
	PadSpread SpreadMethod = iota
	ReflectSpread
	RepeatSpread
)

// GradStop represents a stop in the SVG 2.0 gradient specification
type GradStop struct {
	StopColor color.Color
	Offset    float64
	Opacity   float64
}

// Gradient holds a description of an SVG 2.0 gradient
type Gradient struct {
	Direction gradientDirecter
	Stops     []GradStop
	Bounds    Bounds
	Spread    SpreadMethod
	Units     GradientUnits
}

func (*Gradient) isPattern() {}

// radial or linear
type gradientDirecter interface {
	isRadial() bool
}

// Linear is the direction of a linear gradient: x1, y1, x2, y2
type Linear [4]float64

func (Linear) isRadial() bool { return false }

// Radial is the direction of a radial gradient: cx, cy, fx, fy, r, fr
type Radial [6]float64

func (Radial) isRadial() bool { return true }

// readGradURL reads an url(#id) pattern reference. ok is true when the
// value was an url: the caller must not try other color forms. A
// reference to a missing gradient resolves to defaultColor.
func (c *cursor) readGradURL(v string, defaultColor Pattern) (grad Pattern, ok bool) {
	if !strings.HasPrefix(v, "url(") || !strings.HasSuffix(v, ")") {
		return nil, false
	}
	urlStr := strings.TrimSpace(v[4 : len(v)-1])
	if !strings.HasPrefix(urlStr, "#") {
		// only the ID selector is supported
		return defaultColor, true
	}
	g, found := c.doc.grads[urlStr[1:]]
	if !found {
		return defaultColor, true
	}
	// make a copy, so that the gradient may be resolved against the
	// bounds of the node using it
	gCopy := *g
	gCopy.Stops = append([]GradStop{}, g.Stops...)
	return &gCopy, true
}

// readGradAttr handles the attributes common to both gradient kinds.
// The gradientTransform attribute is not supported and ignored.
func (c *cursor) readGradAttr(attr xml.Attr) (err error) {
	switch attr.Name.Local {
	case "gradientUnits":
		switch strings.TrimSpace(attr.Value) {
		case "userSpaceOnUse":
			c.grad.Units = UserSpaceOnUse
		case "objectBoundingBox":
			c.grad.Units = ObjectBoundingBox
		}
	case "spreadMethod":
		switch strings.TrimSpace(attr.Value) {
		case "pad":
			c.grad.Spread = PadSpread
		case "reflect":
			c.grad.Spread = ReflectSpread
		case "repeat":
			c.grad.Spread = RepeatSpread
		}
	}
	return nil
}
