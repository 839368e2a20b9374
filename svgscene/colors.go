package svgscene

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Pattern is the paint of a fill or stroke operation:
// either a PlainColor or a *Gradient.
type Pattern interface {
	isPattern()
}

// PlainColor is a non-transparent solid color.
type PlainColor struct {
	color.NRGBA
}

// NewPlainColor returns an opaque color pattern.
func NewPlainColor(r, g, b, a uint8) PlainColor {
	return PlainColor{NRGBA: color.NRGBA{R: r, G: g, B: b, A: a}}
}

func (PlainColor) isPattern() {}

// optionnalColor distinguishes a valid color from a "none" value,
// which disables the operation and is not the same as black.
type optionnalColor struct {
	color color.NRGBA
	valid bool
}

func (c optionnalColor) asPattern() Pattern {
	if !c.valid {
		return nil
	}
	return PlainColor{NRGBA: c.color}
}

func (c optionnalColor) asColor() color.Color {
	if !c.valid {
		return nil
	}
	return c.color
}

// parseSVGColorNum reads an SVG color string in hexadecimal form,
// e.g. #FBD9BD. A 3 digit form duplicates each character.
func parseSVGColorNum(colorStr string) (r, g, b uint8, err error) {
	colorStr = strings.TrimPrefix(colorStr, "#")
	if len(colorStr) != 6 {
		if len(colorStr) < 3 {
			return 0, 0, 0, errParamMismatch
		}
		// SVG specs say duplicate characters in case of 3 digit hex number
		colorStr = string([]byte{colorStr[0], colorStr[0],
			colorStr[1], colorStr[1], colorStr[2], colorStr[2]})
	}
	var t uint64
	for _, v := range []struct {
		c *uint8
		s string
	}{
		{&r, colorStr[0:2]},
		{&g, colorStr[2:4]},
		{&b, colorStr[4:6]},
	} {
		t, err = strconv.ParseUint(v.s, 16, 8)
		if err != nil {
			return
		}
		*v.c = uint8(t)
	}
	return
}

// parseColorValue reads one component of an rgb() color, either an
// integer in [0, 255] or a percentage.
func parseColorValue(v string) (uint8, error) {
	if strings.HasSuffix(v, "%") {
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(v, "%")))
		if err != nil {
			return 0, err
		}
		return uint8(n * 0xFF / 100), nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if n > 255 {
		n = 255
	}
	return uint8(n), err
}

// parseSVGColor parses an SVG color string in all forms,
// including the SVG1.1 names from the colornames package.
func parseSVGColor(colorStr string) (optionnalColor, error) {
	v := strings.ToLower(strings.TrimSpace(colorStr))
	switch v {
	case "none", "":
		// nil signals that the function (fill or stroke) is off;
		// not the same as black
		return optionnalColor{}, nil
	default:
		if cn, ok := colornames.Map[v]; ok {
			return optionnalColor{valid: true, color: color.NRGBA{R: cn.R, G: cn.G, B: cn.B, A: cn.A}}, nil
		}
	}
	if cStr := strings.TrimPrefix(v, "rgb("); cStr != v {
		cStr = strings.TrimSuffix(cStr, ")")
		vals := strings.Split(cStr, ",")
		if len(vals) != 3 {
			return optionnalColor{}, errParamMismatch
		}
		var cvals [3]uint8
		for i := range cvals {
			var err error
			cvals[i], err = parseColorValue(vals[i])
			if err != nil {
				return optionnalColor{}, err
			}
		}
		return optionnalColor{valid: true, color: color.NRGBA{R: cvals[0], G: cvals[1], B: cvals[2], A: 0xFF}}, nil
	}
	if strings.HasPrefix(v, "#") {
		r, g, b, err := parseSVGColorNum(v)
		if err != nil {
			return optionnalColor{}, err
		}
		return optionnalColor{valid: true, color: color.NRGBA{R: r, G: g, B: b, A: 0xFF}}, nil
	}
	return optionnalColor{}, errParamMismatch
}
