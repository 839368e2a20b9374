package svgscene

import (
	"encoding/xml"
	"errors"
	"log"
	"strings"

	"github.com/AntonPoltoratskyi/macaw/pathdata"
)

func init() {
	// avoids cyclical static declaration
	// called on package initialization
	elementFuncs["use"] = useF
}

var (
	errParamMismatch = errors.New("param mismatch")
	errZeroLengthID  = errors.New("zero length id")
)

// cursor is used while parsing SVG files
type cursor struct {
	doc        *Document
	styleStack []Style
	groupStack []*Group

	points     []float64 // scratch slice for attribute lists
	curX, curY float64   // offset applied by the use element

	errorMode                               ErrorMode
	grad                                    *Gradient
	inTitleText, inDescText, inGrad, inDefs bool
	currentDef                              []definition
}

// definition is used to store what's given in a def tag
type definition struct {
	ID, Tag string
	Attrs   []xml.Attr
}

// handleError reacts to an unsupported construct according to the
// error mode: it is fatal only in strict mode.
func (c *cursor) handleError(errStr string) error {
	if c.errorMode == StrictErrorMode {
		return errors.New(errStr)
	} else if c.errorMode == WarnErrorMode {
		log.Println(errStr)
	}
	return nil
}

// style returns the resolved style for the element being read.
func (c *cursor) style() Style {
	return c.styleStack[len(c.styleStack)-1]
}

// node appends a drawable to the group being read.
func (c *cursor) node(n Node) {
	g := c.groupStack[len(c.groupStack)-1]
	g.Children = append(g.Children, n)
}

// shape appends a shape node with the resolved style.
func (c *cursor) shape(geom Geometry) {
	c.node(&Shape{Geom: geom, Style: c.style()})
}

func (c *cursor) readStartElement(se xml.StartElement) (err error) {
	var skipDef bool
	if se.Name.Local == "radialGradient" || se.Name.Local == "linearGradient" || c.inGrad {
		skipDef = true
	}
	if c.inDefs && !skipDef {
		ID := ""
		for _, attr := range se.Attr {
			if attr.Name.Local == "id" {
				ID = attr.Value
			}
		}
		if ID != "" && len(c.currentDef) > 0 {
			c.doc.defs[c.currentDef[0].ID] = c.currentDef
			c.currentDef = make([]definition, 0)
		}
		c.currentDef = append(c.currentDef, definition{
			ID:    ID,
			Tag:   se.Name.Local,
			Attrs: se.Attr,
		})
		return nil
	}
	df, ok := elementFuncs[se.Name.Local]
	if !ok {
		return c.handleError("Cannot process svg element " + se.Name.Local)
	}
	return df(c, se.Attr)
}

type svgFunc func(c *cursor, attrs []xml.Attr) error

var elementFuncs = map[string]svgFunc{
	"svg":            svgF,
	"g":              gF,
	"line":           lineF,
	"stop":           stopF,
	"rect":           rectF,
	"circle":         circleF,
	"ellipse":        ellipseF,
	"polyline":       polylineF,
	"polygon":        polygonF,
	"path":           pathF,
	"desc":           descF,
	"defs":           defsF,
	"title":          titleF,
	"linearGradient": linearGradientF,
	"radialGradient": radialGradientF,
}

func svgF(c *cursor, attrs []xml.Attr) error {
	c.doc.ViewBox = Bounds{}
	var width, height float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			err = c.getPoints(attr.Value)
			if len(c.points) != 4 {
				return errParamMismatch
			}
			c.doc.ViewBox.X = c.points[0]
			c.doc.ViewBox.Y = c.points[1]
			c.doc.ViewBox.W = c.points[2]
			c.doc.ViewBox.H = c.points[3]
		case "width":
			c.doc.Width = attr.Value
			width, err = parseFloat(attr.Value, 64)
		case "height":
			c.doc.Height = attr.Value
			height, err = parseFloat(attr.Value, 64)
		}
		if err != nil {
			return err
		}
	}
	if c.doc.ViewBox.W == 0 {
		c.doc.ViewBox.W = width
	}
	if c.doc.ViewBox.H == 0 {
		c.doc.ViewBox.H = height
	}
	return nil
}

// g pushes the style (generic code) and opens a nested group
func gF(c *cursor, attrs []xml.Attr) error {
	group := &Group{}
	for _, attr := range attrs {
		if attr.Name.Local == "id" {
			group.ID = attr.Value
		}
	}
	c.node(group)
	c.groupStack = append(c.groupStack, group)
	return nil
}

func rectF(c *cursor, attrs []xml.Attr) error {
	var x, y, w, h, rx, ry float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			x, err = c.parseUnit(attr.Value, widthPercentage)
		case "y":
			y, err = c.parseUnit(attr.Value, heightPercentage)
		case "width":
			w, err = c.parseUnit(attr.Value, widthPercentage)
		case "height":
			h, err = c.parseUnit(attr.Value, heightPercentage)
		case "rx":
			rx, err = c.parseUnit(attr.Value, widthPercentage)
		case "ry":
			ry, err = c.parseUnit(attr.Value, heightPercentage)
		}
		if err != nil {
			return err
		}
	}
	if w == 0 || h == 0 { // not drawn, but not an error
		return nil
	}
	c.shape(Rect{X: x + c.curX, Y: y + c.curY, W: w, H: h, Rx: rx, Ry: ry})
	return nil
}

func circleF(c *cursor, attrs []xml.Attr) error {
	var cx, cy, r float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "cx":
			cx, err = c.parseUnit(attr.Value, widthPercentage)
		case "cy":
			cy, err = c.parseUnit(attr.Value, heightPercentage)
		case "r":
			r, err = c.parseUnit(attr.Value, diagPercentage)
		}
		if err != nil {
			return err
		}
	}
	if r == 0 { // not drawn, but not an error
		return nil
	}
	c.shape(Circle{Cx: cx + c.curX, Cy: cy + c.curY, R: r})
	return nil
}

func ellipseF(c *cursor, attrs []xml.Attr) error {
	var cx, cy, rx, ry float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "cx":
			cx, err = c.parseUnit(attr.Value, widthPercentage)
		case "cy":
			cy, err = c.parseUnit(attr.Value, heightPercentage)
		case "r":
			rx, err = c.parseUnit(attr.Value, diagPercentage)
			ry = rx
		case "rx":
			rx, err = c.parseUnit(attr.Value, widthPercentage)
		case "ry":
			ry, err = c.parseUnit(attr.Value, heightPercentage)
		}
		if err != nil {
			return err
		}
	}
	if rx == 0 || ry == 0 { // not drawn, but not an error
		return nil
	}
	c.shape(Ellipse{Cx: cx + c.curX, Cy: cy + c.curY, Rx: rx, Ry: ry})
	return nil
}

func lineF(c *cursor, attrs []xml.Attr) error {
	var x1, x2, y1, y2 float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			x1, err = c.parseUnit(attr.Value, widthPercentage)
		case "x2":
			x2, err = c.parseUnit(attr.Value, widthPercentage)
		case "y1":
			y1, err = c.parseUnit(attr.Value, heightPercentage)
		case "y2":
			y2, err = c.parseUnit(attr.Value, heightPercentage)
		}
		if err != nil {
			return err
		}
	}
	c.shape(Line{X1: x1 + c.curX, Y1: y1 + c.curY, X2: x2 + c.curX, Y2: y2 + c.curY})
	return nil
}

// readPolyPoints resolves the points attribute into a point list.
func (c *cursor) readPolyPoints(attrs []xml.Attr) ([]Point, error) {
	for _, attr := range attrs {
		if attr.Name.Local != "points" {
			continue
		}
		if err := c.getPoints(attr.Value); err != nil {
			return nil, err
		}
		if len(c.points)%2 != 0 {
			return nil, errors.New("polygon has odd number of points")
		}
		points := make([]Point, 0, len(c.points)/2)
		for i := 0; i < len(c.points)-1; i += 2 {
			points = append(points, Point{X: c.points[i] + c.curX, Y: c.points[i+1] + c.curY})
		}
		return points, nil
	}
	return nil, nil
}

func polylineF(c *cursor, attrs []xml.Attr) error {
	points, err := c.readPolyPoints(attrs)
	if err != nil {
		return err
	}
	if len(points) >= 2 {
		c.shape(Polyline{Points: points})
	}
	return nil
}

func polygonF(c *cursor, attrs []xml.Attr) error {
	points, err := c.readPolyPoints(attrs)
	if err != nil {
		return err
	}
	if len(points) >= 2 {
		c.shape(Polygon{Points: points})
	}
	return nil
}

func pathF(c *cursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local != "d" {
			continue
		}
		var segments pathdata.Path
		if c.errorMode == IgnoreErrorMode {
			segments = pathdata.Parse(attr.Value)
		} else {
			var err error
			segments, err = pathdata.ParseStrict(attr.Value)
			if err != nil {
				if c.errorMode == StrictErrorMode {
					return err
				}
				log.Println(err)
			}
		}
		if len(segments) == 0 { // empty or unusable path data: no node
			continue
		}
		c.node(&Path{D: offsetPath(segments, c.curX, c.curY), Style: c.style()})
	}
	return nil
}

// offsetPath shifts the absolute coordinates of a path. Relative
// coordinates are left unchanged: current point tracking is the
// consumer's concern.
func offsetPath(p pathdata.Path, dx, dy float64) pathdata.Path {
	if dx == 0 && dy == 0 {
		return p
	}
	out := make(pathdata.Path, len(p))
	for i, seg := range p {
		switch seg := seg.(type) {
		case pathdata.MoveTo:
			if seg.Abs {
				seg.X += dx
				seg.Y += dy
			}
			out[i] = seg
		case pathdata.LineTo:
			if seg.Abs {
				seg.X += dx
				seg.Y += dy
			}
			out[i] = seg
		case pathdata.HLineTo:
			if seg.Abs {
				seg.X += dx
			}
			out[i] = seg
		case pathdata.VLineTo:
			if seg.Abs {
				seg.Y += dy
			}
			out[i] = seg
		case pathdata.CubicTo:
			if seg.Abs {
				seg.X1 += dx
				seg.Y1 += dy
				seg.X2 += dx
				seg.Y2 += dy
				seg.X += dx
				seg.Y += dy
			}
			out[i] = seg
		default:
			out[i] = seg
		}
	}
	return out
}

func descF(c *cursor, attrs []xml.Attr) error {
	c.inDescText = true
	c.doc.Descriptions = append(c.doc.Descriptions, "")
	return nil
}

func titleF(c *cursor, attrs []xml.Attr) error {
	c.inTitleText = true
	c.doc.Titles = append(c.doc.Titles, "")
	return nil
}

func defsF(c *cursor, attrs []xml.Attr) error {
	c.inDefs = true
	return nil
}

func linearGradientF(c *cursor, attrs []xml.Attr) error {
	var err error
	c.inGrad = true
	direction := Linear{0, 0, 1, 0}
	c.grad = &Gradient{Direction: direction, Bounds: c.doc.ViewBox}
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "id":
			id := attr.Value
			if len(id) == 0 {
				return errZeroLengthID
			}
			c.doc.grads[id] = c.grad
		case "x1":
			direction[0], err = readFraction(attr.Value)
		case "y1":
			direction[1], err = readFraction(attr.Value)
		case "x2":
			direction[2], err = readFraction(attr.Value)
		case "y2":
			direction[3], err = readFraction(attr.Value)
		default:
			err = c.readGradAttr(attr)
		}
		if err != nil {
			return err
		}
	}
	c.grad.Direction = direction
	return nil
}

func radialGradientF(c *cursor, attrs []xml.Attr) error {
	c.inGrad = true
	direction := Radial{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}
	c.grad = &Gradient{Direction: direction, Bounds: c.doc.ViewBox}
	var setFx, setFy bool
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "id":
			id := attr.Value
			if len(id) == 0 {
				return errZeroLengthID
			}
			c.doc.grads[id] = c.grad
		case "cx":
			direction[0], err = readFraction(attr.Value)
		case "cy":
			direction[1], err = readFraction(attr.Value)
		case "fx":
			setFx = true
			direction[2], err = readFraction(attr.Value)
		case "fy":
			setFy = true
			direction[3], err = readFraction(attr.Value)
		case "r":
			direction[4], err = readFraction(attr.Value)
		case "fr":
			direction[5], err = readFraction(attr.Value)
		default:
			err = c.readGradAttr(attr)
		}
		if err != nil {
			return err
		}
	}
	if !setFx { // set fx to cx by default
		direction[2] = direction[0]
	}
	if !setFy { // set fy to cy by default
		direction[3] = direction[1]
	}
	c.grad.Direction = direction
	return nil
}

func stopF(c *cursor, attrs []xml.Attr) error {
	var err error
	if c.inGrad {
		stop := GradStop{Opacity: 1.0}
		for _, attr := range attrs {
			switch attr.Name.Local {
			case "offset":
				stop.Offset, err = readFraction(attr.Value)
			case "stop-color":
				var optColor optionnalColor
				optColor, err = parseSVGColor(attr.Value)
				stop.StopColor = optColor.asColor()
			case "stop-opacity":
				stop.Opacity, err = parseFloat(attr.Value, 64)
			}
			if err != nil {
				return err
			}
		}
		c.grad.Stops = append(c.grad.Stops, stop)
	}
	return nil
}

func useF(c *cursor, attrs []xml.Attr) error {
	var (
		href string
		x, y float64
		err  error
	)
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "href":
			href = attr.Value
		case "x":
			x, err = c.parseUnit(attr.Value, widthPercentage)
		case "y":
			y, err = c.parseUnit(attr.Value, heightPercentage)
		}
		if err != nil {
			return err
		}
	}
	c.curX, c.curY = x, y
	defer func() {
		c.curX, c.curY = 0, 0
	}()
	if href == "" {
		return errors.New("only use tags with href is supported")
	}
	if !strings.HasPrefix(href, "#") {
		return errors.New("only the ID CSS selector is supported")
	}
	defs, ok := c.doc.defs[href[1:]]
	if !ok {
		return errors.New("href ID in use statement was not found in saved defs")
	}
	for _, def := range defs {
		if def.Tag == "endg" {
			// pop style and group
			c.styleStack = c.styleStack[:len(c.styleStack)-1]
			c.groupStack = c.groupStack[:len(c.groupStack)-1]
			continue
		}
		if err = c.pushStyle(def.Attrs); err != nil {
			return err
		}
		df, ok := elementFuncs[def.Tag]
		if !ok {
			return c.handleError("Cannot process svg element " + def.Tag)
		}
		if err := df(c, def.Attrs); err != nil {
			return err
		}
		if def.Tag != "g" {
			// pop style
			c.styleStack = c.styleStack[:len(c.styleStack)-1]
		}
	}
	return nil
}
