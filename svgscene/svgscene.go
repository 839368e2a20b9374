// Provides parsing of SVG documents into a typed scene graph
// of groups, shapes and paths, with resolved fill and stroke styling.
// The abstract representation can then be consumed by rendering or
// geometry processing drivers.
package svgscene

import (
	"encoding/xml"
	"errors"
	"io"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/AntonPoltoratskyi/macaw/pathdata"
)

// ErrorMode defines how the parser reacts to unsupported content
// and malformed path data.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported or malformed content silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode skips unsupported or malformed content with a log line.
	WarnErrorMode
	// StrictErrorMode aborts parsing on unsupported or malformed content.
	StrictErrorMode
)

// Bounds defines a bounding box, such as a viewport.
type Bounds struct{ X, Y, W, H float64 }

// Node is one element of the scene graph: *Group, *Shape or *Path.
type Node interface {
	walk(fn func(Node))
}

// Group holds an ordered list of child nodes. Its style is already
// resolved into the children.
type Group struct {
	ID       string
	Children []Node
}

// Shape is a geometric primitive bound to its resolved style.
type Shape struct {
	Geom  Geometry
	Style Style
}

// Path binds parsed path data to its resolved style.
type Path struct {
	D     pathdata.Path
	Style Style
}

func (g *Group) walk(fn func(Node)) {
	fn(g)
	for _, child := range g.Children {
		child.walk(fn)
	}
}
func (s *Shape) walk(fn func(Node)) { fn(s) }
func (p *Path) walk(fn func(Node)) { fn(p) }

// Document holds data from a parsed SVG.
type Document struct {
	ViewBox      Bounds
	Titles       []string // Title elements collect here
	Descriptions []string // Description elements collect here
	Root         *Group

	Width, Height string // top level width and height attributes

	grads map[string]*Gradient
	defs  map[string][]definition
}

// Walk visits every node of the scene graph depth-first,
// in document order.
func (d *Document) Walk(fn func(Node)) {
	if d.Root != nil {
		d.Root.walk(fn)
	}
}

// ReadSceneStream reads a scene from the given io.Reader.
// This only supports a sub-set of SVG, but is enough for many
// documents. errMode determines if the parser ignores, errors out, or
// logs a warning if it does not handle an element found in the document.
func ReadSceneStream(stream io.Reader, errMode ErrorMode) (*Document, error) {
	doc := &Document{
		Root:  &Group{},
		defs:  make(map[string][]definition),
		grads: make(map[string]*Gradient),
	}
	c := &cursor{
		doc:        doc,
		styleStack: []Style{DefaultStyle},
		groupStack: []*Group{doc.Root},
		errorMode:  errMode,
	}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg xml document")
				}
				break
			}
			return doc, err
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			// Reads all recognized style attributes from the start element
			// and places it on top of the styleStack
			err = c.pushStyle(se.Attr)
			if err != nil {
				return doc, err
			}
			err = c.readStartElement(se)
			if err != nil {
				return doc, err
			}
		case xml.EndElement:
			// pop style
			c.styleStack = c.styleStack[:len(c.styleStack)-1]
			switch se.Name.Local {
			case "g":
				if c.inDefs {
					c.currentDef = append(c.currentDef, definition{
						Tag: "endg",
					})
				} else if len(c.groupStack) > 1 {
					c.groupStack = c.groupStack[:len(c.groupStack)-1]
				}
			case "title":
				c.inTitleText = false
			case "desc":
				c.inDescText = false
			case "defs":
				if len(c.currentDef) > 0 {
					doc.defs[c.currentDef[0].ID] = c.currentDef
					c.currentDef = make([]definition, 0)
				}
				c.inDefs = false
			case "radialGradient", "linearGradient":
				c.inGrad = false
			}
		case xml.CharData:
			if c.inTitleText {
				doc.Titles[len(doc.Titles)-1] += string(se)
			}
			if c.inDescText {
				doc.Descriptions[len(doc.Descriptions)-1] += string(se)
			}
		}
	}
	return doc, nil
}

// ReadScene reads a scene from the named file.
// See ReadSceneStream for the supported content.
func ReadScene(svgFile string, errMode ErrorMode) (*Document, error) {
	fin, errf := os.Open(svgFile)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadSceneStream(fin, errMode)
}
