package svgscene

// This file defines the typed geometry carried by shape nodes.
// Shapes keep their source geometry instead of being flattened to
// bezier paths, which is left to downstream consumers.

// Geometry is the resolved geometry of a shape element: one of
// Rect, Circle, Ellipse, Line, Polyline or Polygon.
type Geometry interface {
	isGeometry()
}

// Point is a position in document space.
type Point struct{ X, Y float64 }

// Rect is a rectangle, with optional rounded corners of radius
// Rx in the x axis and Ry in the y axis.
type Rect struct {
	X, Y, W, H float64
	Rx, Ry     float64
}

// Circle is a circle of radius R centered at (Cx, Cy).
type Circle struct {
	Cx, Cy, R float64
}

// Ellipse is an axis-aligned ellipse centered at (Cx, Cy).
type Ellipse struct {
	Cx, Cy, Rx, Ry float64
}

// Line is a straight segment between two points.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Polyline is an open sequence of connected points.
type Polyline struct {
	Points []Point
}

// Polygon is a closed sequence of connected points.
type Polygon struct {
	Points []Point
}

func (Rect) isGeometry()     {}
func (Circle) isGeometry()   {}
func (Ellipse) isGeometry()  {}
func (Line) isGeometry()     {}
func (Polyline) isGeometry() {}
func (Polygon) isGeometry()  {}
