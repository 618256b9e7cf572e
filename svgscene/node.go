// Package svgscene defines the scene graph produced
// when parsing an SVG document: a tree of groups,
// whose leaves are shapes, texts and images.
//
// The tree is plain data: it holds no reference to the
// source document and may be consumed by any painting driver
// (see svgdraw).
package svgscene

import "github.com/benoitkugler/svgscene/svgpath"

// Node is one element of the scene graph.
// The concrete types are *Group, *Shape, *Text, *Image and *Empty.
type Node interface {
	// Transform returns the position of the node
	// relative to its parent.
	Transform() Matrix2D

	isNode()
}

// Group is an ordered container of nodes.
type Group struct {
	Contents []Node // in document order
	Pos      Matrix2D
	Opaque   bool
	Visible  bool
	Clip     Geometry // optional, nil for no clipping
	Tags     []string // unordered
}

// NewGroup returns an empty, opaque and visible group,
// with no clip and no tags.
func NewGroup() *Group {
	return &Group{Pos: Identity, Opaque: true, Visible: true}
}

// Append adds `nodes` at the end of the group content.
func (g *Group) Append(nodes ...Node) {
	g.Contents = append(g.Contents, nodes...)
}

// Shape is a geometry painted with a fill color and a stroke.
type Shape struct {
	Form   Geometry
	Fill   Color
	Stroke Stroke
	Pos    Matrix2D
}

// Text is a single line of text.
type Text struct {
	Text string
	Font Font
	Fill Color
	Pos  Matrix2D
}

// Image is an external raster image.
type Image struct {
	Src  string // URI of the resource (may be a data URI)
	W, H int
	Pos  Matrix2D
}

// Empty is an inert placeholder, used for
// elements which have no graphical meaning.
type Empty struct {
	Pos Matrix2D
}

// NewEmpty returns a placeholder with identity transform.
func NewEmpty() *Empty { return &Empty{Pos: Identity} }

func (g *Group) Transform() Matrix2D { return g.Pos }
func (s *Shape) Transform() Matrix2D { return s.Pos }
func (t *Text) Transform() Matrix2D  { return t.Pos }
func (i *Image) Transform() Matrix2D { return i.Pos }
func (e *Empty) Transform() Matrix2D { return e.Pos }

func (*Group) isNode() {}
func (*Shape) isNode() {}
func (*Text) isNode()  {}
func (*Image) isNode() {}
func (*Empty) isNode() {}

// Geometry is the form of a shape.
// The concrete types are Rect, Circle, Ellipse, Line,
// Polygon, Polyline and Path.
type Geometry interface {
	isGeometry()
}

type Rect struct{ X, Y, W, H float64 }

type Circle struct{ Cx, Cy, R float64 }

type Ellipse struct{ Cx, Cy, Rx, Ry float64 }

type Line struct{ X1, Y1, X2, Y2 float64 }

// Point is a 2D coordinate pair.
type Point struct{ X, Y float64 }

// Polygon is a closed sequence of points.
type Polygon struct{ Points []Point }

// Polyline is an open sequence of points.
type Polyline struct{ Points []Point }

// Path is an arbitrary outline, made of path operations.
type Path struct{ Segments svgpath.Path }

func (Rect) isGeometry()     {}
func (Circle) isGeometry()   {}
func (Ellipse) isGeometry()  {}
func (Line) isGeometry()     {}
func (Polygon) isGeometry()  {}
func (Polyline) isGeometry() {}
func (Path) isGeometry()     {}
