// Implements an abstract representation of
// svg path data, as found in the `d` attribute
// of a path element, which can then be consumed
// by a scene graph or a painting driver.
package svgpath

import (
	"fmt"
	"strings"
)

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathCubicTo
	pathClose
)

// Operation groups the different SVG commands
type Operation interface {
	command() pathCommand
}

// MoveTo starts a new subpath at (X, Y).
// Abs is false when the command was written in lower case,
// in which case the coordinates are relative to the current point.
type MoveTo struct {
	X, Y float64
	Abs  bool
}

// LineTo draws a straight line to (X, Y).
type LineTo struct {
	X, Y float64
	Abs  bool
}

// CubicTo draws a cubic bezier curve to (X, Y),
// using (X1, Y1) and (X2, Y2) as control points.
type CubicTo struct {
	X1, Y1, X2, Y2, X, Y float64
	Abs                  bool
}

// Close joins the current point to the start of the subpath.
type Close struct{}

func (MoveTo) command() pathCommand  { return pathMoveTo }
func (LineTo) command() pathCommand  { return pathLineTo }
func (CubicTo) command() pathCommand { return pathCubicTo }
func (Close) command() pathCommand   { return pathClose }

// Path describes a sequence of basic SVG operations.
type Path []Operation

func letter(abs bool, upper byte) byte {
	if abs {
		return upper
	}
	return upper + 'a' - 'A'
}

// ToSVGPath returns a string representation of the path,
// which may be parsed again by `Parse`.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("%c%g %g", letter(op.Abs, 'M'), op.X, op.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("%c%g %g", letter(op.Abs, 'L'), op.X, op.Y)
		case CubicTo:
			chunks[i] = fmt.Sprintf("%c%g %g %g %g %g %g", letter(op.Abs, 'C'),
				op.X1, op.Y1, op.X2, op.Y2, op.X, op.Y)
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

// ToAbsolute returns a copy of the path where every relative
// operation has been resolved against the current point.
// A relative MoveTo at the start of the path is relative to the origin.
func (p Path) ToAbsolute() Path {
	out := make(Path, len(p))
	var curX, curY, startX, startY float64
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			if !op.Abs {
				op.X, op.Y = op.X+curX, op.Y+curY
				op.Abs = true
			}
			curX, curY = op.X, op.Y
			startX, startY = op.X, op.Y
			out[i] = op
		case LineTo:
			if !op.Abs {
				op.X, op.Y = op.X+curX, op.Y+curY
				op.Abs = true
			}
			curX, curY = op.X, op.Y
			out[i] = op
		case CubicTo:
			if !op.Abs {
				op.X1, op.Y1 = op.X1+curX, op.Y1+curY
				op.X2, op.Y2 = op.X2+curX, op.Y2+curY
				op.X, op.Y = op.X+curX, op.Y+curY
				op.Abs = true
			}
			curX, curY = op.X, op.Y
			out[i] = op
		case Close:
			curX, curY = startX, startY
			out[i] = op
		}
	}
	return out
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new subpath at the given absolute point.
func (p *Path) Start(x, y float64) {
	*p = append(*p, MoveTo{X: x, Y: y, Abs: true})
}

// Line adds a linear segment to the current subpath.
func (p *Path) Line(x, y float64) {
	*p = append(*p, LineTo{X: x, Y: y, Abs: true})
}

// CubeBezier adds a cubic segment to the current subpath.
func (p *Path) CubeBezier(x1, y1, x2, y2, x, y float64) {
	*p = append(*p, CubicTo{X1: x1, Y1: y1, X2: x2, Y2: y2, X: x, Y: y, Abs: true})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}
