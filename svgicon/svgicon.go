// Provides parsing of SVG images into a scene graph.
// SVG files are parsed into a tree of svgscene nodes,
// which can then be consumed by painting drivers.
// See for example svgscene/svgraster or svgscene/svgpdf .
package svgicon

import (
	"io"
	"os"
	"strings"

	"github.com/benoitkugler/svgscene/svgpath"
	"github.com/benoitkugler/svgscene/svgscene"
	"github.com/rs/zerolog"
)

// ErrorMode determines how unsupported elements are reported.
type ErrorMode uint8

const (
	// IgnoreErrorMode silently replaces unsupported elements by empty nodes.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning for each unsupported element.
	WarnErrorMode
	// StrictErrorMode aborts the parsing on the first unsupported element.
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "IgnoreErrorMode"
	case WarnErrorMode:
		return "WarnErrorMode"
	case StrictErrorMode:
		return "StrictErrorMode"
	default:
		return "<unknown ErrorMode>"
	}
}

// Bounds defines a bounding box, such as a viewport
type Bounds struct{ X, Y, W, H float64 }

// SvgIcon holds data from parsed SVGs.
type SvgIcon struct {
	// Root is the scene graph; its content mirrors
	// the children of the root element.
	Root *svgscene.Group

	ViewBox       Bounds
	Width, Height float64 // top level width and height attributes

	Titles       []string // Title elements collect here
	Descriptions []string // Description elements collect here

	// Gradients are parsed, keyed by id, but are not
	// used by the fills of the scene.
	Gradients map[string]*svgpath.Gradient
}

// Target returns the transform mapping the view box of the icon
// to the rectangle given as arguments.
// Without view box, only the translation is applied.
func (s *SvgIcon) Target(x, y, w, h float64) svgscene.Matrix2D {
	scaleW, scaleH := 1., 1.
	if s.ViewBox.W > 0 && s.ViewBox.H > 0 {
		scaleW = w / s.ViewBox.W
		scaleH = h / s.ViewBox.H
	}
	return svgscene.Identity.Translate(x, y).Scale(scaleW, scaleH).Translate(-s.ViewBox.X, -s.ViewBox.Y)
}

// Parser converts SVG documents.
// The zero value is ready to use, ignoring unsupported elements
// and logging nothing.
type Parser struct {
	ErrorMode ErrorMode
	Logger    *zerolog.Logger // optional
}

func (p Parser) logger() zerolog.Logger {
	if p.Logger == nil {
		return zerolog.Nop()
	}
	return *p.Logger
}

// ReadIconStream reads the Icon from the given io.Reader
// This only supports a sub-set of SVG, but
// is enough to draw many icons.
func (p Parser) ReadIconStream(stream io.Reader) (*SvgIcon, error) {
	root, err := ParseTree(stream)
	if err != nil {
		return nil, err
	}
	return p.convert(root)
}

// ReadIconStream reads the Icon from the given io.Reader
// This only supports a sub-set of SVG, but
// is enough to draw many icons. errMode determines if the icon ignores, errors out, or logs a warning
// if it does not handle an element found in the icon file.
func ReadIconStream(stream io.Reader, errMode ErrorMode) (*SvgIcon, error) {
	return Parser{ErrorMode: errMode}.ReadIconStream(stream)
}

// ReadIcon reads the Icon from the named file
// This only supports a sub-set of SVG, but
// is enough to draw many icons. errMode determines if the icon ignores, errors out, or logs a warning
// if it does not handle an element found in the icon file.
func ReadIcon(iconFile string, errMode ErrorMode) (*SvgIcon, error) {
	fin, errf := os.Open(iconFile)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadIconStream(fin, errMode)
}

// Parse converts the SVG document `doc` and returns
// the root of its scene graph.
// Unsupported elements are ignored; the only errors are
// invalid XML and malformed path data.
func Parse(doc string) (*svgscene.Group, error) {
	icon, err := ReadIconStream(strings.NewReader(doc), IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	return icon.Root, nil
}
