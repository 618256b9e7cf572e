package svgscene

import "fmt"

// Color is an opaque RGB color.
// It implements image/color.Color.
type Color struct{ R, G, B uint8 }

// Black is the default color for fills and strokes.
var Black = Color{}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// String returns the hexadecimal notation of the color, such as #ff0000
func (c Color) String() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// Font describes the font used by a text node.
type Font struct {
	Name      string
	Size      int // in points
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
}

// JoinMode type to specify how segments join.
type JoinMode uint8

// JoinMode constants determine how stroke segments bridge the gap at a join
const (
	Round JoinMode = iota
	Bevel
	Miter
)

func (s JoinMode) String() string {
	switch s {
	case Round:
		return "Round"
	case Bevel:
		return "Bevel"
	case Miter:
		return "Miter"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	RoundCap CapMode = iota
	ButtCap
	SquareCap
)

func (c CapMode) String() string {
	switch c {
	case ButtCap:
		return "ButtCap"
	case SquareCap:
		return "SquareCap"
	case RoundCap:
		return "RoundCap"
	default:
		return "<unknown CapMode>"
	}
}

// Stroke describes how the outline of a shape is painted.
// A zero width disables stroking.
type Stroke struct {
	Color Color
	Width float64
	Cap   CapMode
	Join  JoinMode
}
