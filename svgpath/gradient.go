package svgpath

import (
	"image/color"
)

// GradientUnits is the type for gradient units
type GradientUnits byte

// SVG bounds paremater constants
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

// Gradient holds a description of an SVG linear gradient.
// Gradients are parsed but not bound to any fill.
type Gradient struct {
	ID        string
	Direction Linear
	Stops     []GradStop
	Spread    SpreadMethod
	Units     GradientUnits
}

// UserSpace returns true for gradients expressed in user space
// coordinates (gradientUnits="userSpaceOnUse").
func (g Gradient) UserSpace() bool { return g.Units == UserSpaceOnUse }

// x1, y1, x2, y2
type Linear [4]float64
