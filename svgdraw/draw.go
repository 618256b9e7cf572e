// Given a scene graph built from an SVG document, implements how to
// draw it on screen.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.
package svgdraw

import (
	"image/color"

	"github.com/benoitkugler/svgscene/svgpath"
	"github.com/benoitkugler/svgscene/svgscene"
	"github.com/rs/zerolog"
	"golang.org/x/image/math/fixed"
)

// Drawer knows how to do the actual draw operations
// but doesn't need any SVG kwowledge
// In particular, tranformations matrix are already applied to the points
// before sending them to the Drawer.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor set the color for the current path
	SetColor(color color.Color, opacity float64)

	// Draw fills or strokes the accumulated path using the current settings
	// depending on the filling mode
	Draw()
}

type Filler interface {
	Drawer

	// Decide to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// Parametrize the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every shape.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	// When both booleans are true, one can assume that the exact same draw operations
	// will be performed on the Filler first and then on the Stroker.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

// TextDriver may be implemented by drivers able to render text.
// Text nodes are skipped by other drivers.
type TextDriver interface {
	// DrawText writes `text` with its baseline starting at `at`,
	// `size` being the font size after transformation.
	DrawText(text string, font svgscene.Font, size float64, color color.Color, opacity float64, at fixed.Point26_6)
}

type StrokeOptions struct {
	LineWidth fixed.Int26_6 // width of the line, after transformation
	Cap       svgscene.CapMode
	Join      svgscene.JoinMode
}

func fToFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

// Painter walks a scene graph and sends its shapes to a Driver.
// The zero value is not usable: Opacity should be set
// (see Draw for the common case).
type Painter struct {
	Opacity float64
	Logger  *zerolog.Logger // optional
}

// Draw the scene `root` into the driver `d`, without additional transformation.
func Draw(root *svgscene.Group, d Driver, opacity float64) {
	Painter{Opacity: opacity}.Draw(root, d, svgscene.Identity)
}

// Draw the scene `root` into the driver `d`, applying `m` on top of
// the transforms of the nodes.
func (p Painter) Draw(root *svgscene.Group, d Driver, m svgscene.Matrix2D) {
	log := zerolog.Nop()
	if p.Logger != nil {
		log = *p.Logger
	}
	w := walker{driver: d, opacity: p.Opacity, log: log}
	w.drawNode(root, m)
}

type walker struct {
	driver  Driver
	opacity float64
	log     zerolog.Logger
}

func (w walker) drawNode(node svgscene.Node, parent svgscene.Matrix2D) {
	m := parent.Mult(node.Transform())
	switch node := node.(type) {
	case *svgscene.Group:
		if !node.Visible {
			w.log.Debug().Int("children", len(node.Contents)).Msg("skipping hidden group")
			return
		}
		for _, child := range node.Contents {
			w.drawNode(child, m)
		}
	case *svgscene.Shape:
		w.drawShape(node, m)
	case *svgscene.Text:
		w.drawText(node, m)
	case *svgscene.Image:
		w.log.Debug().Str("src", node.Src).Msg("images are not drawn")
	case *svgscene.Empty:
		// nothing to do
	}
}

// ShapePath returns the outline of the geometry `form`,
// with absolute coordinates.
// The boolean is false for geometries which can't be filled.
func ShapePath(form svgscene.Geometry) (svgpath.Path, bool) {
	var path svgpath.Path
	switch form := form.(type) {
	case svgscene.Rect:
		path.AddRect(form.X, form.Y, form.X+form.W, form.Y+form.H)
	case svgscene.Circle:
		path.AddEllipse(form.Cx, form.Cy, form.R, form.R)
	case svgscene.Ellipse:
		path.AddEllipse(form.Cx, form.Cy, form.Rx, form.Ry)
	case svgscene.Line:
		path.Start(form.X1, form.Y1)
		path.Line(form.X2, form.Y2)
		return path, false
	case svgscene.Polygon:
		addPolyline(&path, form.Points)
		path.Stop(len(form.Points) != 0)
	case svgscene.Polyline:
		addPolyline(&path, form.Points)
	case svgscene.Path:
		return form.Segments.ToAbsolute(), true
	}
	return path, true
}

func addPolyline(path *svgpath.Path, points []svgscene.Point) {
	for i, pt := range points {
		if i == 0 {
			path.Start(pt.X, pt.Y)
		} else {
			path.Line(pt.X, pt.Y)
		}
	}
}

// drawTo adds the path on the driver `d`, after aplying the transform `m`
func drawTo(path svgpath.Path, d Drawer, m svgscene.Matrix2D) {
	inPath := false
	for _, op := range path {
		switch op := op.(type) {
		case svgpath.MoveTo:
			if inPath {
				d.Stop(false) // implicit close if currently in path.
			}
			d.Start(fToFixed(m.Transform(op.X, op.Y)))
			inPath = true
		case svgpath.LineTo:
			d.Line(fToFixed(m.Transform(op.X, op.Y)))
		case svgpath.CubicTo:
			b := fToFixed(m.Transform(op.X1, op.Y1))
			c := fToFixed(m.Transform(op.X2, op.Y2))
			d.CubeBezier(b, c, fToFixed(m.Transform(op.X, op.Y)))
		case svgpath.Close:
			d.Stop(true)
			inPath = false
		}
	}
	if inPath {
		d.Stop(false)
	}
}

// scaleFactor approximates the scaling applied by `m` on lengths
func scaleFactor(m svgscene.Matrix2D) float64 {
	x, y := m.TransformVector(1, 1)
	return (abs(x) + abs(y)) / 2
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func (w walker) drawShape(shape *svgscene.Shape, m svgscene.Matrix2D) {
	path, fillable := ShapePath(shape.Form)
	if len(path) == 0 {
		return
	}
	willStroke := shape.Stroke.Width > 0
	filler, stroker := w.driver.SetupDrawers(fillable, willStroke)

	if filler != nil {
		filler.Clear()
		filler.SetWinding(true)
		drawTo(path, filler, m)
		filler.SetColor(shape.Fill, w.opacity)
		filler.Draw()
	}

	if stroker != nil {
		stroker.Clear()
		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth: fixed.Int26_6(shape.Stroke.Width * scaleFactor(m) * 64),
			Cap:       shape.Stroke.Cap,
			Join:      shape.Stroke.Join,
		})
		drawTo(path, stroker, m)
		stroker.SetColor(shape.Stroke.Color, w.opacity)
		stroker.Draw()
	}
}

func (w walker) drawText(text *svgscene.Text, m svgscene.Matrix2D) {
	td, ok := w.driver.(TextDriver)
	if !ok {
		w.log.Debug().Str("text", text.Text).Msg("driver does not support text")
		return
	}
	if text.Text == "" {
		return
	}
	at := fToFixed(m.Transform(0, 0))
	size := float64(text.Font.Size) * scaleFactor(m)
	td.DrawText(text.Text, text.Font, size, text.Fill, w.opacity, at)
}
