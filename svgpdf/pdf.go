// Implements a PDF backend to render SVG images,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/benoitkugler/svgscene/svgdraw"
	"github.com/benoitkugler/svgscene/svgicon"
	"github.com/benoitkugler/svgscene/svgscene"
	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgdraw.Driver     = (*Renderer)(nil)
	_ svgdraw.TextDriver = (*Renderer)(nil)
	_ svgdraw.Filler     = filler{}
	_ svgdraw.Stroker    = stroker{}
)

// Renderer draws on a PDF document.
// A Renderer with a nil document only computes
// the extent of what would have been drawn.
type Renderer struct {
	pdf       *gofpdf.Fpdf
	extent    fixed.Rectangle26_6 // union of the drawn paths
	hasExtent bool
	fill      pather
	stroke    pather
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	r           *Renderer
	a           fixed.Point26_6     // current point, used to compute boundingBox
	boundingBox fixed.Rectangle26_6 // bouding box for the current path
	started     bool
}

// implements the filling operation
type filler struct {
	*pather
	useNonZeroWinding *bool
}

// implements the stroking operation
type stroker struct {
	*pather
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) *Renderer {
	r := &Renderer{pdf: pdf}
	r.fill.r = r
	r.stroke.r = r
	return r
}

// Extent returns the bounding box of the paths drawn so far.
func (r *Renderer) Extent() fixed.Rectangle26_6 { return r.extent }

func (r *Renderer) SetupDrawers(willFill, willStroke bool) (f svgdraw.Filler, s svgdraw.Stroker) {
	if willFill {
		winding := true
		f = filler{pather: &r.fill, useNonZeroWinding: &winding}
	}
	if willStroke {
		s = stroker{&r.stroke}
	}
	return f, s
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func fToFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func (p *pather) Clear() {
	p.boundingBox = fixed.Rectangle26_6{}
	p.a = fixed.Point26_6{}
	p.started = false
}

func (p *pather) Start(a fixed.Point26_6) {
	if p.r.pdf != nil {
		p.r.pdf.MoveTo(fixedTof(a))
	}
	p.add(fixed.Rectangle26_6{Min: a, Max: a}) // degenerate case
	p.a = a
}

func (p *pather) Line(b fixed.Point26_6) {
	if p.r.pdf != nil {
		p.r.pdf.LineTo(fixedTof(b))
	}
	p.add(computeBoundingBox(line{p.a, b}))
	p.a = b
}

func (p *pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	if p.r.pdf != nil {
		cx0, cy0 := fixedTof(b)
		cx1, cy1 := fixedTof(c)
		x, y := fixedTof(d)
		p.r.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
	}
	p.add(computeBoundingBox(cubicBezier{p.a, b, c, d}))
	p.a = d
}

func (p *pather) add(box fixed.Rectangle26_6) {
	if p.started {
		p.boundingBox = union(p.boundingBox, box)
	} else {
		p.boundingBox, p.started = box, true
	}
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop && p.r.pdf != nil {
		p.r.pdf.ClosePath()
	}
}

// draw terminates the current path
func (p *pather) draw(styleStr string) {
	if p.started {
		if p.r.hasExtent {
			p.r.extent = union(p.r.extent, p.boundingBox)
		} else {
			p.r.extent, p.r.hasExtent = p.boundingBox, true
		}
	}
	if p.r.pdf != nil {
		p.r.pdf.DrawPath(styleStr)
	}
}

// toPDFColor returns the 8 bits components of `c`,
// and the total opacity
func toPDFColor(c color.Color, opacity float64) (r, g, b int, alpha float64) {
	r_, g_, b_, a_ := c.RGBA()
	alpha = math.Max(0, math.Min(1, opacity*float64(a_)/0xffff))
	return int(r_ >> 8), int(g_ >> 8), int(b_ >> 8), alpha
}

func (f filler) SetColor(color color.Color, opacity float64) {
	if f.r.pdf == nil {
		return
	}
	r, g, b, alpha := toPDFColor(color, opacity)
	f.r.pdf.SetFillColor(r, g, b)
	f.r.pdf.SetAlpha(alpha, "")
}

func (f filler) Draw() {
	styleStr := "f*"
	if *f.useNonZeroWinding {
		styleStr = "f"
	}
	f.draw(styleStr)
}

func (f filler) SetWinding(useNonZeroWinding bool) {
	*f.useNonZeroWinding = useNonZeroWinding
}

func (s stroker) SetColor(color color.Color, opacity float64) {
	if s.r.pdf == nil {
		return
	}
	r, g, b, alpha := toPDFColor(color, opacity)
	s.r.pdf.SetDrawColor(r, g, b)
	s.r.pdf.SetAlpha(alpha, "")
}

var (
	capStyles  = [...]string{svgscene.RoundCap: "round", svgscene.ButtCap: "butt", svgscene.SquareCap: "square"}
	joinStyles = [...]string{svgscene.Round: "round", svgscene.Bevel: "bevel", svgscene.Miter: "miter"}
)

func (s stroker) SetStrokeOptions(options svgdraw.StrokeOptions) {
	if s.r.pdf == nil {
		return
	}
	s.r.pdf.SetLineWidth(float64(options.LineWidth) / 64)
	s.r.pdf.SetLineCapStyle(capStyles[options.Cap])
	s.r.pdf.SetLineJoinStyle(joinStyles[options.Join])
}

func (s stroker) Draw() { s.draw("D") }

// fontFamily maps the font names to the standard PDF fonts.
func fontFamily(name string) string {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "mono"), strings.Contains(name, "courier"):
		return "Courier"
	case strings.Contains(name, "sans"), strings.Contains(name, "arial"), strings.Contains(name, "helvetica"):
		return "Helvetica"
	default:
		return "Times"
	}
}

func fontStyle(font svgscene.Font) string {
	var style string
	if font.Bold {
		style += "B"
	}
	if font.Italic {
		style += "I"
	}
	if font.Underline {
		style += "U"
	}
	if font.Strike {
		style += "S"
	}
	return style
}

// DrawText implements svgdraw.TextDriver, using the standard PDF fonts.
func (r *Renderer) DrawText(text string, font svgscene.Font, size float64, color color.Color, opacity float64, at fixed.Point26_6) {
	if r.pdf == nil || size <= 0 {
		return
	}
	red, g, b, alpha := toPDFColor(color, opacity)
	r.pdf.SetFont(fontFamily(font.Name), fontStyle(font), size)
	r.pdf.SetTextColor(red, g, b)
	r.pdf.SetAlpha(alpha, "")
	tr := r.pdf.UnicodeTranslatorFromDescriptor("") // core fonts use cp1252
	x, y := fixedTof(at)
	r.pdf.Text(x, y, tr(text))
}

// pageSize returns the dimensions used for the icon:
// its view box if any, or the extent of its content.
func pageSize(icon *svgicon.SvgIcon) (w, h float64) {
	if icon.ViewBox.W > 0 && icon.ViewBox.H > 0 {
		return icon.ViewBox.W, icon.ViewBox.H
	}
	measure := NewRenderer(nil)
	svgdraw.Draw(icon.Root, measure, 1)
	_, _, maxX, maxY := extentToFloat(measure.Extent())
	return maxX, maxY
}

func extentToFloat(rect fixed.Rectangle26_6) (minX, minY, maxX, maxY float64) {
	minX, minY = fixedTof(rect.Min)
	maxX, maxY = fixedTof(rect.Max)
	return
}

// WriteSVGIcon draws `icon` on a new PDF document,
// with one page matching the icon dimensions (in points), and
// writes it into `output`.
func WriteSVGIcon(icon *svgicon.SvgIcon, output io.Writer) error {
	w, h := pageSize(icon)
	if w <= 0 || h <= 0 {
		return errors.New("empty icon")
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.AddPage()
	svgdraw.Painter{Opacity: 1}.Draw(icon.Root, NewRenderer(pdf), icon.Target(0, 0, w, h))
	if err := pdf.Error(); err != nil {
		return errors.Wrap(err, "rendering pdf")
	}
	return pdf.Output(output)
}

// RenderSVGIconToPDF reads an SVG document and writes
// it as a PDF file into `output`.
func RenderSVGIconToPDF(icon io.Reader, output io.Writer) error {
	parsedIcon, err := svgicon.ReadIconStream(icon, svgicon.IgnoreErrorMode)
	if err != nil {
		return err
	}
	return WriteSVGIcon(parsedIcon, output)
}
