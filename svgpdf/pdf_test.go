package svgpdf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/benoitkugler/svgscene/svgdraw"
	"github.com/benoitkugler/svgscene/svgicon"
	"github.com/benoitkugler/svgscene/svgscene"
	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

const testIcon = `<svg width="100" height="50">
	<title>test</title>
	<g>
		<rect x="10" y="10" width="30" height="20" fill="teal" stroke="black" stroke-width="2"/>
		<circle cx="70" cy="25" r="10" fill="#ff8800"/>
	</g>
	<path d="M 0 0 L 100 50 m -10 0 l 5 -5 Z" stroke="blue" stroke-width="1"/>
	<polyline points="0,50 50,0 100,50"/>
	<text x="5" y="45" font-family="Arial" font-weight="bold" text-decoration="underline">Déjà vu</text>
</svg>`

func TestRenderSVGIconToPDF(t *testing.T) {
	var out bytes.Buffer
	err := RenderSVGIconToPDF(strings.NewReader(testIcon), &out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF-")))
}

func TestRenderErrors(t *testing.T) {
	var out bytes.Buffer
	err := RenderSVGIconToPDF(strings.NewReader(`<svg><path d="L 1 2 3"/></svg>`), &out)
	assert.Error(t, err)

	icon, err := svgicon.ReadIconStream(strings.NewReader(`<svg></svg>`), svgicon.IgnoreErrorMode)
	require.NoError(t, err)
	assert.Error(t, WriteSVGIcon(icon, &out))
}

func TestPageSizeFromContent(t *testing.T) {
	icon, err := svgicon.ReadIconStream(strings.NewReader(
		`<svg><rect x="10" y="5" width="30" height="20"/><line x1="0" y1="0" x2="60" y2="0" stroke-width="1"/></svg>`),
		svgicon.IgnoreErrorMode)
	require.NoError(t, err)

	w, h := pageSize(icon)
	assert.Equal(t, 60., w)
	assert.Equal(t, 25., h)

	var out bytes.Buffer
	assert.NoError(t, WriteSVGIcon(icon, &out))
}

func TestMeasure(t *testing.T) {
	root := svgscene.NewGroup()
	root.Append(&svgscene.Shape{Form: svgscene.Ellipse{Cx: 10, Cy: 10, Rx: 5, Ry: 2}, Pos: svgscene.Translation(1, 1)})
	r := NewRenderer(nil)
	svgdraw.Draw(root, r, 1)

	ext := r.Extent()
	minX, minY, maxX, maxY := extentToFloat(ext)
	assert.InDelta(t, 6, minX, 0.05)
	assert.InDelta(t, 9, minY, 0.05)
	assert.InDelta(t, 16, maxX, 0.05)
	assert.InDelta(t, 13, maxY, 0.05)
}

func TestPatherOnPDF(t *testing.T) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	r := NewRenderer(pdf)
	f, s := r.SetupDrawers(true, true)
	require.NotNil(t, f)
	require.NotNil(t, s)

	f.Clear()
	f.SetWinding(false)
	f.Start(pt(10, 10))
	f.CubeBezier(pt(20, 0), pt(30, 20), pt(40, 10))
	f.Stop(true)
	f.SetColor(svgscene.Color{R: 200}, 0.5)
	f.Draw()

	s.Clear()
	s.SetStrokeOptions(svgdraw.StrokeOptions{LineWidth: fixed.I(2), Cap: svgscene.SquareCap, Join: svgscene.Bevel})
	s.Start(pt(0, 0))
	s.Line(pt(5, 5))
	s.Stop(false)
	s.SetColor(svgscene.Black, 2) // clamped
	s.Draw()

	r.DrawText("hello", svgscene.Font{Name: "monospace", Italic: true, Strike: true}, 12, svgscene.Black, 1, pt(50, 50))

	require.NoError(t, pdf.Error())
	_, _, maxX, _ := extentToFloat(r.Extent())
	assert.Equal(t, 40., maxX)

	var out bytes.Buffer
	assert.NoError(t, pdf.Output(&out))
}

func TestFonts(t *testing.T) {
	assert.Equal(t, "Times", fontFamily("Serif"))
	assert.Equal(t, "Helvetica", fontFamily("DejaVu Sans"))
	assert.Equal(t, "Courier", fontFamily("Courier New"))
	assert.Equal(t, "BIUS", fontStyle(svgscene.Font{Bold: true, Italic: true, Underline: true, Strike: true}))
	assert.Equal(t, "", fontStyle(svgscene.Font{}))
}
