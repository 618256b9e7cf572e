package svgicon

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/benoitkugler/svgscene/svgpath"
	"github.com/benoitkugler/svgscene/svgscene"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultStroke = svgscene.Stroke{Color: svgscene.Black, Width: 0, Cap: svgscene.RoundCap, Join: svgscene.Round}

func parseOne(t *testing.T, doc string) svgscene.Node {
	t.Helper()
	root, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, root.Contents, 1)
	return root.Contents[0]
}

func TestRectDefaults(t *testing.T) {
	node := parseOne(t, `<svg><rect width="10" height="5"/></svg>`)
	expected := &svgscene.Shape{
		Form:   svgscene.Rect{X: 0, Y: 0, W: 10, H: 5},
		Fill:   svgscene.Black,
		Stroke: defaultStroke,
		Pos:    svgscene.Identity,
	}
	if diff := cmp.Diff(expected, node); diff != "" {
		t.Errorf("unexpected rect (-want +got):\n%s", diff)
	}
}

func TestPath(t *testing.T) {
	node := parseOne(t, `<svg><path d="M10 10 L20 20 Z"/></svg>`)
	shape := node.(*svgscene.Shape)
	assert.Equal(t, svgscene.Path{Segments: svgpath.Path{
		svgpath.MoveTo{X: 10, Y: 10, Abs: true},
		svgpath.LineTo{X: 20, Y: 20, Abs: true},
		svgpath.Close{},
	}}, shape.Form)

	node = parseOne(t, `<svg><path d="Q10 10 20 20"/></svg>`)
	assert.Empty(t, node.(*svgscene.Shape).Form.(svgscene.Path).Segments)

	node = parseOne(t, `<svg><path x="3" y="4"/></svg>`)
	shape = node.(*svgscene.Shape)
	assert.Empty(t, shape.Form.(svgscene.Path).Segments)
	assert.Equal(t, svgscene.Translation(3, 4), shape.Pos)
}

func TestPathError(t *testing.T) {
	_, err := Parse(`<svg><g><path id="bad" d="M10 xx"/></g></svg>`)
	require.Error(t, err)
	var pe *svgpath.PathError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, byte('M'), pe.Command)
	assert.Equal(t, 0, pe.Offset)
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestNesting(t *testing.T) {
	root, err := Parse(`<svg><g><rect width="1" height="1"/></g></svg>`)
	require.NoError(t, err)

	group := svgscene.NewGroup()
	group.Contents = []svgscene.Node{&svgscene.Shape{
		Form:   svgscene.Rect{W: 1, H: 1},
		Stroke: defaultStroke,
		Pos:    svgscene.Identity,
	}}
	expected := svgscene.NewGroup()
	expected.Contents = []svgscene.Node{group}
	if diff := cmp.Diff(expected, root); diff != "" {
		t.Errorf("unexpected tree (-want +got):\n%s", diff)
	}
}

func TestDocumentOrder(t *testing.T) {
	root, err := Parse(`<svg>
		<rect width="1"/>
		<g>
			<circle r="2"/>
			<g><line x2="3"/></g>
		</g>
		<polygon points="1 2 3 4"/>
	</svg>`)
	require.NoError(t, err)
	require.Len(t, root.Contents, 3)

	assert.IsType(t, svgscene.Rect{}, root.Contents[0].(*svgscene.Shape).Form)
	g := root.Contents[1].(*svgscene.Group)
	require.Len(t, g.Contents, 2)
	assert.Equal(t, svgscene.Circle{R: 2}, g.Contents[0].(*svgscene.Shape).Form)
	inner := g.Contents[1].(*svgscene.Group)
	require.Len(t, inner.Contents, 1)
	assert.Equal(t, svgscene.Line{X2: 3}, inner.Contents[0].(*svgscene.Shape).Form)
	assert.IsType(t, svgscene.Polygon{}, root.Contents[2].(*svgscene.Shape).Form)
}

func TestPlaceholders(t *testing.T) {
	root, err := Parse(`<svg><defs><rect width="2" height="2"/></defs><use href="#a"/><foo/></svg>`)
	require.NoError(t, err)
	// children of a non group node are attached to the enclosing group, before it
	require.Len(t, root.Contents, 4)
	assert.IsType(t, &svgscene.Shape{}, root.Contents[0])
	for _, node := range root.Contents[1:] {
		assert.Equal(t, svgscene.NewEmpty(), node)
	}
}

func TestEmptyPlaceholders(t *testing.T) {
	for _, doc := range []string{
		`<svg><symbol/></svg>`,
		`<svg><tspan/></svg>`,
		`<svg><pattern/></svg>`,
		`<svg><clipPath/></svg>`,
		`<svg><stop/></svg>`,
		`<svg><svg/></svg>`,
	} {
		assert.Equal(t, svgscene.NewEmpty(), parseOne(t, doc), doc)
	}
}

func TestNonSvgRoot(t *testing.T) {
	node := parseOne(t, `<rect width="1" height="1"/>`)
	assert.Equal(t, svgscene.Rect{W: 1, H: 1}, node.(*svgscene.Shape).Form)

	root, err := Parse(`<g><circle r="1"/><line x2="2"/></g>`)
	require.NoError(t, err)
	require.Len(t, root.Contents, 1)
	g := root.Contents[0].(*svgscene.Group)
	require.Len(t, g.Contents, 2)
	assert.Equal(t, svgscene.Circle{R: 1}, g.Contents[0].(*svgscene.Shape).Form)

	icon, err := ReadIconStream(strings.NewReader(`<rect width="3" height="4"/>`), IgnoreErrorMode)
	require.NoError(t, err)
	assert.Zero(t, icon.Width)
	assert.Len(t, icon.Root.Contents, 1)
}

func TestColors(t *testing.T) {
	for _, test := range []struct {
		attr     string
		expected svgscene.Color
	}{
		{`fill="#ff0000"`, svgscene.Color{R: 255}},
		{`fill="00ff00"`, svgscene.Color{G: 255}},
		{`fill="#0000ff"`, svgscene.Color{B: 255}},
		{`fill="#123456"`, svgscene.Color{R: 0x12, G: 0x34, B: 0x56}},
		{``, svgscene.Black},
		{`fill="zz"`, svgscene.Black},
		{`fill="none"`, svgscene.Black},
		{`fill="red"`, svgscene.Color{R: 255}},
		{`fill="Navy"`, svgscene.Color{B: 128}},
	} {
		node := parseOne(t, `<svg><circle `+test.attr+`/></svg>`)
		assert.Equal(t, test.expected, node.(*svgscene.Shape).Fill, test.attr)
	}

	node := parseOne(t, `<svg><line stroke="#00ff00" stroke-width="2.5"/></svg>`)
	assert.Equal(t, svgscene.Stroke{
		Color: svgscene.Color{G: 255}, Width: 2.5,
		Cap: svgscene.RoundCap, Join: svgscene.Round,
	}, node.(*svgscene.Shape).Stroke)
}

func TestNumbers(t *testing.T) {
	node := parseOne(t, `<svg><rect x="-5.5" y="+2" width="10px" height=" 3e1 "/></svg>`)
	assert.Equal(t, svgscene.Rect{X: -5.5, Y: 2, W: 10, H: 30}, node.(*svgscene.Shape).Form)

	node = parseOne(t, `<svg><rect x="abc" width="1/2"/></svg>`)
	assert.Equal(t, svgscene.Rect{}, node.(*svgscene.Shape).Form)

	node = parseOne(t, `<svg><circle cx="1" cy="2" r="3" x="-4" y="5.5"/></svg>`)
	shape := node.(*svgscene.Shape)
	assert.Equal(t, svgscene.Circle{Cx: 1, Cy: 2, R: 3}, shape.Form)
	assert.Equal(t, svgscene.Translation(-4, 5.5), shape.Pos)

	node = parseOne(t, `<svg><ellipse cx="1" cy="2" rx="3" ry="4"/></svg>`)
	shape = node.(*svgscene.Shape)
	assert.Equal(t, svgscene.Ellipse{Cx: 1, Cy: 2, Rx: 3, Ry: 4}, shape.Form)
	assert.Equal(t, svgscene.Identity, shape.Pos)
}

func TestNonFiniteNumbers(t *testing.T) {
	node := parseOne(t, `<svg><rect x="NaN" y="-inf" width="inf" height="Infinity"/></svg>`)
	shape := node.(*svgscene.Shape)
	assert.Equal(t, svgscene.Rect{}, shape.Form)
	assert.Equal(t, svgscene.Identity, shape.Pos)

	node = parseOne(t, `<svg><text font-size="inf">a</text></svg>`)
	assert.Equal(t, 12, node.(*svgscene.Text).Font.Size)

	node = parseOne(t, `<svg><text font-size="1e300">a</text></svg>`)
	assert.Equal(t, 12, node.(*svgscene.Text).Font.Size)

	node = parseOne(t, `<svg><image href="a.png" width="1e300" height="-1e300"/></svg>`)
	assert.Equal(t, &svgscene.Image{Src: "a.png", Pos: svgscene.Identity}, node)

	node = parseOne(t, `<svg><polyline points="0,0 nan,1 2,3"/></svg>`)
	assert.Equal(t, svgscene.Polyline{Points: []svgscene.Point{{X: 0, Y: 0}, {X: 1, Y: 2}}},
		node.(*svgscene.Shape).Form)

	_, err := Parse(`<svg><path d="M inf 0 L 1 1"/></svg>`)
	var pe *svgpath.PathError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, byte('M'), pe.Command)
}

func TestPoints(t *testing.T) {
	node := parseOne(t, `<svg><polygon points="0 0 10 0 10 10"/></svg>`)
	assert.Equal(t, svgscene.Polygon{Points: []svgscene.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}},
		node.(*svgscene.Shape).Form)

	node = parseOne(t, `<svg><polyline points="0,0 5,-5.5 x,1 7"/></svg>`)
	assert.Equal(t, svgscene.Polyline{Points: []svgscene.Point{{X: 0, Y: 0}, {X: 5, Y: -5.5}, {X: 1, Y: 7}}},
		node.(*svgscene.Shape).Form)

	node = parseOne(t, `<svg><polyline/></svg>`)
	assert.Empty(t, node.(*svgscene.Shape).Form.(svgscene.Polyline).Points)
}

func TestText(t *testing.T) {
	node := parseOne(t, `<svg><text/></svg>`)
	assert.Equal(t, &svgscene.Text{
		Font: svgscene.Font{Name: "Serif", Size: 12},
		Fill: svgscene.Black,
		Pos:  svgscene.Identity,
	}, node)

	node = parseOne(t, `<svg><text x="10" y="20" fill="#ff0000" font-family="Helvetica" font-size="20"
		font-style="ITALIC" text-decoration="underline line-through"> Hello </text></svg>`)
	assert.Equal(t, &svgscene.Text{
		Text: "Hello",
		Font: svgscene.Font{Name: "Helvetica", Size: 20, Italic: true, Underline: true, Strike: true},
		Fill: svgscene.Color{R: 255},
		Pos:  svgscene.Translation(10, 20),
	}, node)

	node = parseOne(t, `<svg><text font-style="bold" font-size="big">b</text></svg>`)
	font := node.(*svgscene.Text).Font
	assert.True(t, font.Bold)
	assert.False(t, font.Italic)
	assert.Equal(t, 12, font.Size)

	node = parseOne(t, `<svg><text font-weight="700">b</text></svg>`)
	assert.True(t, node.(*svgscene.Text).Font.Bold)

	// decomposed e + combining acute accent is normalized
	node = parseOne(t, "<svg><text>e\u0301</text></svg>")
	assert.Equal(t, "\u00e9", node.(*svgscene.Text).Text)
}

func TestImage(t *testing.T) {
	node := parseOne(t, `<svg xmlns:xlink="http://www.w3.org/1999/xlink">
		<image xlink:href="img.png" width="30.5" height="20" x="1" y="2"/></svg>`)
	assert.Equal(t, &svgscene.Image{Src: "img.png", W: 30, H: 20, Pos: svgscene.Translation(1, 2)}, node)

	node = parseOne(t, `<svg><image href="other.png"/></svg>`)
	assert.Equal(t, &svgscene.Image{Src: "other.png", Pos: svgscene.Identity}, node)
}

func TestIconMetadata(t *testing.T) {
	icon, err := ReadIconStream(strings.NewReader(`<svg width="100" height="50" viewBox="0 0 200 100">
		<title>A title</title>
		<desc>Some description</desc>
		<defs>
			<linearGradient id="grad" x1="0" y1="10%" x2="1" y2="0" gradientUnits="userSpaceOnUse" spreadMethod="reflect">
				<stop offset="0" stop-color="#ff0000"/>
				<stop offset="100%" stop-color="blue" stop-opacity="0.5"/>
			</linearGradient>
			<linearGradient x1="1"/>
		</defs>
		<rect width="1" height="1" fill="url(#grad)"/>
	</svg>`), IgnoreErrorMode)
	require.NoError(t, err)

	assert.Equal(t, 100., icon.Width)
	assert.Equal(t, 50., icon.Height)
	assert.Equal(t, Bounds{0, 0, 200, 100}, icon.ViewBox)
	assert.Equal(t, []string{"A title"}, icon.Titles)
	assert.Equal(t, []string{"Some description"}, icon.Descriptions)

	require.Len(t, icon.Gradients, 1)
	grad := icon.Gradients["grad"]
	require.NotNil(t, grad)
	assert.Equal(t, svgpath.Linear{0, 0.1, 1, 0}, grad.Direction)
	assert.True(t, grad.UserSpace())
	assert.Equal(t, svgpath.ReflectSpread, grad.Spread)
	assert.Equal(t, []svgpath.GradStop{
		{StopColor: svgscene.Color{R: 255}, Offset: 0, Opacity: 1},
		{StopColor: svgscene.Color{B: 255}, Offset: 1, Opacity: 0.5},
	}, grad.Stops)

	// gradients are not bound to fills
	last := icon.Root.Contents[len(icon.Root.Contents)-1].(*svgscene.Shape)
	assert.Equal(t, svgscene.Black, last.Fill)

	icon, err = ReadIconStream(strings.NewReader(`<svg width="10" height="20"/>`), IgnoreErrorMode)
	require.NoError(t, err)
	assert.Equal(t, Bounds{0, 0, 10, 20}, icon.ViewBox)
	assert.Empty(t, icon.Root.Contents)
}

func TestErrorModes(t *testing.T) {
	const doc = `<svg><foo/><rect/></svg>`

	_, err := ReadIconStream(strings.NewReader(doc), StrictErrorMode)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "foo")

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	icon, err := Parser{ErrorMode: WarnErrorMode, Logger: &logger}.ReadIconStream(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Len(t, icon.Root.Contents, 2)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"element":"foo"`)

	icon, err = Parser{}.ReadIconStream(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Len(t, icon.Root.Contents, 2)
}

func TestInvalidXML(t *testing.T) {
	for _, doc := range []string{"", "   ", "<svg><rect></svg>", "<svg/><svg/>"} {
		_, err := Parse(doc)
		assert.Error(t, err, doc)
	}
}

func TestParseTree(t *testing.T) {
	root, err := ParseTree(strings.NewReader(`<?xml version="1.0" encoding="ISO-8859-1"?>
	<svg xmlns="http://www.w3.org/2000/svg" id="top"><text>caf` + "\xe9" + `</text></svg>`))
	require.NoError(t, err)
	assert.Equal(t, "svg", root.Name)
	assert.Equal(t, map[string]string{"id": "top"}, root.Attrs)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "text", root.Children[0].Name)
	assert.Equal(t, "café", root.Children[0].Text)
}

func TestTags(t *testing.T) {
	for tag := TagUnknown + 1; tag < tagCount; tag++ {
		assert.Equal(t, tag, LookupTag(tag.String()))
	}
	for tag := TagUnknown; tag < tagCount; tag++ {
		assert.NotNil(t, builders[tag], tag.String())
	}
	assert.Equal(t, TagUnknown, LookupTag("marker"))
	assert.Equal(t, "<unknown Tag>", TagUnknown.String())
}

func TestConcurrentParse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			root, err := Parse(`<svg><g><rect width="1" height="1"/><text>t</text></g></svg>`)
			assert.NoError(t, err)
			assert.Len(t, root.Contents, 1)
		}()
	}
	wg.Wait()
}

func TestTarget(t *testing.T) {
	icon := SvgIcon{ViewBox: Bounds{X: 10, Y: 10, W: 20, H: 40}}
	m := icon.Target(0, 0, 40, 40)
	x, y := m.Transform(10, 10)
	assert.Equal(t, [2]float64{0, 0}, [2]float64{x, y})
	x, y = m.Transform(30, 50)
	assert.Equal(t, [2]float64{40, 40}, [2]float64{x, y})

	// no view box: translation only
	m = (&SvgIcon{}).Target(5, 5, 100, 100)
	x, y = m.Transform(1, 1)
	assert.Equal(t, [2]float64{6, 6}, [2]float64{x, y})
}
