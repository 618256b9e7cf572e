package svgicon

import (
	"strings"

	"github.com/benoitkugler/svgscene/svgpath"
	"github.com/benoitkugler/svgscene/svgscene"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// builder converts one element to its scene node.
// Only the path builder may fail.
type builder func(el *Element) (svgscene.Node, error)

func emptyB(*Element) (svgscene.Node, error) { return svgscene.NewEmpty(), nil }

// the content of the group is filled by the caller
func groupB(*Element) (svgscene.Node, error) { return svgscene.NewGroup(), nil }

func newShape(el *Element, form svgscene.Geometry, pos svgscene.Matrix2D) *svgscene.Shape {
	return &svgscene.Shape{
		Form:   form,
		Fill:   getFillColor(el),
		Stroke: getStroke(el),
		Pos:    pos,
	}
}

// x and y are part of the geometry, so the shape is not translated
func rectB(el *Element) (svgscene.Node, error) {
	rect := svgscene.Rect{
		X: getFloat(el, "x"),
		Y: getFloat(el, "y"),
		W: getFloat(el, "width"),
		H: getFloat(el, "height"),
	}
	return newShape(el, rect, svgscene.Identity), nil
}

func circleB(el *Element) (svgscene.Node, error) {
	circle := svgscene.Circle{
		Cx: getFloat(el, "cx"),
		Cy: getFloat(el, "cy"),
		R:  getFloat(el, "r"),
	}
	return newShape(el, circle, getPosition(el)), nil
}

func ellipseB(el *Element) (svgscene.Node, error) {
	ellipse := svgscene.Ellipse{
		Cx: getFloat(el, "cx"),
		Cy: getFloat(el, "cy"),
		Rx: getFloat(el, "rx"),
		Ry: getFloat(el, "ry"),
	}
	return newShape(el, ellipse, getPosition(el)), nil
}

func lineB(el *Element) (svgscene.Node, error) {
	line := svgscene.Line{
		X1: getFloat(el, "x1"),
		Y1: getFloat(el, "y1"),
		X2: getFloat(el, "x2"),
		Y2: getFloat(el, "y2"),
	}
	return newShape(el, line, getPosition(el)), nil
}

func polygonB(el *Element) (svgscene.Node, error) {
	polygon := svgscene.Polygon{Points: getPoints(el, "points")}
	return newShape(el, polygon, getPosition(el)), nil
}

func polylineB(el *Element) (svgscene.Node, error) {
	polyline := svgscene.Polyline{Points: getPoints(el, "points")}
	return newShape(el, polyline, getPosition(el)), nil
}

func pathB(el *Element) (svgscene.Node, error) {
	var path svgscene.Path
	if d, ok := el.Attr("d"); ok {
		segments, err := svgpath.Parse(d)
		if err != nil {
			if id, ok := el.Attr("id"); ok {
				return nil, errors.Wrapf(err, "path element %q", id)
			}
			return nil, errors.Wrap(err, "path element")
		}
		path.Segments = segments
	}
	return newShape(el, path, getPosition(el)), nil
}

func imageB(el *Element) (svgscene.Node, error) {
	src, ok := el.Attr("xlink:href")
	if !ok {
		src = getString(el, "href") // SVG 2
	}
	return &svgscene.Image{
		Src: src,
		W:   getInt(el, "width"),
		H:   getInt(el, "height"),
		Pos: getPosition(el),
	}, nil
}

func textB(el *Element) (svgscene.Node, error) {
	return &svgscene.Text{
		Text: norm.NFC.String(strings.TrimSpace(el.Text)),
		Font: getFont(el),
		Fill: getFillColor(el),
		Pos:  getPosition(el),
	}, nil
}

// readLinearGradient returns the gradient defined by `el`,
// whose stops are read from its children.
func readLinearGradient(el *Element) *svgpath.Gradient {
	grad := &svgpath.Gradient{
		ID:        getString(el, "id"),
		Direction: svgpath.Linear{0, 0, 1, 0},
	}
	for i, attr := range [...]string{"x1", "y1", "x2", "y2"} {
		if v, ok := el.Attr(attr); ok {
			grad.Direction[i] = readFraction(v)
		}
	}
	if getString(el, "gradientUnits") == "userSpaceOnUse" {
		grad.Units = svgpath.UserSpaceOnUse
	}
	switch getString(el, "spreadMethod") {
	case "reflect":
		grad.Spread = svgpath.ReflectSpread
	case "repeat":
		grad.Spread = svgpath.RepeatSpread
	}
	for _, child := range el.Children {
		if child.Name != "stop" {
			continue
		}
		stop := svgpath.GradStop{
			StopColor: getColor(child, "stop-color"),
			Offset:    readFraction(getString(child, "offset")),
			Opacity:   1,
		}
		if v, ok := child.Attr("stop-opacity"); ok {
			stop.Opacity, _ = parseNumber(v)
		}
		grad.Stops = append(grad.Stops, stop)
	}
	return grad
}
