package svgicon

import (
	"math"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgscene/svgpath"
	"github.com/benoitkugler/svgscene/svgscene"
	"golang.org/x/image/colornames"
)

// This file implements the conversion of attribute values.
// None of these functions fail: absent or invalid
// values resolve to a default.

const (
	defaultFontName = "Serif"
	defaultFontSize = 12
)

// parseNumber reads a finite signed decimal number,
// with an optional "px" unit.
func parseNumber(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(v, "px")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// toInt truncates `f`, reporting false when it does not fit an int32
func toInt(f float64) (int, bool) {
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// getFloat returns the number stored in `attr`, or 0
func getFloat(el *Element, attr string) float64 {
	v, ok := el.Attr(attr)
	if !ok {
		return 0
	}
	f, _ := parseNumber(v)
	return f
}

// getInt returns the number stored in `attr`, truncated, or 0
func getInt(el *Element, attr string) int {
	i, _ := toInt(getFloat(el, attr))
	return i
}

// getString returns the raw value of `attr`, or an empty string
func getString(el *Element, attr string) string {
	v, _ := el.Attr(attr)
	return v
}

// parseColor accepts hexadecimal colors, with or without
// a leading #, and the SVG color keywords.
func parseColor(v string) svgscene.Color {
	v = strings.TrimSpace(v)
	if cn, ok := colornames.Map[strings.ToLower(v)]; ok {
		return svgscene.Color{R: cn.R, G: cn.G, B: cn.B}
	}
	v = strings.TrimPrefix(v, "#")
	rgb, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return svgscene.Black
	}
	return svgscene.Color{
		R: uint8(rgb >> 16 & 0xff),
		G: uint8(rgb >> 8 & 0xff),
		B: uint8(rgb & 0xff),
	}
}

// getColor returns the color stored in `attr`, defaulting to black
func getColor(el *Element, attr string) svgscene.Color {
	v, ok := el.Attr(attr)
	if !ok {
		return svgscene.Black
	}
	return parseColor(v)
}

func getFillColor(el *Element) svgscene.Color { return getColor(el, "fill") }

func getStroke(el *Element) svgscene.Stroke {
	return svgscene.Stroke{
		Color: getColor(el, "stroke"),
		Width: getFloat(el, "stroke-width"),
		Cap:   svgscene.RoundCap,
		Join:  svgscene.Round,
	}
}

// getPosition returns the translation given by the x and y attributes
func getPosition(el *Element) svgscene.Matrix2D {
	return svgscene.Translation(getFloat(el, "x"), getFloat(el, "y"))
}

func getFontName(el *Element) string {
	name, ok := el.Attr("font-family")
	if !ok {
		return defaultFontName
	}
	return name
}

func getFontSize(el *Element) int {
	v, ok := el.Attr("font-size")
	if !ok {
		return defaultFontSize
	}
	size, ok := parseNumber(v)
	if !ok {
		return defaultFontSize
	}
	i, ok := toInt(size)
	if !ok {
		return defaultFontSize
	}
	return i
}

// getFontStyle returns true if font-style is `style`, ignoring case
func getFontStyle(el *Element, style string) bool {
	v, ok := el.Attr("font-style")
	return ok && strings.EqualFold(strings.TrimSpace(v), style)
}

// isBoldWeight returns true for font-weight="bold", "bolder" or at least 600
func isBoldWeight(el *Element) bool {
	v, ok := el.Attr("font-weight")
	if !ok {
		return false
	}
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "bold" || v == "bolder" {
		return true
	}
	w, err := strconv.Atoi(v)
	return err == nil && w >= 600
}

// getTextDecoration returns true if text-decoration contains `decoration`
func getTextDecoration(el *Element, decoration string) bool {
	v, ok := el.Attr("text-decoration")
	return ok && strings.Contains(v, decoration)
}

func getFont(el *Element) svgscene.Font {
	return svgscene.Font{
		Name:      getFontName(el),
		Size:      getFontSize(el),
		Bold:      getFontStyle(el, "bold") || isBoldWeight(el),
		Italic:    getFontStyle(el, "italic"),
		Underline: getTextDecoration(el, "underline"),
		Strike:    getTextDecoration(el, "line-through"),
	}
}

// getPoints reads a list of coordinates, paired positionally.
// Invalid numbers are skipped, as is a trailing lone coordinate.
func getPoints(el *Element, attr string) []svgscene.Point {
	var values []float64
	for _, s := range svgpath.SplitOnCommaOrSpace(getString(el, attr)) {
		if f, ok := parseNumber(s); ok {
			values = append(values, f)
		}
	}
	points := make([]svgscene.Point, 0, len(values)/2)
	for i := 0; i+1 < len(values); i += 2 {
		points = append(points, svgscene.Point{X: values[i], Y: values[i+1]})
	}
	return points
}

// readFraction reads a number or a percentage, as found in gradients
func readFraction(v string) float64 {
	v = strings.TrimSpace(v)
	d := 1.0
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f, _ := parseNumber(v)
	return f / d
}
