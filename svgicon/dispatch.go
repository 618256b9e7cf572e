package svgicon

// Tag enumerates the SVG elements known by the parser.
type Tag uint8

const (
	TagUnknown Tag = iota
	TagSvg
	TagG
	TagUse
	TagSymbol
	TagImage
	TagText
	TagTspan
	TagPath
	TagRect
	TagCircle
	TagEllipse
	TagPolyline
	TagPolygon
	TagLine
	TagLinearGradient
	TagStop
	TagPattern
	TagClipPath
	TagDefs
	TagTitle
	TagDesc

	tagCount // number of tags, keep last
)

var tagNames = [tagCount]string{
	TagUnknown:        "",
	TagSvg:            "svg",
	TagG:              "g",
	TagUse:            "use",
	TagSymbol:         "symbol",
	TagImage:          "image",
	TagText:           "text",
	TagTspan:          "tspan",
	TagPath:           "path",
	TagRect:           "rect",
	TagCircle:         "circle",
	TagEllipse:        "ellipse",
	TagPolyline:       "polyline",
	TagPolygon:        "polygon",
	TagLine:           "line",
	TagLinearGradient: "linearGradient",
	TagStop:           "stop",
	TagPattern:        "pattern",
	TagClipPath:       "clipPath",
	TagDefs:           "defs",
	TagTitle:          "title",
	TagDesc:           "desc",
}

var tagsByName = func() map[string]Tag {
	out := make(map[string]Tag, tagCount)
	for tag, name := range tagNames {
		if name != "" {
			out[name] = Tag(tag)
		}
	}
	return out
}()

// LookupTag returns the tag for the element `name`,
// or TagUnknown.
func LookupTag(name string) Tag { return tagsByName[name] }

func (t Tag) String() string {
	if t == TagUnknown || t >= tagCount {
		return "<unknown Tag>"
	}
	return tagNames[t]
}

// builders maps each tag to the function building its node.
// Elements without graphical meaning produce an empty node,
// so that their children are still visited.
var builders = [tagCount]builder{
	TagUnknown:        emptyB,
	TagSvg:            emptyB,
	TagG:              groupB,
	TagUse:            emptyB,
	TagSymbol:         emptyB,
	TagImage:          imageB,
	TagText:           textB,
	TagTspan:          emptyB,
	TagPath:           pathB,
	TagRect:           rectB,
	TagCircle:         circleB,
	TagEllipse:        ellipseB,
	TagPolyline:       polylineB,
	TagPolygon:        polygonB,
	TagLine:           lineB,
	TagLinearGradient: emptyB, // see iconCursor.dispatch
	TagStop:           emptyB,
	TagPattern:        emptyB,
	TagClipPath:       emptyB,
	TagDefs:           emptyB,
	TagTitle:          emptyB,
	TagDesc:           emptyB,
}
