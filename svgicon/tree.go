package svgicon

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

const xlinkNamespace = "http://www.w3.org/1999/xlink"

// Element is a node of the XML tree of an SVG document.
type Element struct {
	Name     string            // local tag name, such as "rect"
	Attrs    map[string]string // attribute values, by name
	Text     string            // character data directly inside the element
	Children []*Element        // in document order
}

// Attr returns the value of the attribute `key`
// and true if it is present.
func (e *Element) Attr(key string) (string, bool) {
	v, ok := e.Attrs[key]
	return v, ok
}

// attrKey returns the name used to store an attribute:
// the local name, prefixed by "xlink:" for the XLink namespace.
func attrKey(name xml.Name) string {
	if name.Space == xlinkNamespace || name.Space == "xlink" {
		return "xlink:" + name.Local
	}
	return name.Local
}

func newElement(se xml.StartElement) *Element {
	el := &Element{Name: se.Name.Local, Attrs: make(map[string]string, len(se.Attr))}
	for _, attr := range se.Attr {
		if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
			continue
		}
		el.Attrs[attrKey(attr.Name)] = attr.Value
	}
	return el
}

// ParseTree reads the XML document from `stream`
// and returns its root element.
func ParseTree(stream io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		root  *Element
		stack []*Element // currently opened elements
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrap(err, "invalid svg xml")
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			el := newElement(se)
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("invalid svg xml: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) != 0 {
				stack[len(stack)-1].Text += string(se)
			}
		}
	}
	if root == nil {
		return nil, errors.New("invalid svg xml: no root element")
	}
	return root, nil
}
