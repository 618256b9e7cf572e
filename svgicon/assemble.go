package svgicon

import (
	"strings"

	"github.com/benoitkugler/svgscene/svgpath"
	"github.com/benoitkugler/svgscene/svgscene"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// iconCursor is used while converting an SVG tree.
// It only collects document level data: the scene
// nodes are passed explicitly through the recursion.
type iconCursor struct {
	errorMode ErrorMode
	log       zerolog.Logger
	icon      *SvgIcon
}

func (p Parser) convert(root *Element) (*SvgIcon, error) {
	icon := &SvgIcon{
		Root:      svgscene.NewGroup(),
		Gradients: make(map[string]*svgpath.Gradient),
	}
	c := iconCursor{errorMode: p.ErrorMode, log: p.logger(), icon: icon}
	if root.Name == "svg" {
		c.readViewport(root)
	} else {
		// any other document element is the single child of the root group
		root = &Element{Children: []*Element{root}}
	}
	if err := c.assemble(root, icon.Root); err != nil {
		return nil, err
	}
	return icon, nil
}

// readViewport stores the top level dimensions.
func (c *iconCursor) readViewport(el *Element) {
	c.icon.Width = getFloat(el, "width")
	c.icon.Height = getFloat(el, "height")
	if vb, ok := el.Attr("viewBox"); ok {
		var pts [4]float64
		fields := svgpath.SplitOnCommaOrSpace(vb)
		if len(fields) == 4 {
			for i, f := range fields {
				pts[i], _ = parseNumber(f)
			}
			c.icon.ViewBox = Bounds{X: pts[0], Y: pts[1], W: pts[2], H: pts[3]}
		} else {
			c.log.Debug().Str("viewBox", vb).Msg("ignoring invalid viewBox")
		}
	}
	if c.icon.ViewBox.W == 0 {
		c.icon.ViewBox.W = c.icon.Width
	}
	if c.icon.ViewBox.H == 0 {
		c.icon.ViewBox.H = c.icon.Height
	}
}

// assemble converts the children of `el` and appends them, in order, to `acc`.
// A child group receives its own children, whereas the children of
// any other node are attached to `acc`, after them.
func (c *iconCursor) assemble(el *Element, acc *svgscene.Group) error {
	for _, child := range el.Children {
		node, err := c.dispatch(child)
		if err != nil {
			return err
		}
		parent := acc
		if g, isGroup := node.(*svgscene.Group); isGroup {
			parent = g
		}
		if err = c.assemble(child, parent); err != nil {
			return err
		}
		acc.Append(node)
	}
	return nil
}

// dispatch builds the node for `el`, according to its tag.
func (c *iconCursor) dispatch(el *Element) (svgscene.Node, error) {
	tag := LookupTag(el.Name)
	switch tag {
	case TagUnknown:
		if err := c.handleUnsupported(el.Name); err != nil {
			return nil, err
		}
	case TagLinearGradient:
		grad := readLinearGradient(el)
		if grad.ID != "" {
			c.icon.Gradients[grad.ID] = grad
		}
	case TagTitle:
		c.icon.Titles = append(c.icon.Titles, strings.TrimSpace(el.Text))
	case TagDesc:
		c.icon.Descriptions = append(c.icon.Descriptions, strings.TrimSpace(el.Text))
	}
	return builders[tag](el)
}

func (c *iconCursor) handleUnsupported(name string) error {
	switch c.errorMode {
	case StrictErrorMode:
		return errors.Errorf("cannot process svg element %q", name)
	case WarnErrorMode:
		c.log.Warn().Str("element", name).Msg("cannot process svg element")
	}
	return nil
}
