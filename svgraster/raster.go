// Implements a raster backend to render SVG images,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"io"

	"github.com/benoitkugler/svgscene/svgdraw"
	"github.com/benoitkugler/svgscene/svgicon"
	"github.com/benoitkugler/svgscene/svgscene"
	"github.com/pkg/errors"
	"github.com/srwiley/rasterx"
)

var _ svgdraw.Driver = (*Renderer)(nil) // assert interface conformance

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize cubic bezier curves.
// Filling and stroking use distinct scanners.
func NewRenderer(width, height int, fillScanner, strokeScanner rasterx.Scanner) *Renderer {
	return &Renderer{
		dasher: rasterx.NewDasher(width, height, strokeScanner),
		filler: rasterx.NewFiller(width, height, fillScanner),
	}
}

// NewImageRenderer returns a renderer drawing into `img`.
func NewImageRenderer(img *image.RGBA) *Renderer {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	return NewRenderer(w, h,
		rasterx.NewScannerGV(w, h, img, img.Bounds()),
		rasterx.NewScannerGV(w, h, img, img.Bounds()))
}

// RasterSVGIconToImage uses a ScannerGV instance to renderer the
// icon into an image and returns it.
// The size of the image is given by the view box of the icon.
func RasterSVGIconToImage(icon io.Reader) (*image.RGBA, error) {
	parsedIcon, err := svgicon.ReadIconStream(icon, svgicon.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	w, h := int(parsedIcon.ViewBox.W), int(parsedIcon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("invalid icon dimensions %dx%d", w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	renderer := NewImageRenderer(img)
	m := parsedIcon.Target(0, 0, float64(w), float64(h))
	svgdraw.Painter{Opacity: 1}.Draw(parsedIcon.Root, renderer, m)
	return img, nil
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f svgdraw.Filler, s svgdraw.Stroker) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

// filler and stroker only override SetColor,
// path commands are handled by rasterx.

type filler struct{ *rasterx.Filler }

func (f filler) SetColor(c color.Color, opacity float64) {
	f.Filler.SetColor(rasterx.ApplyOpacity(c, opacity))
}

type stroker struct{ *rasterx.Dasher }

func (s stroker) SetColor(c color.Color, opacity float64) {
	s.Dasher.SetColor(rasterx.ApplyOpacity(c, opacity))
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgscene.Round: rasterx.Round,
		svgscene.Bevel: rasterx.Bevel,
		svgscene.Miter: rasterx.Miter,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgscene.RoundCap:  rasterx.RoundCap,
		svgscene.ButtCap:   rasterx.ButtCap,
		svgscene.SquareCap: rasterx.SquareCap,
	}
)

const miterLimit = 4 * 64

func (s stroker) SetStrokeOptions(options svgdraw.StrokeOptions) {
	capF := capToFunc[options.Cap]
	s.Dasher.SetStroke(options.LineWidth, miterLimit, capF, capF,
		rasterx.RoundGap, joinToJoin[options.Join], nil, 0)
}
