// Implements a raster export for the vector backend, by wrapping
// rasterx. An accumulated (or re-parsed) figure document is rendered
// shape by shape, in append order, into an RGBA image, so the vector
// path can produce the exact pixels the raster path would.
package figraster

import (
	"fmt"
	"image"
	"io"

	"github.com/benoitkugler/figure"
	"github.com/benoitkugler/figure/figfont"
	"github.com/benoitkugler/figure/figsvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Options parametrizes a rendering.
type Options struct {
	// FontPath locates the font used for text shapes. It is required
	// as soon as the document contains one: the serialized form only
	// carries font sizes, not files.
	FontPath string
}

// Renderer rasterizes the shapes of one figure document into an image.
// It caches loaded faces for its own lifetime, which is scoped to one
// render pass.
type Renderer struct {
	img    *image.RGBA
	filler *rasterx.Filler
	dasher *rasterx.Dasher
	faces  *figfont.Cache
	opts   Options
}

// New returns a renderer drawing into a fresh width x height image,
// using a ScannerGV instance.
func New(width, height int, opts Options) *Renderer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Renderer{
		img:    img,
		filler: rasterx.NewFiller(width, height, scanner),
		dasher: rasterx.NewDasher(width, height, scanner),
		faces:  figfont.NewCache(),
		opts:   opts,
	}
}

// Image returns the rendering target.
func (rd *Renderer) Image() *image.RGBA { return rd.img }

// Render rasterizes every shape of the canvas, in append order, into a
// new image sized after the canvas.
func Render(canvas *figsvg.SvgCanvas, opts Options) (*image.RGBA, error) {
	rd := New(canvas.Width, canvas.Height, opts)
	for _, shape := range canvas.Shapes() {
		var err error
		switch s := shape.(type) {
		case figsvg.Rect:
			err = rd.rect(s)
		case figsvg.Line:
			err = rd.line(s)
		case figsvg.Text:
			err = rd.text(s)
		default:
			err = fmt.Errorf("figraster: unsupported shape %T", shape)
		}
		if err != nil {
			return nil, err
		}
	}
	return rd.img, nil
}

// RenderDocument parses a serialized figure document and rasterizes it.
func RenderDocument(doc io.Reader, opts Options) (*image.RGBA, error) {
	canvas, err := figsvg.ReadDocumentStream(doc, figsvg.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	return Render(canvas, opts)
}

// painted reports whether an SVG paint attribute enables drawing.
func painted(paint string) bool { return paint != "" && paint != "none" }

func toFixedP(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func (rd *Renderer) rect(r figsvg.Rect) error {
	if painted(r.Fill) {
		col, err := figure.ParseSVGColor(r.Fill)
		if err != nil {
			return err
		}
		rd.filler.Clear()
		rasterx.AddRect(r.X, r.Y, r.X+r.Width, r.Y+r.Height, 0, rd.filler)
		rd.filler.Scanner.SetColor(rasterx.ApplyOpacity(col, r.Opacity))
		rd.filler.Draw()
		rd.filler.Clear()
	}
	if painted(r.Stroke) && r.StrokeWidth > 0 {
		col, err := figure.ParseSVGColor(r.Stroke)
		if err != nil {
			return err
		}
		rd.setStroke(r.StrokeWidth)
		rasterx.AddRect(r.X, r.Y, r.X+r.Width, r.Y+r.Height, 0, rd.dasher)
		rd.dasher.Scanner.SetColor(rasterx.ApplyOpacity(col, r.Opacity))
		rd.dasher.Draw()
		rd.dasher.Clear()
	}
	return nil
}

func (rd *Renderer) line(l figsvg.Line) error {
	if !painted(l.Stroke) || l.StrokeWidth <= 0 {
		return nil
	}
	col, err := figure.ParseSVGColor(l.Stroke)
	if err != nil {
		return err
	}
	rd.setStroke(l.StrokeWidth)
	rd.dasher.Start(toFixedP(l.X1, l.Y1))
	rd.dasher.Line(toFixedP(l.X2, l.Y2))
	rd.dasher.Stop(false)
	rd.dasher.Scanner.SetColor(rasterx.ApplyOpacity(col, l.Opacity))
	rd.dasher.Draw()
	rd.dasher.Clear()
	return nil
}

func (rd *Renderer) setStroke(width float64) {
	rd.dasher.SetStroke(
		fixed.Int26_6(width*64), 4*64,
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter,
		nil, 0,
	)
}

func (rd *Renderer) text(t figsvg.Text) error {
	col, err := figure.ParseSVGColor(t.Fill)
	if err != nil {
		return err
	}
	face, err := rd.faces.Face(rd.opts.FontPath, t.FontSize)
	if err != nil {
		return err
	}
	d := &font.Drawer{
		Dst:  rd.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  toFixedP(t.X, t.Y), // baseline start, as in SVG
	}
	d.DrawString(t.Content)
	return nil
}
