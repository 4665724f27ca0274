// Implements the vector backend: a canvas accumulating shape records
// in draw order, serialized afterwards into an SVG document.
// Geometry is taken as given, without clipping: the drawing layer is
// trusted to mirror the raster layout math, so both outputs stay
// point-equivalent.
package figsvg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// SvgCanvas mirrors the size and margin model of the raster backend,
// and owns the ordered sequence of emitted shapes. Appending is the
// only mutation; serialization preserves append order, which is what
// keeps later shapes visually on top.
type SvgCanvas struct {
	Width, Height int
	Margin        int

	shapes []Shape
}

// New returns an empty canvas. The margin does not constrain shape
// emission; it is carried so drawing code can lay out against the same
// plot area as on a raster canvas.
func New(width, height, margin int) *SvgCanvas {
	return &SvgCanvas{Width: width, Height: height, Margin: margin}
}

// Shapes returns the emitted records, in draw order. The returned
// slice is shared with the canvas and must not be modified.
func (c *SvgCanvas) Shapes() []Shape { return c.shapes }

// DrawRect appends a rectangle record. A fill or stroke of "none"
// disables the corresponding paint.
func (c *SvgCanvas) DrawRect(x, y, w, h float64, fill, stroke string, strokeWidth, opacity float64) {
	c.shapes = append(c.shapes, Rect{
		X: x, Y: y, Width: w, Height: h,
		Fill: fill, Stroke: stroke, StrokeWidth: strokeWidth, Opacity: opacity,
	})
}

// DrawLine appends a line record.
func (c *SvgCanvas) DrawLine(x1, y1, x2, y2 float64, stroke string, strokeWidth, opacity float64) {
	c.shapes = append(c.shapes, Line{
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		Stroke: stroke, StrokeWidth: strokeWidth, Opacity: opacity,
	})
}

// DrawText appends a text record; (x, y) is the start of the baseline.
func (c *SvgCanvas) DrawText(x, y float64, content, fill string, fontSize float64) {
	c.shapes = append(c.shapes, Text{
		X: x, Y: y, Content: content, Fill: fill, FontSize: fontSize,
	})
}

// Serialize writes the canvas as an SVG document, emitting the shapes
// in strict append order. The margin is recorded as a data attribute on
// the root element so ReadDocumentStream can restore the full layout.
func (c *SvgCanvas) Serialize(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<svg xmlns=%q width="%d" height="%d" data-margin="%d">`+"\n",
		svgNamespace, c.Width, c.Height, c.Margin); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("  ", "  ")
	for _, shape := range c.shapes {
		if err := enc.Encode(shape); err != nil {
			return fmt.Errorf("figsvg: encoding shape: %w", err)
		}
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n</svg>\n")
	return err
}

// Document is a convenience wrapper returning the serialized form as a
// string.
func (c *SvgCanvas) Document() (string, error) {
	var buf bytes.Buffer
	if err := c.Serialize(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
