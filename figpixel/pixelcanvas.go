// Implements the raster backend: an addressable pixel buffer with
// margin-aware bounds, supporting pixel writes, line and grid
// rasterization and glyph blitting.
package figpixel

import (
	"image"
	"image/color"

	"github.com/benoitkugler/figure"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// PixelCanvas owns a Width x Height buffer of pixels plus a margin, in
// device units. The margin region is left untouched by the background
// fill so axis and tick decoration can be drawn around the plot.
// Every drawing call mutates the buffer in place; a canvas must not be
// shared between concurrent render passes.
type PixelCanvas struct {
	Width, Height int
	Margin        int

	img *image.RGBA
}

// New returns a canvas with every pixel set to transparent black.
// Margin is expected to be smaller than Width/2 and Height/2, otherwise
// the margin-bounded plot area is empty.
func New(width, height, margin int) *PixelCanvas {
	return &PixelCanvas{
		Width:  width,
		Height: height,
		Margin: margin,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Image exposes the underlying buffer, to be encoded or composited once
// the render pass is complete.
func (c *PixelCanvas) Image() *image.RGBA { return c.img }

// At returns the color of the pixel at (x, y).
// Out of bounds coordinates return the zero Color.
func (c *PixelCanvas) At(x, y int) figure.Color {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return figure.Color{}
	}
	px := c.img.RGBAAt(x, y)
	return figure.Color{px.R, px.G, px.B}
}

// DrawPixel writes col at (x, y). Out of bounds coordinates are
// silently clipped: chart geometry routinely computes points slightly
// outside the plot area near its boundaries.
func (c *PixelCanvas) DrawPixel(x, y int, col figure.Color) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.img.SetRGBA(x, y, color.RGBA{R: col[0], G: col[1], B: col[2], A: 0xff})
}

// strokes reports whether the i-th pixel along a line is drawn under
// the given pattern.
func strokes(style figure.LineType, i int) bool {
	switch style {
	case figure.DashedLine:
		return i%8 < 5
	case figure.DottedLine:
		return i%3 == 0
	default:
		return true
	}
}

// DrawLine rasterizes a 1-unit-wide line between (x1, y1) and (x2, y2)
// inclusive, using Bresenham stepping so the result is continuous for
// the solid style.
func (c *PixelCanvas) DrawLine(x1, y1, x2, y2 int, col figure.Color, style figure.LineType) {
	dx, dy := abs(x2-x1), -abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for i := 0; ; i++ {
		if strokes(style, i) {
			c.DrawPixel(x1, y1, col)
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawGrid draws counts[0] evenly spaced horizontal lines and counts[1]
// evenly spaced vertical lines spanning the margin-bounded plot area.
// The plot extent is divided into count+1 whole intervals; any division
// remainder is absorbed by the interval touching the far edge, so all
// lines fall strictly inside the plot rectangle.
func (c *PixelCanvas) DrawGrid(counts [2]int, col figure.Color) {
	plotW := c.Width - 2*c.Margin
	plotH := c.Height - 2*c.Margin
	if plotW <= 0 || plotH <= 0 {
		return
	}
	if n := counts[0]; n > 0 {
		step := plotH / (n + 1)
		if step < 1 {
			step = 1
		}
		for i := 1; i <= n; i++ {
			y := c.Margin + i*step
			if y >= c.Height-c.Margin {
				break
			}
			c.DrawLine(c.Margin, y, c.Width-c.Margin-1, y, col, figure.SolidLine)
		}
	}
	if n := counts[1]; n > 0 {
		step := plotW / (n + 1)
		if step < 1 {
			step = 1
		}
		for i := 1; i <= n; i++ {
			x := c.Margin + i*step
			if x >= c.Width-c.Margin {
				break
			}
			c.DrawLine(x, c.Margin, x, c.Height-c.Margin-1, col, figure.SolidLine)
		}
	}
}

// DrawText blits text onto the buffer, with the top-left corner of its
// bounding box at (x, y). The baseline offset is recovered from the
// measured bounds, so callers only ever work in box coordinates.
// Glyphs overflowing the buffer are clipped.
func (c *PixelCanvas) DrawText(x, y int, text string, col figure.Color, face font.Face) {
	b, _ := font.BoundString(face, text)
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x) - b.Min.X,
			Y: fixed.I(y) - b.Min.Y,
		},
	}
	d.DrawString(text)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
