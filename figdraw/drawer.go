// Defines the contract implemented by every chart kind, together with
// the decoration operations they all share: background fills, grid,
// axis lines, titles and tick labels.
// The shared operations keep coordinate placement, text centering and
// color mapping in one place, so a figure looks the same whether it is
// exported through the raster or the vector backend.
package figdraw

import (
	"github.com/benoitkugler/figure"
	"github.com/benoitkugler/figure/figpixel"
	"github.com/benoitkugler/figure/figsvg"
)

// Drawer is implemented by every chart kind. Only the data series and
// the legend are chart-specific; decorations are drawn through the
// package-level functions below, which all chart kinds share.
//
// A Drawer holds no canvas state: canvases are passed in per call and
// mutated in place. A render pass is strictly sequential; fatal errors
// (typically font setup) abort the pass with no partial output.
type Drawer interface {
	// Draw renders the chart data content onto a raster canvas. It may
	// update cached chart state, such as lazily computed axis ranges.
	Draw(canvas *figpixel.PixelCanvas) error

	// DrawLegend renders the series legend onto a raster canvas,
	// without touching chart state.
	DrawLegend(canvas *figpixel.PixelCanvas) error

	// DrawSVG renders the chart data content onto a vector canvas,
	// mirroring Draw.
	DrawSVG(canvas *figsvg.SvgCanvas) error

	// Config exposes the figure configuration driving the decorations.
	Config() *figure.FigureConfig
}

// FillSVGBackground covers the canvas area inside the margins with a
// single filled, unstroked rectangle in the configured background
// color.
func FillSVGBackground(canvas *figsvg.SvgCanvas, config *figure.FigureConfig) {
	margin := float64(canvas.Margin)
	w := float64(canvas.Width) - 2*margin
	h := float64(canvas.Height) - 2*margin
	canvas.DrawRect(margin, margin, w, h, config.ColorBackground.SVG(), "none", 0, 1)
}

// FillBackground writes the background color to every pixel in
// [margin, width-margin) x [margin, height-margin), leaving the margin
// region untouched for axis and tick decoration.
func FillBackground(canvas *figpixel.PixelCanvas, config *figure.FigureConfig) {
	for y := canvas.Margin; y < canvas.Height-canvas.Margin; y++ {
		for x := canvas.Margin; x < canvas.Width-canvas.Margin; x++ {
			canvas.DrawPixel(x, y, config.ColorBackground)
		}
	}
}

// DrawGrid draws the configured number of horizontal and vertical grid
// lines; the spacing policy lives in the canvas grid rasterizer.
func DrawGrid(canvas *figpixel.PixelCanvas, config *figure.FigureConfig) {
	canvas.DrawGrid(
		[2]int{config.NumGridHorizontal, config.NumGridVertical},
		config.ColorGrid,
	)
}

// DrawAxis draws a solid axis line between (x1, y1) and (x2, y2).
func DrawAxis(canvas *figpixel.PixelCanvas, config *figure.FigureConfig, x1, y1, x2, y2 int) {
	canvas.DrawLine(x1, y1, x2, y2, config.ColorAxis, figure.SolidLine)
}
