package figdraw

import (
	"github.com/benoitkugler/figure"
	"github.com/benoitkugler/figure/figfont"
	"github.com/benoitkugler/figure/figpixel"
)

// This file implements the text decorations: labels, titles and axis
// tick values. They share the same shape: load the configured font,
// measure, offset the anchor, blit. The font is loaded and the text
// measured before anything touches the canvas, so a font failure
// leaves no partial output.

// swapped in tests to avoid depending on a real font file
var loadFace = figfont.LoadFace

// clampZero floors v at zero, standing in for saturating subtraction
// in the anchor math: anchors near the canvas origin must not
// underflow.
func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// centerAnchor returns the top-left anchor placing a box of size
// (w, h) centered on (x, y), clamped at the origin.
func centerAnchor(x, y, w, h int) (int, int) {
	return clampZero(x - w/2), clampZero(y - h/2)
}

// axisValueAnchor offsets a tick label anchor by the measured text
// size, depending on the axis: horizontal ticks are centered and
// pushed below the tick mark, vertical ticks sit left of it,
// vertically centered.
func axisValueAnchor(x, y, w, h int, axis figure.AxisType) (int, int) {
	switch axis {
	case figure.AxisY:
		return clampZero(x - w), clampZero(y - h/2)
	default:
		return clampZero(x - w/2), y + h
	}
}

// DrawLabel draws text centered on (x, y) using the label font and the
// axis color. A missing or unreadable label font is a fatal error for
// the render pass.
func DrawLabel(canvas *figpixel.PixelCanvas, config *figure.FigureConfig, x, y int, text string) error {
	path, err := config.LabelFont()
	if err != nil {
		return err
	}
	face, err := loadFace(path, config.FontSizeLabel)
	if err != nil {
		return err
	}
	w, h := figfont.Measure(face, text)
	ax, ay := centerAnchor(x, y, w, h)
	canvas.DrawText(ax, ay, text, config.ColorAxis, face)
	return nil
}

// DrawTitle draws text centered on (x, y) using the title font and
// color. Same centering as DrawLabel.
func DrawTitle(canvas *figpixel.PixelCanvas, config *figure.FigureConfig, x, y int, text string) error {
	path, err := config.TitleFont()
	if err != nil {
		return err
	}
	face, err := loadFace(path, config.FontSizeTitle)
	if err != nil {
		return err
	}
	w, h := figfont.Measure(face, text)
	ax, ay := centerAnchor(x, y, w, h)
	canvas.DrawText(ax, ay, text, config.ColorTitle, face)
	return nil
}

// DrawAxisValue draws a tick value next to its tick mark at (x, y),
// anchored according to the axis it belongs to. Tick values use the
// label font at the axis font size.
func DrawAxisValue(canvas *figpixel.PixelCanvas, config *figure.FigureConfig, x, y int, text string, axis figure.AxisType) error {
	path, err := config.LabelFont()
	if err != nil {
		return err
	}
	face, err := loadFace(path, config.FontSizeAxis)
	if err != nil {
		return err
	}
	w, h := figfont.Measure(face, text)
	ax, ay := axisValueAnchor(x, y, w, h, axis)
	canvas.DrawText(ax, ay, text, config.ColorAxis, face)
	return nil
}
