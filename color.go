package figure

import (
	"fmt"
	"image/color"
)

// Color is an opaque RGB color, with one component per channel in
// [0,255]. It has two representations: the raw triple consumed by the
// raster backend, and the "rgb(r,g,b)" string emitted in SVG markup.
type Color [3]uint8

// SVG formats the color for SVG markup, e.g. "rgb(12,34,56)".
// Components are decimal and unpadded. The conversion is pure.
func (c Color) SVG() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c[0], c[1], c[2])
}

// ParseSVGColor parses the "rgb(r,g,b)" form produced by SVG, so that
// serialized documents can be rasterized back. It is the inverse of SVG.
func ParseSVGColor(s string) (Color, error) {
	var r, g, b int
	n, err := fmt.Sscanf(s, "rgb(%d,%d,%d)", &r, &g, &b)
	if err != nil || n != 3 {
		return Color{}, fmt.Errorf("figure: invalid color %q", s)
	}
	if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
		return Color{}, fmt.Errorf("figure: color component out of range in %q", s)
	}
	return Color{uint8(r), uint8(g), uint8(b)}, nil
}

// RGBA implements image/color.Color, with full opacity.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 0xff}.RGBA()
}
