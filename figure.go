// Provides the backend-neutral building blocks shared by every chart
// renderer: colors, stroke and axis enumerations, and the figure
// configuration.
// The actual drawing surfaces live in figure/figpixel and figure/figsvg,
// and the operations common to all chart kinds in figure/figdraw.
package figure

import "errors"

// LineType selects the stroke pattern used by the raster line drawer.
// The vector backend expresses the equivalent as a stroke attribute.
type LineType uint8

const (
	SolidLine LineType = iota
	DashedLine
	DottedLine
)

func (lt LineType) String() string {
	switch lt {
	case SolidLine:
		return "Solid"
	case DashedLine:
		return "Dashed"
	case DottedLine:
		return "Dotted"
	default:
		return "<unknown LineType>"
	}
}

// AxisType tells a tick label which axis it belongs to, which decides
// how the measured text extent offsets the anchor point.
type AxisType uint8

const (
	AxisX AxisType = iota // labels are centered and pushed below the tick
	AxisY                 // labels are right-aligned and vertically centered
)

// FigureConfig is an immutable snapshot of the figure appearance:
// colors, dimensions, grid density and fonts.
// It is built once by the caller before drawing and only read during a
// render pass, so one config may back any number of concurrent passes,
// as long as each pass owns its canvases.
type FigureConfig struct {
	ColorBackground Color
	ColorTitle      Color
	ColorAxis       Color
	ColorGrid       Color

	// Overall size and margin, in device units. The margin region is
	// excluded from the background fill, leaving a border for axis and
	// tick decoration. Margin is expected to be smaller than half of
	// each dimension, otherwise the plot area is empty.
	Width, Height int
	Margin        int

	NumGridHorizontal int
	NumGridVertical   int

	// Font file paths (.ttf or .otf). An empty path means unset;
	// validation is lazy and only fails when a drawing operation
	// actually needs the font.
	FontTitle string
	FontLabel string

	FontSizeTitle float64
	FontSizeLabel float64
	FontSizeAxis  float64
}

// TitleFont returns the configured title font path, or an error if no
// path was set.
func (c *FigureConfig) TitleFont() (string, error) {
	if c.FontTitle == "" {
		return "", errors.New("figure: title font path is not set")
	}
	return c.FontTitle, nil
}

// LabelFont returns the configured label font path, or an error if no
// path was set. Axis tick values share this font.
func (c *FigureConfig) LabelFont() (string, error) {
	if c.FontLabel == "" {
		return "", errors.New("figure: label font path is not set")
	}
	return c.FontLabel, nil
}
