package figure

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorSVG(t *testing.T) {
	for _, test := range []struct {
		color    Color
		expected string
	}{
		{Color{0, 0, 0}, "rgb(0,0,0)"},
		{Color{255, 255, 255}, "rgb(255,255,255)"},
		{Color{12, 34, 56}, "rgb(12,34,56)"},
		{Color{0, 128, 255}, "rgb(0,128,255)"},
	} {
		assert.Equal(t, test.expected, test.color.SVG())
		// pure: repeated calls agree
		assert.Equal(t, test.color.SVG(), test.color.SVG())
	}
}

func TestColorSVGComponents(t *testing.T) {
	// decimal, unpadded components over the whole range
	for v := 0; v <= 255; v++ {
		c := Color{uint8(v), uint8(v), uint8(v)}
		assert.Equal(t, fmt.Sprintf("rgb(%d,%d,%d)", v, v, v), c.SVG())
	}
}

func TestParseSVGColor(t *testing.T) {
	for _, test := range []Color{
		{0, 0, 0},
		{255, 255, 255},
		{17, 0, 214},
	} {
		got, err := ParseSVGColor(test.SVG())
		require.NoError(t, err)
		assert.Equal(t, test, got)
	}

	for _, invalid := range []string{
		"", "none", "#ffffff", "rgb(1,2)", "rgb(300,0,0)", "rgb(-1,0,0)",
	} {
		_, err := ParseSVGColor(invalid)
		assert.Error(t, err, "input %q", invalid)
	}
}

func TestColorImplementsColor(t *testing.T) {
	var c color.Color = Color{10, 20, 30}
	r, g, b, a := c.RGBA()
	expR, expG, expB, expA := color.NRGBA{R: 10, G: 20, B: 30, A: 0xff}.RGBA()
	assert.Equal(t, []uint32{expR, expG, expB, expA}, []uint32{r, g, b, a})
}

func TestConfigFonts(t *testing.T) {
	var config FigureConfig
	_, err := config.TitleFont()
	assert.Error(t, err)
	_, err = config.LabelFont()
	assert.Error(t, err)

	config.FontTitle = "testdata/title.ttf"
	config.FontLabel = "testdata/label.ttf"
	path, err := config.TitleFont()
	require.NoError(t, err)
	assert.Equal(t, "testdata/title.ttf", path)
	path, err = config.LabelFont()
	require.NoError(t, err)
	assert.Equal(t, "testdata/label.ttf", path)
}
