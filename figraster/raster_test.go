package figraster

import (
	"strings"
	"testing"

	"github.com/benoitkugler/figure/figsvg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRect(t *testing.T) {
	canvas := figsvg.New(100, 100, 10)
	canvas.DrawRect(10, 10, 80, 80, "rgb(255,0,0)", "none", 0, 1)

	img, err := Render(canvas, Options{})
	require.NoError(t, err)

	px := img.RGBAAt(50, 50)
	assert.Equal(t, uint8(255), px.R)
	assert.Equal(t, uint8(0), px.G)
	assert.Equal(t, uint8(0), px.B)
	assert.Equal(t, uint8(255), px.A)

	// outside the rectangle nothing is painted
	assert.Zero(t, img.RGBAAt(5, 5).A)
}

func TestRenderLine(t *testing.T) {
	canvas := figsvg.New(100, 100, 0)
	canvas.DrawLine(10, 50, 90, 50, "rgb(0,0,255)", 2, 1)

	img, err := Render(canvas, Options{})
	require.NoError(t, err)

	px := img.RGBAAt(50, 50)
	assert.NotZero(t, px.A)
	assert.Equal(t, uint8(0), px.R)
	assert.Zero(t, img.RGBAAt(50, 80).A)
}

func TestRenderOrder(t *testing.T) {
	// later shapes paint on top of earlier ones
	canvas := figsvg.New(50, 50, 0)
	canvas.DrawRect(0, 0, 50, 50, "rgb(255,0,0)", "none", 0, 1)
	canvas.DrawRect(0, 0, 50, 50, "rgb(0,255,0)", "none", 0, 1)

	img, err := Render(canvas, Options{})
	require.NoError(t, err)
	px := img.RGBAAt(25, 25)
	assert.Equal(t, uint8(0), px.R)
	assert.Equal(t, uint8(255), px.G)
}

func TestRenderInvalidColor(t *testing.T) {
	canvas := figsvg.New(50, 50, 0)
	canvas.DrawRect(0, 0, 50, 50, "papayawhip", "none", 0, 1)
	_, err := Render(canvas, Options{})
	assert.Error(t, err)
}

func TestRenderTextNeedsFont(t *testing.T) {
	canvas := figsvg.New(100, 100, 0)
	canvas.DrawText(10, 50, "hello", "rgb(0,0,0)", 12)

	// no font path configured: fatal, mirroring the drawing layer
	_, err := Render(canvas, Options{})
	assert.Error(t, err)

	_, err = Render(canvas, Options{FontPath: "testdata/missing.ttf"})
	assert.Error(t, err)
}

func TestRenderDocument(t *testing.T) {
	canvas := figsvg.New(60, 60, 5)
	canvas.DrawRect(5, 5, 50, 50, "rgb(1,2,3)", "none", 0, 1)
	doc, err := canvas.Document()
	require.NoError(t, err)

	img, err := RenderDocument(strings.NewReader(doc), Options{})
	require.NoError(t, err)
	assert.Equal(t, 60, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
	px := img.RGBAAt(30, 30)
	assert.Equal(t, uint8(1), px.R)
	assert.Equal(t, uint8(2), px.G)
	assert.Equal(t, uint8(3), px.B)
}
