// Loads font files and measures text for the drawing operations.
// Font reads are the only I/O performed during a render pass; any
// failure here is fatal for the pass, there is no degraded output.
package figfont

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// LoadFace reads and parses the font file at path, returning a face
// scaled to size device pixels. Supported formats are .ttf and .otf.
// The file is read freshly on every call; see Cache for a pass-scoped
// alternative.
func LoadFace(path string, size float64) (font.Face, error) {
	if path == "" {
		return nil, errors.New("figfont: font path is not set")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("figfont: reading font file: %w", err)
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("figfont: parsing font %s: %w", path, err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("figfont: building face for %s: %w", path, err)
	}
	return face, nil
}

// Measure returns the rendered extent of text under face, in device
// pixels. The extent is the tight bounding box of the rendered glyphs,
// not the advance, so it matches what DrawText will actually cover.
func Measure(face font.Face, text string) (w, h int) {
	b, _ := font.BoundString(face, text)
	return (b.Max.X - b.Min.X).Ceil(), (b.Max.Y - b.Min.Y).Ceil()
}
