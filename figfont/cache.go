package figfont

import "golang.org/x/image/font"

type faceKey struct {
	path string
	size float64
}

// Cache memoises loaded faces for the duration of one render pass, so
// that repeated text operations do not re-read the same font file.
// A Cache must not outlive the pass that created it: configurations may
// point successive passes at different files under the same path.
// Not safe for concurrent use, like the canvases it serves.
type Cache struct {
	faces map[faceKey]font.Face
}

func NewCache() *Cache {
	return &Cache{faces: make(map[faceKey]font.Face)}
}

// Face returns the face for the font file at path scaled to size,
// loading it on first use.
func (c *Cache) Face(path string, size float64) (font.Face, error) {
	key := faceKey{path, size}
	if face, ok := c.faces[key]; ok {
		return face, nil
	}
	face, err := LoadFace(path, size)
	if err != nil {
		return nil, err
	}
	c.faces[key] = face
	return face, nil
}
