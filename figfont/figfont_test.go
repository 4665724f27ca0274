package figfont

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestLoadFaceErrors(t *testing.T) {
	// unset path
	_, err := LoadFace("", 12)
	assert.Error(t, err)

	// missing file
	_, err = LoadFace(filepath.Join(t.TempDir(), "nope.ttf"), 12)
	assert.Error(t, err)

	// unparsable data
	bogus := filepath.Join(t.TempDir(), "bogus.ttf")
	require.NoError(t, os.WriteFile(bogus, []byte("not a font"), 0o600))
	_, err = LoadFace(bogus, 12)
	assert.Error(t, err)
}

func TestMeasure(t *testing.T) {
	w, h := Measure(basicfont.Face7x13, "Hi")
	assert.NotZero(t, w)
	assert.NotZero(t, h)

	// wider text measures wider, same height
	w2, h2 := Measure(basicfont.Face7x13, "Hi there")
	assert.Greater(t, w2, w)
	assert.Equal(t, h, h2)

	// pure: repeated calls agree
	w3, h3 := Measure(basicfont.Face7x13, "Hi")
	assert.Equal(t, w, w3)
	assert.Equal(t, h, h3)
}

func TestCacheErrors(t *testing.T) {
	cache := NewCache()
	_, err := cache.Face("", 12)
	assert.Error(t, err)
	_, err = cache.Face(filepath.Join(t.TempDir(), "nope.ttf"), 12)
	assert.Error(t, err)
}
