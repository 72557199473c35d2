package services

import (
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeGenerated(t *testing.T, dir, filename string) (width, height int) {
	t.Helper()

	f, err := os.Open(filepath.Join(dir, filename))
	require.NoError(t, err)
	defer f.Close()

	img, err := jpeg.Decode(f)
	require.NoError(t, err, "generated file must be a valid JPEG")

	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func TestRandomImage(t *testing.T) {
	dir := t.TempDir()
	gen := NewPlaceholderService(dir)

	path, err := gen.RandomImage(600, 400, "generated.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/static/images/generated.jpg", path)

	info, err := os.Stat(filepath.Join(dir, "generated.jpg"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	w, h := decodeGenerated(t, dir, "generated.jpg")
	assert.Equal(t, 600, w)
	assert.Equal(t, 400, h)
}

func TestCleaningImageKnownKey(t *testing.T) {
	dir := t.TempDir()
	gen := NewPlaceholderService(dir)

	path, err := gen.CleaningImage("entretien", "cleaning.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/static/images/cleaning.jpg", path)

	w, h := decodeGenerated(t, dir, "cleaning.jpg")
	assert.Equal(t, 600, w)
	assert.Equal(t, 400, h)
}

func TestCleaningImageUnknownKeyFallsBack(t *testing.T) {
	dir := t.TempDir()
	gen := NewPlaceholderService(dir)

	_, err := gen.CleaningImage("does-not-exist", "fallback.jpg")
	require.NoError(t, err)

	w, h := decodeGenerated(t, dir, "fallback.jpg")
	assert.Equal(t, 600, w)
	assert.Equal(t, 400, h)
}

func TestImageDirectoryCreated(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "static", "images")
	gen := NewPlaceholderService(dir)

	_, err := gen.RandomImage(120, 80, "tiny.jpg")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "tiny.jpg"))
	assert.NoError(t, err)
}
