package image

import (
	"bytes"
	stdimage "image"
	"image/color"
	"image/png"
	"testing"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/domain/service"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := stdimage.NewNRGBA(stdimage.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))

	return buf.Bytes()
}

func newTestProcessor(maxEdge int) service.ImageProcessor {
	return NewProcessor(&config.Config{Storage: &config.StorageConfig{AvatarMaxEdge: maxEdge}})
}

func TestProcessor_CropsToSquare(t *testing.T) {
	out, err := newTestProcessor(64).Normalize(pngBytes(t, 200, 100), "image/png")
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
}

func TestProcessor_SmallImageKeepsShortEdge(t *testing.T) {
	out, err := newTestProcessor(512).Normalize(pngBytes(t, 40, 30), "image/png")
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, stdimage.Rect(0, 0, 30, 30), img.Bounds())
}

func TestProcessor_ReencodesJPEG(t *testing.T) {
	src := new(bytes.Buffer)
	require.NoError(t, imaging.Encode(src, imaging.New(80, 80, color.White), imaging.JPEG))

	out, err := newTestProcessor(32).Normalize(src.Bytes(), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8}, out[:2])
}

func TestProcessor_RejectsMismatchedMime(t *testing.T) {
	_, err := newTestProcessor(64).Normalize(pngBytes(t, 10, 10), "image/jpeg")
	assert.ErrorIs(t, err, service.ErrMimeMismatch)
}

func TestProcessor_RejectsNonImages(t *testing.T) {
	_, err := newTestProcessor(64).Normalize([]byte("definitely not an image"), "image/png")
	assert.ErrorIs(t, err, service.ErrMimeMismatch)

	_, err = newTestProcessor(64).Normalize(nil, "image/png")
	assert.ErrorIs(t, err, service.ErrUnsupportedImage)
}

func TestNewProcessor_DefaultsMaxEdge(t *testing.T) {
	p := NewProcessor(&config.Config{}).(*processor)
	assert.Equal(t, defaultMaxEdge, p.maxEdge)
}
