package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michemobile/marketplace-api/internal/httperr"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeDocumentEmpty(t *testing.T) {
	_, err := NormalizeDocument(nil)
	assert.True(t, httperr.IsBusiness(err, "empty_file"))
}

func TestNormalizeDocumentTooLarge(t *testing.T) {
	_, err := NormalizeDocument(make([]byte, MaxUploadBytes+1))
	assert.True(t, httperr.IsBusiness(err, "file_too_large"))
}

func TestNormalizeDocumentPDFPassthrough(t *testing.T) {
	raw := []byte("%PDF-1.7 fake body")

	doc, err := NormalizeDocument(raw)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, "pdf", doc.Extension)
	assert.Equal(t, raw, doc.Data)
}

func TestNormalizeDocumentImageToWebp(t *testing.T) {
	doc, err := NormalizeDocument(pngBytes(t, 64, 48))
	require.NoError(t, err)

	assert.Equal(t, "image/webp", doc.ContentType)
	assert.Equal(t, "webp", doc.Extension)
	assert.NotEmpty(t, doc.Data)
}

func TestNormalizeDocumentUnsupportedType(t *testing.T) {
	_, err := NormalizeDocument([]byte("plain text, not an image"))
	assert.True(t, httperr.IsBusiness(err, "unsupported_file_type"))
}

func TestScaleDown(t *testing.T) {
	small := image.NewRGBA(image.Rect(0, 0, 100, 100))
	assert.Equal(t, small.Bounds(), scaleDown(small).Bounds())

	wide := image.NewRGBA(image.Rect(0, 0, 3200, 1600))
	scaled := scaleDown(wide)
	assert.Equal(t, maxImageDim, scaled.Bounds().Dx())
	assert.Equal(t, 800, scaled.Bounds().Dy())

	tall := image.NewRGBA(image.Rect(0, 0, 800, 2000))
	scaled = scaleDown(tall)
	assert.Equal(t, maxImageDim, scaled.Bounds().Dy())
	assert.Equal(t, 640, scaled.Bounds().Dx())
}
