package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/michemobile/marketplace-api/internal/httperr"
)

const (
	// MaxUploadBytes bounds the raw document size accepted from clients.
	MaxUploadBytes = 10 << 20

	maxImageDim = 1600
	webpQuality = 85
)

// Document is an upload ready to be stored: either a normalized webp
// image or a PDF passed through as-is.
type Document struct {
	Data        []byte
	ContentType string
	Extension   string
}

func isPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

// NormalizeDocument prepares an uploaded certification document. Images
// are resized down to maxImageDim on the longest edge and re-encoded as
// webp; PDFs are kept untouched.
func NormalizeDocument(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, httperr.ErrBusiness("empty_file")
	}
	if len(data) > MaxUploadBytes {
		return nil, httperr.ErrBusiness("file_too_large")
	}

	if isPDF(data) {
		return &Document{Data: data, ContentType: "application/pdf", Extension: "pdf"}, nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, httperr.ErrBusiness("unsupported_file_type")
	}

	out, err := encodeWebp(scaleDown(src))
	if err != nil {
		return nil, fmt.Errorf("storage: encode webp: %w", err)
	}

	return &Document{Data: out, ContentType: "image/webp", Extension: "webp"}, nil
}

func scaleDown(src image.Image) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxImageDim && h <= maxImageDim {
		return src
	}

	if w >= h {
		h = h * maxImageDim / w
		w = maxImageDim
	} else {
		w = w * maxImageDim / h
		h = maxImageDim
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}

func encodeWebp(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
