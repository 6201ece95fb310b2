package imagepkg

import (
	"fmt"
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

// QR size bounds in pixels.
const (
	DefaultQRSize = 400
	MinQRSize     = 64
	MaxQRSize     = 1024
)

// ClampQRSize keeps size within [MinQRSize, MaxQRSize]; non-positive means default.
func ClampQRSize(size int) int {
	switch {
	case size <= 0:
		return DefaultQRSize
	case size < MinQRSize:
		return MinQRSize
	case size > MaxQRSize:
		return MaxQRSize
	default:
		return size
	}
}

func newQR(text string) (*qrcode.QRCode, error) {
	if text == "" {
		return nil, fmt.Errorf("qr: empty content")
	}
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	return q, nil
}

// GenerateQRPNG returns PNG bytes of a QR code for text. size is clamped with ClampQRSize.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	q, err := newQR(text)
	if err != nil {
		return nil, err
	}
	return q.PNG(ClampQRSize(size))
}

// GenerateQRImage returns the QR code as an image for composition.
func GenerateQRImage(text string, size int) (image.Image, error) {
	q, err := newQR(text)
	if err != nil {
		return nil, err
	}
	return q.Image(ClampQRSize(size)), nil
}
