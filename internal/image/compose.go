// Package imagepkg encodes stickers and composes them with share codes.
package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const cardMargin = 24

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// ComposeShareCard places the sticker on the left and a QR code on the right
// of a white card. The QR is scaled to the sticker height.
func ComposeShareCard(sticker, qr image.Image) image.Image {
	sb := sticker.Bounds()
	side := sb.Dy()
	w := cardMargin + sb.Dx() + cardMargin
	if qr != nil {
		w += side + cardMargin
	}
	h := cardMargin + side + cardMargin
	canvas := imaging.New(w, h, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	canvas = imaging.Overlay(canvas, sticker, image.Pt(cardMargin, cardMargin), 1)

	if qr != nil {
		q := imaging.Resize(qr, side, side, imaging.NearestNeighbor)
		canvas = imaging.Paste(canvas, q, image.Pt(cardMargin+sb.Dx()+cardMargin, cardMargin))
	}
	return canvas
}
