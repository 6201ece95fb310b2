package bubble

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"

	"github.com/youruser/bubblesticker/internal/palette"
)

// Shadow parameters, in drawing units.
const (
	ShadowOffsetX = 0.0
	ShadowOffsetY = 2.0
	ShadowBlur    = 8.0
	ShadowOpacity = 0.12
)

// coverage rasterizes o (already in pixel space) into an anti-aliased alpha mask.
// The software Fill in gg only paints solid colors and ignores clipping, so the
// mask is used as the clip for every layer instead.
func coverage(o *Outline, w, h int) *image.Alpha {
	ctx := gg.NewContext(w, h)
	defer ctx.Close()
	o.Replay(ctx)
	m := ctx.AsMask()

	a := image.NewAlpha(image.Rect(0, 0, w, h))
	copy(a.Pix, m.Data())
	return a
}

// fillMask paints src through mask onto dst.
func fillMask(dst draw.Image, src image.Image, mask *image.Alpha) {
	draw.DrawMask(dst, dst.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
}

// gradientSource is an unbounded image whose pixels sample a linear brush at
// their centers.
type gradientSource struct {
	brush *gg.LinearGradientBrush
}

// verticalGradient runs from top (from) to midY (to). Beyond midY the brush
// pads with the end color.
func verticalGradient(x, top, midY float64, from, to palette.Color) *gradientSource {
	b := gg.NewLinearGradientBrush(x, top, x, midY).
		AddColorStop(0, toRGBA(from)).
		AddColorStop(1, toRGBA(to))
	return &gradientSource{brush: b}
}

func (g *gradientSource) ColorModel() color.Model { return color.NRGBAModel }

func (g *gradientSource) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (g *gradientSource) At(x, y int) color.Color {
	return g.brush.ColorAt(float64(x)+0.5, float64(y)+0.5).Color()
}

func toRGBA(c palette.Color) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// dropShadow renders a blurred, translucent black copy of mask.
func dropShadow(mask *image.Alpha, sigma float64) *image.NRGBA {
	layer := image.NewNRGBA(mask.Bounds())
	shade := palette.Black.WithAlpha(ShadowOpacity)
	draw.DrawMask(layer, layer.Bounds(), image.NewUniform(shade.NRGBA()), image.Point{}, mask, image.Point{}, draw.Over)
	if sigma <= 0 {
		return layer
	}
	return imaging.Blur(layer, sigma)
}
