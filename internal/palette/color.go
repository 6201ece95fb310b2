package palette

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color is a platform-neutral color with channels in [0, 1].
// It implements color.Color so it can be used directly as an image source.
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color from [0, 1] channels.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGB255 creates an opaque color from 8-bit channels.
func RGB255(r, g, b uint8) Color {
	return RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// ParseHex parses "#RRGGBB" or "RRGGBB" (and the 3-digit short form).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB255(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Hex formats the color as "#RRGGBB".
func (c Color) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

// NRGBA converts to 8-bit non-premultiplied channels.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// HSB returns hue, saturation and brightness, each in [0, 1].
func (c Color) HSB() (h, s, v float64) {
	r, g, b := clamp01(c.R), clamp01(c.G), clamp01(c.B)
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	v = maxC
	if maxC > 0 {
		s = delta / maxC
	}
	switch {
	case delta == 0:
		h = 0
	case maxC == r:
		h = math.Mod((g-b)/delta, 6)
	case maxC == g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h /= 6
	if h < 0 {
		h++
	}
	return h, s, v
}

// HSB builds a color from hue, saturation, brightness and alpha in [0, 1].
func HSB(h, s, v, a float64) Color {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	s, v = clamp01(s), clamp01(v)

	h6 := h * 6
	i := math.Floor(h6)
	f := h6 - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return Color{R: r, G: g, B: b, A: clamp01(a)}
}

// WithBrightness scales the HSB brightness by factor, clamped to [0, 1].
// Hue, saturation and alpha are kept.
func (c Color) WithBrightness(factor float64) Color {
	h, s, v := c.HSB()
	return HSB(h, s, clamp01(v*factor), c.A)
}

func clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x) || x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

func to8(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}
