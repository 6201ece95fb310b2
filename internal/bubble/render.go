// Package bubble draws emotion-colored speech bubble stickers.
//
// A Renderer is safe for concurrent use. Each Render call builds its own path,
// masks and canvas; the only shared state is the read-only palette and font.
package bubble

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomedium"

	"github.com/youruser/bubblesticker/internal/emotion"
	"github.com/youruser/bubblesticker/internal/logging"
	"github.com/youruser/bubblesticker/internal/palette"
)

// ErrDegenerateGeometry is returned when the target size or the derived bubble
// outline has no area. No image is produced in that case.
var ErrDegenerateGeometry = errors.New("degenerate bubble geometry")

// Margins between the sticker edge and the bubble rectangle.
const (
	BubbleInsetX = 15.0
	BubbleInsetY = 20.0
)

// MaxScale bounds the supersampling factor.
const MaxScale = 4

// minArea is the smallest outline area, in square drawing units, worth drawing.
const minArea = 1.0

// Sticker is a rendered bubble. The caller owns Image.
type Sticker struct {
	Image      image.Image
	Width      int
	Height     int
	Emotion    emotion.Label
	Background palette.Color
	Foreground palette.Color
}

// Renderer turns text and raw emotion labels into stickers.
type Renderer struct {
	palette  *palette.Palette
	priority *emotion.PriorityTable
	font     *text.FontSource
	scale    int
	logger   *slog.Logger
}

type rendererOptions struct {
	fontData []byte
	scale    int
	priority *emotion.PriorityTable
	logger   *slog.Logger
}

// Option configures NewRenderer.
type Option func(*rendererOptions)

// WithFontData replaces the built-in Go Medium face with a TrueType/OpenType font.
func WithFontData(data []byte) Option {
	return func(o *rendererOptions) { o.fontData = data }
}

// WithScale renders at n times the target size and downsamples the result.
// Values below 1 mean 1; values above MaxScale are clamped.
func WithScale(n int) Option {
	return func(o *rendererOptions) { o.scale = n }
}

// WithPriority sets the table used to resolve raw labels.
func WithPriority(t *emotion.PriorityTable) Option {
	return func(o *rendererOptions) { o.priority = t }
}

// WithLogger sets the renderer's logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *rendererOptions) { o.logger = l }
}

// NewRenderer parses the font once and returns a Renderer bound to p.
func NewRenderer(p *palette.Palette, opts ...Option) (*Renderer, error) {
	if p == nil {
		return nil, errors.New("bubble: nil palette")
	}
	o := rendererOptions{fontData: gomedium.TTF, scale: 1, priority: emotion.DefaultPriority}
	for _, opt := range opts {
		opt(&o)
	}
	if o.priority == nil {
		o.priority = emotion.DefaultPriority
	}

	src, err := text.NewFontSource(o.fontData)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Renderer{
		palette:  p,
		priority: o.priority,
		font:     src,
		scale:    clampScale(o.scale),
		logger:   logging.OrNop(o.logger),
	}, nil
}

func clampScale(n int) int {
	switch {
	case n < 1:
		return 1
	case n > MaxScale:
		return MaxScale
	default:
		return n
	}
}

// Close releases the font.
func (r *Renderer) Close() error {
	return r.font.Close()
}

// Palette returns the palette the renderer draws with.
func (r *Renderer) Palette() *palette.Palette { return r.palette }

// Priority returns the table used to resolve raw labels.
func (r *Renderer) Priority() *emotion.PriorityTable { return r.priority }

// Render resolves rawEmotion to a primary emotion and draws msg inside a bubble of
// that emotion's color at exactly size pixels.
func (r *Renderer) Render(msg, rawEmotion string, size Size) (*Sticker, error) {
	start := time.Now()
	primary := r.priority.Resolve(rawEmotion)

	if size.Empty() {
		return nil, fmt.Errorf("%w: target size %s", ErrDegenerateGeometry, size)
	}
	bubbleRect := size.Bounds().Inset(BubbleInsetX, BubbleInsetY)
	if bubbleRect.Empty() {
		return nil, fmt.Errorf("%w: bubble rect %.0fx%.0f inside %s", ErrDegenerateGeometry, bubbleRect.W, bubbleRect.H, size)
	}
	outline := RecordBubble(bubbleRect)
	if a := Area(outline.Path()); a < minArea {
		return nil, fmt.Errorf("%w: outline area %.2f", ErrDegenerateGeometry, a)
	}

	s := float64(r.scale)
	pw, ph := size.Width*r.scale, size.Height*r.scale
	toPixels := gg.Scale(s, s)

	stops := r.palette.GradientStops(string(primary))
	fg := palette.ContrastColorFor(stops.Base)

	body := coverage(outline.Transform(toPixels), pw, ph)
	shadowOutline := RecordBubble(bubbleRect.Offset(ShadowOffsetX, ShadowOffsetY))
	shadow := dropShadow(coverage(shadowOutline.Transform(toPixels), pw, ph), ShadowBlur/2*s)

	canvas := image.NewRGBA(image.Rect(0, 0, pw, ph))
	draw.Draw(canvas, canvas.Bounds(), shadow, image.Point{}, draw.Src)
	fillMask(canvas, image.NewUniform(stops.Base.NRGBA()), body)
	fillMask(canvas, verticalGradient(bubbleRect.MidX()*s, bubbleRect.Y*s, bubbleRect.MidY()*s, stops.Lighter, stops.Base), body)

	face := r.font.Face(FontSize * s)
	box := bubbleRect.Inset(TextInsetX, TextInsetY)
	box = Rect{X: box.X * s, Y: box.Y * s, W: box.W * s, H: box.H * s}
	lines := layoutText(msg, face, box)
	for _, l := range lines {
		text.Draw(canvas, l.Text, face, l.X, l.Baseline, fg.NRGBA())
	}

	var out image.Image = canvas
	if r.scale > 1 {
		out = imaging.Resize(canvas, size.Width, size.Height, imaging.Lanczos)
	}

	r.logger.Debug("sticker rendered",
		"emotion", primary,
		"size", size.String(),
		"scale", r.scale,
		"lines", len(lines),
		"elapsed", time.Since(start))

	return &Sticker{
		Image:      out,
		Width:      size.Width,
		Height:     size.Height,
		Emotion:    primary,
		Background: stops.Base,
		Foreground: fg,
	}, nil
}
