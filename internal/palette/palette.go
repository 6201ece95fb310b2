// Package palette maps emotions to display colors.
//
// A Palette is built once from the default table plus optional overrides and is
// read-only afterwards, so it can be shared between goroutines without locking.
package palette

import (
	"log/slog"
	"sort"

	"github.com/youruser/bubblesticker/internal/emotion"
	"github.com/youruser/bubblesticker/internal/logging"
)

// Brightness factors used for gradient stops.
const (
	LighterFactor = 1.2
	DarkerFactor  = 0.8
)

// Palette is an immutable emotion to color mapping.
type Palette struct {
	colors map[emotion.Label]Color
	logger *slog.Logger
}

// Stops are the gradient samples derived from an emotion's base color.
type Stops struct {
	Lighter Color
	Base    Color
	Darker  Color
}

type options struct {
	overrides []OverrideEntry
	logger    *slog.Logger
}

// Option configures New.
type Option func(*options)

// WithOverrides merges entries over the default table. Later entries win.
func WithOverrides(entries ...OverrideEntry) Option {
	return func(o *options) {
		o.overrides = append(o.overrides, entries...)
	}
}

// WithLogger sets the logger used for skipped overrides and lookup misses.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New builds a palette. Override entries with a bad name or bad channel data are
// skipped with a warning; they never fail construction.
func New(opts ...Option) *Palette {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	p := &Palette{
		colors: defaultColors(),
		logger: logging.OrNop(o.logger),
	}

	applied := 0
	for _, e := range o.overrides {
		label, ok := emotion.ParseLabel(e.Emotion)
		if !ok {
			p.logger.Warn("skipping palette override with empty emotion name")
			continue
		}
		c, err := e.Color()
		if err != nil {
			p.logger.Warn("skipping palette override", "emotion", label, "error", err)
			continue
		}
		p.colors[label] = c
		applied++
	}
	if len(o.overrides) > 0 {
		p.logger.Info("palette overrides merged", "applied", applied, "skipped", len(o.overrides)-applied, "emotions", len(p.colors))
	}
	return p
}

// Lookup returns the exact entry for a normalized label.
func (p *Palette) Lookup(l emotion.Label) (Color, bool) {
	c, ok := p.colors[l]
	return c, ok
}

// ColorFor returns the color for name, falling back to "neutral" and then to
// NeutralGray. It never fails.
func (p *Palette) ColorFor(name string) Color {
	label := emotion.Normalize(name)
	if c, ok := p.colors[label]; ok {
		return c
	}
	p.logger.Warn("no palette color for emotion, using neutral", "emotion", label)
	if c, ok := p.colors[emotion.Neutral]; ok {
		return c
	}
	return NeutralGray
}

// GradientStops derives lighter and darker variants of ColorFor(name).
func (p *Palette) GradientStops(name string) Stops {
	base := p.ColorFor(name)
	return Stops{
		Lighter: base.WithBrightness(LighterFactor),
		Base:    base,
		Darker:  base.WithBrightness(DarkerFactor),
	}
}

// AvailableEmotions returns every key in ascending order.
func (p *Palette) AvailableEmotions() []emotion.Label {
	out := make([]emotion.Label, 0, len(p.colors))
	for l := range p.colors {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of entries.
func (p *Palette) Len() int { return len(p.colors) }
