// Package app wires configuration into the palette, renderer and classifier shared
// by the server and the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"github.com/youruser/bubblesticker/internal/bubble"
	"github.com/youruser/bubblesticker/internal/classifier"
	"github.com/youruser/bubblesticker/internal/config"
	"github.com/youruser/bubblesticker/internal/emotion"
	"github.com/youruser/bubblesticker/internal/logging"
	"github.com/youruser/bubblesticker/internal/palette"
	"github.com/youruser/bubblesticker/internal/storage"
	"github.com/youruser/bubblesticker/internal/util"
)

// App holds the long-lived components. Store is nil without DATABASE_URL.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Priority *emotion.PriorityTable
	Palette  *palette.Palette
	Renderer *bubble.Renderer
	Detector *classifier.Detector
	Store    *storage.Store
}

// New builds every component from cfg. Override sources that fail to load are
// logged and skipped; only an unusable font or classifier setup is fatal.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	logger = logging.OrNop(logger)
	gg.SetLogger(logger.With("component", "gg"))

	a := &App{Config: cfg, Logger: logger, Priority: emotion.DefaultPriority}

	a.Store = OpenStore(ctx, cfg, logger)
	a.Palette = NewPalette(ctx, cfg, a.Store, logger)

	opts := []bubble.Option{
		bubble.WithScale(cfg.RenderScale),
		bubble.WithPriority(a.Priority),
		bubble.WithLogger(logger.With("component", "renderer")),
	}
	if cfg.FontPath != "" {
		data, err := os.ReadFile(cfg.FontPath)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("read font %s: %w", cfg.FontPath, err)
		}
		opts = append(opts, bubble.WithFontData(data))
	}
	r, err := bubble.NewRenderer(a.Palette, opts...)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Renderer = r

	c, err := classifier.New(ctx, classifier.Settings{
		Kind:         cfg.Classifier,
		OpenAIAPIKey: cfg.OpenAIAPIKey,
		OpenAIModel:  cfg.OpenAIModel,
		OpenAIURL:    cfg.OpenAIURL,
		GoogleAPIKey: cfg.GoogleAPIKey,
		GeminiModel:  cfg.GeminiModel,
		GeminiURL:    cfg.GeminiURL,
		Table:        a.Priority,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("classifier: %w", err)
	}
	a.Detector = classifier.NewDetector(c, a.Priority, logger.With("component", "classifier"))
	logger.Info("components ready",
		"classifier", c.Name(),
		"emotions", a.Palette.Len(),
		"scale", cfg.RenderScale,
		"database", a.Store != nil)
	return a, nil
}

// OpenStore connects to DATABASE_URL. It returns nil when the URL is unset or the
// database is unreachable; the latter is logged.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) *storage.Store {
	if cfg.DatabaseURL == "" {
		return nil
	}
	store, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.OrNop(logger).Warn("palette database unavailable, continuing without it", "error", err)
		return nil
	}
	return store
}

// NewPalette builds the palette from the defaults and every configured override
// source. store may be nil.
func NewPalette(ctx context.Context, cfg *config.Config, store *storage.Store, logger *slog.Logger) *palette.Palette {
	logger = logging.OrNop(logger)
	overrides := LoadOverrides(ctx, cfg, store, logger)
	return palette.New(palette.WithOverrides(overrides...), palette.WithLogger(logger.With("component", "palette")))
}

// LoadOverrides collects palette overrides from the configured file or URL and
// then the database, so database rows win. It never fails.
func LoadOverrides(ctx context.Context, cfg *config.Config, store *storage.Store, logger *slog.Logger) []palette.OverrideEntry {
	logger = logging.OrNop(logger)
	var out []palette.OverrideEntry

	switch {
	case cfg.PaletteOverrideFile != "":
		entries, err := palette.LoadOverrideFile(cfg.PaletteOverrideFile)
		if err != nil {
			logger.Warn("palette override file unreadable, using defaults", "path", cfg.PaletteOverrideFile, "error", err)
		} else {
			out = append(out, entries...)
		}
	case cfg.PaletteOverrideURL != "":
		data, err := util.GetBytes(ctx, cfg.PaletteOverrideURL)
		if err == nil {
			var entries []palette.OverrideEntry
			entries, err = palette.ParseOverrides(cfg.PaletteOverrideURL, data)
			out = append(out, entries...)
		}
		if err != nil {
			logger.Warn("palette override URL unusable, using defaults", "url", cfg.PaletteOverrideURL, "error", err)
		}
	}

	if store != nil {
		entries, err := store.Overrides(ctx)
		if err != nil {
			logger.Warn("palette overrides from database unavailable", "error", err)
		} else {
			out = append(out, entries...)
		}
	}
	return out
}

// Size returns the configured default sticker size.
func (a *App) Size() bubble.Size {
	return bubble.Size{Width: a.Config.StickerWidth, Height: a.Config.StickerHeight}
}

// Close releases the renderer and database.
func (a *App) Close() {
	if a.Renderer != nil {
		_ = a.Renderer.Close()
	}
	if a.Store != nil {
		a.Store.Close()
	}
}
