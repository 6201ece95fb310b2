// Package config loads service settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/youruser/bubblesticker/internal/logging"
)

// MaxDimension caps requested sticker width and height.
const MaxDimension = 2048

// Config holds every setting the server and CLI read.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	PaletteOverrideFile string `env:"PALETTE_OVERRIDE_FILE"`
	PaletteOverrideURL  string `env:"PALETTE_OVERRIDE_URL"`
	DatabaseURL         string `env:"DATABASE_URL"`
	FontPath            string `env:"FONT_PATH"`

	Classifier   string `env:"CLASSIFIER" envDefault:"lexicon"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL"`
	OpenAIURL    string `env:"OPENAI_BASE_URL"`
	GoogleAPIKey string `env:"GOOGLE_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL"`
	GeminiURL    string `env:"GEMINI_BASE_URL"`

	StickerWidth  int `env:"STICKER_WIDTH" envDefault:"300"`
	StickerHeight int `env:"STICKER_HEIGHT" envDefault:"150"`
	RenderScale   int `env:"RENDER_SCALE" envDefault:"1"`

	RateLimit       float64       `env:"RATE_LIMIT" envDefault:"5"`
	RateBurst       int           `env:"RATE_BURST" envDefault:"10"`
	PreviewDebounce time.Duration `env:"PREVIEW_DEBOUNCE" envDefault:"500ms"`
	PublicBaseURL   string        `env:"PUBLIC_BASE_URL"`
}

// Load reads .env files (if present) into the process environment and parses it.
// A missing .env is not an error.
func Load(logger *slog.Logger, files ...string) (*Config, error) {
	logger = logging.OrNop(logger)
	if err := godotenv.Load(files...); err != nil {
		logger.Debug("no .env file loaded, using process environment", "error", err)
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// Validate reports every inconsistent setting at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}
	switch strings.ToLower(c.Classifier) {
	case "lexicon":
	case "openai":
		if c.OpenAIAPIKey == "" {
			errs = append(errs, errors.New("CLASSIFIER=openai requires OPENAI_API_KEY"))
		}
	case "gemini":
		if c.GoogleAPIKey == "" {
			errs = append(errs, errors.New("CLASSIFIER=gemini requires GOOGLE_API_KEY"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CLASSIFIER %q", c.Classifier))
	}
	if c.StickerWidth <= 0 || c.StickerWidth > MaxDimension || c.StickerHeight <= 0 || c.StickerHeight > MaxDimension {
		errs = append(errs, fmt.Errorf("sticker size %dx%d outside 1..%d", c.StickerWidth, c.StickerHeight, MaxDimension))
	}
	if c.RenderScale < 1 || c.RenderScale > 4 {
		errs = append(errs, fmt.Errorf("RENDER_SCALE must be 1..4, got %d", c.RenderScale))
	}
	if c.RateLimit <= 0 || c.RateBurst < 1 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT and RATE_BURST must be positive"))
	}
	if c.PaletteOverrideFile != "" && c.PaletteOverrideURL != "" {
		errs = append(errs, errors.New("set at most one of PALETTE_OVERRIDE_FILE and PALETTE_OVERRIDE_URL"))
	}
	return errors.Join(errs...)
}

// Addr is the listen address for Port.
func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// BaseURL is the public URL prefix used in share links.
func (c *Config) BaseURL() string {
	if c.PublicBaseURL != "" {
		return strings.TrimRight(c.PublicBaseURL, "/")
	}
	return "http://localhost" + c.Addr()
}

// Logger builds the configured logger.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, _ := logging.ParseLevel(c.LogLevel)
	return logging.New(w, level, c.LogFormat)
}
