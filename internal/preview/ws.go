package preview

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/youruser/bubblesticker/internal/classifier"
	"github.com/youruser/bubblesticker/internal/logging"
	"github.com/youruser/bubblesticker/internal/palette"
)

const (
	maxMessageBytes = 4096
	writeTimeout    = 5 * time.Second
	detectTimeout   = 10 * time.Second
)

// Request is what the client sends on every text change.
type Request struct {
	Text string `json:"text"`
}

// Update is pushed back after the debounce delay.
type Update struct {
	Text       string   `json:"text"`
	Emotion    string   `json:"emotion"`
	Labels     []string `json:"labels"`
	Confidence float64  `json:"confidence"`
	Color      string   `json:"color"`
	Foreground string   `json:"foreground"`
}

// Handler upgrades HTTP requests to preview sockets.
type Handler struct {
	detector *classifier.Detector
	palette  *palette.Palette
	delay    time.Duration
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewHandler returns a preview handler.
func NewHandler(d *classifier.Detector, p *palette.Palette, delay time.Duration, logger *slog.Logger) *Handler {
	return &Handler{
		detector: d,
		palette:  p,
		delay:    delay,
		logger:   logging.OrNop(logger),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Build resolves text into an Update.
func (h *Handler) Build(ctx context.Context, text string) Update {
	det := h.detector.Detect(ctx, text)
	base := h.palette.ColorFor(string(det.Emotion))
	labels := make([]string, len(det.Labels))
	for i, l := range det.Labels {
		labels[i] = string(l)
	}
	return Update{
		Text:       text,
		Emotion:    string(det.Emotion),
		Labels:     labels,
		Confidence: det.Confidence,
		Color:      base.Hex(),
		Foreground: palette.ContrastColorFor(base).Hex(),
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("preview upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageBytes)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	var writeMu sync.Mutex
	send := func(v any) {
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(v); err != nil {
			h.logger.Debug("preview write failed", "error", err)
		}
	}

	deb := NewDebouncer(h.delay)
	defer deb.Stop()

	h.logger.Debug("preview connected", "remote", r.RemoteAddr)
	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("preview read ended", "error", err)
			}
			return
		}
		text := strings.TrimSpace(req.Text)
		deb.Submit(func() {
			dctx, dcancel := context.WithTimeout(ctx, detectTimeout)
			defer dcancel()
			send(h.Build(dctx, text))
		})
	}
}
