package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/youruser/bubblesticker/internal/app"
	"github.com/youruser/bubblesticker/internal/bubble"
	"github.com/youruser/bubblesticker/internal/catalog"
	"github.com/youruser/bubblesticker/internal/classifier"
	"github.com/youruser/bubblesticker/internal/config"
	"github.com/youruser/bubblesticker/internal/emotion"
	imagepkg "github.com/youruser/bubblesticker/internal/image"
	"github.com/youruser/bubblesticker/internal/palette"
	"github.com/youruser/bubblesticker/internal/preview"
)

// Server holds what the handlers need.
type Server struct {
	renderer *bubble.Renderer
	detector *classifier.Detector
	priority *emotion.PriorityTable
	preview  http.Handler
	size     bubble.Size
	baseURL  string
	logger   *slog.Logger
}

// NewServer builds handlers over a wired App.
func NewServer(a *app.App) *Server {
	logger := a.Logger.With("component", "api")
	return &Server{
		renderer: a.Renderer,
		detector: a.Detector,
		priority: a.Priority,
		preview:  preview.NewHandler(a.Detector, a.Palette, a.Config.PreviewDebounce, a.Logger.With("component", "preview")),
		size:     a.Size(),
		baseURL:  a.Config.BaseURL(),
		logger:   logger,
	}
}

type bubbleRequest struct {
	Text    string `json:"text" form:"text"`
	Emotion string `json:"emotion" form:"emotion"`
	Width   int    `json:"width" form:"width"`
	Height  int    `json:"height" form:"height"`
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// sizeFor fills omitted dimensions from the default and rejects oversized ones.
func (s *Server) sizeFor(req bubbleRequest) (bubble.Size, error) {
	size := s.size
	if req.Width != 0 {
		size.Width = req.Width
	}
	if req.Height != 0 {
		size.Height = req.Height
	}
	if size.Width > config.MaxDimension || size.Height > config.MaxDimension {
		return size, fmt.Errorf("size %s exceeds %d", size, config.MaxDimension)
	}
	return size, nil
}

// sticker classifies when no emotion is given, then renders. It writes the error
// response itself and returns nil in that case.
func (s *Server) sticker(c *gin.Context, req bubbleRequest) *bubble.Sticker {
	size, err := s.sizeFor(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil
	}
	raw := strings.TrimSpace(req.Emotion)
	if raw == "" {
		raw = string(s.detector.Detect(c.Request.Context(), req.Text).Emotion)
	}
	st, err := s.renderer.Render(req.Text, raw, size)
	if err != nil {
		if errors.Is(err, bubble.ErrDegenerateGeometry) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return nil
		}
		s.logger.Error("render failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil
	}
	return st
}

func (s *Server) writeSticker(c *gin.Context, st *bubble.Sticker) {
	b, err := imagepkg.EncodePNG(st.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("X-Emotion", string(st.Emotion))
	c.Header("X-Bubble-Color", st.Background.Hex())
	c.Header("X-Foreground-Color", st.Foreground.Hex())
	c.Data(http.StatusOK, "image/png", b)
}

// POST /api/bubble with JSON {text, emotion?, width?, height?}
func (s *Server) bubbleHandler(c *gin.Context) {
	var req bubbleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if st := s.sticker(c, req); st != nil {
		s.writeSticker(c, st)
	}
}

// GET /api/bubble.png?text=&emotion=&width=&height=
func (s *Server) bubblePNGHandler(c *gin.Context) {
	var req bubbleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if st := s.sticker(c, req); st != nil {
		s.writeSticker(c, st)
	}
}

// shareURL points back at the GET render endpoint for req.
func (s *Server) shareURL(req bubbleRequest) string {
	return imagepkg.ShareURL(s.baseURL, req.Text, req.Emotion, req.Width, req.Height)
}

// qr endpoint returns a PNG QR code of the share link for the query's sticker
func (s *Server) qrHandler(c *gin.Context) {
	var req bubbleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	size := imagepkg.DefaultQRSize
	if v, err := strconv.Atoi(c.Query("size")); err == nil {
		size = imagepkg.ClampQRSize(v)
	}
	b, err := imagepkg.GenerateQRPNG(s.shareURL(req), size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// share card: the sticker with a QR of its share link on the right
func (s *Server) cardHandler(c *gin.Context) {
	var req bubbleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	st := s.sticker(c, req)
	if st == nil {
		return
	}
	qr, err := imagepkg.GenerateQRImage(s.shareURL(req), imagepkg.ClampQRSize(st.Height))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	b, err := imagepkg.EncodePNG(imagepkg.ComposeShareCard(st.Image, qr))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("X-Emotion", string(st.Emotion))
	c.Data(http.StatusOK, "image/png", b)
}

// POST /api/classify with JSON {text}
func (s *Server) classifyHandler(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	det := s.detector.Detect(c.Request.Context(), req.Text)
	base := s.renderer.Palette().ColorFor(string(det.Emotion))
	labels := make([]string, len(det.Labels))
	for i, l := range det.Labels {
		labels[i] = string(l)
	}
	c.JSON(http.StatusOK, gin.H{
		"emotion":    det.Emotion,
		"labels":     labels,
		"raw":        det.Raw,
		"confidence": det.Confidence,
		"fallback":   det.Fallback,
		"color":      base.Hex(),
		"foreground": palette.ContrastColorFor(base).Hex(),
	})
}

// POST /api/resolve with JSON {labels: "joy,love"}
func (s *Server) resolveHandler(c *gin.Context) {
	var req struct {
		Labels string `json:"labels"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	primary := s.priority.Resolve(req.Labels)
	c.JSON(http.StatusOK, catalog.Describe(s.renderer.Palette(), s.priority, primary))
}

// GET /api/emotions?category=&q=&foreground=&color=&sort=priority
func (s *Server) emotionsHandler(c *gin.Context) {
	opt := catalog.FilterOptions{
		FreeWords:  c.Query("q"),
		Foreground: c.Query("foreground"),
	}
	if v := c.Query("category"); v != "" {
		opt.Categories = strings.Split(v, ",")
	}
	if v := c.Query("color"); v != "" {
		opt.Colors = strings.Split(v, ",")
	}
	out := catalog.Filter(catalog.Build(s.renderer.Palette(), s.priority), opt)
	if c.Query("sort") == "priority" {
		catalog.SortByPriority(out)
	}
	if out == nil {
		out = []catalog.Entry{}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "emotions": out})
}
