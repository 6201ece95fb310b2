// Package classifier turns free text into raw emotion labels.
//
// Classifiers return the comma-joined label convention the emotion package
// resolves. They know nothing about colors or rendering.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/youruser/bubblesticker/internal/emotion"
	"github.com/youruser/bubblesticker/internal/logging"
)

// ErrNotConfigured is returned by a classifier that is missing credentials or a model.
var ErrNotConfigured = errors.New("classifier not configured")

// DefaultConfidence is reported when a backend gives no score of its own.
const DefaultConfidence = 0.75

// Result is the raw output of a classifier.
type Result struct {
	// Labels is comma-joined, e.g. "joy,love". A single label is allowed.
	Labels     string
	Confidence float64
}

// Classifier maps text to raw labels.
type Classifier interface {
	Classify(ctx context.Context, text string) (Result, error)
	Name() string
}

// Detection is a classification resolved to one primary emotion.
type Detection struct {
	Raw        string
	Labels     emotion.LabelSet
	Emotion    emotion.Label
	Confidence float64
	Fallback   bool
}

// Detector runs a Classifier and resolves its output. Blank input and classifier
// failures both resolve to neutral.
type Detector struct {
	classifier Classifier
	table      *emotion.PriorityTable
	logger     *slog.Logger
}

// NewDetector returns a Detector. A nil table means emotion.DefaultPriority.
func NewDetector(c Classifier, table *emotion.PriorityTable, logger *slog.Logger) *Detector {
	if table == nil {
		table = emotion.DefaultPriority
	}
	return &Detector{classifier: c, table: table, logger: logging.OrNop(logger)}
}

// Detect never fails.
func (d *Detector) Detect(ctx context.Context, text string) Detection {
	neutral := Detection{Raw: string(emotion.Neutral), Labels: emotion.LabelSet{emotion.Neutral}, Emotion: emotion.Neutral, Confidence: DefaultConfidence, Fallback: true}
	if strings.TrimSpace(text) == "" {
		return neutral
	}
	if d.classifier == nil {
		d.logger.Warn("no classifier configured, returning neutral")
		return neutral
	}

	res, err := d.classifier.Classify(ctx, text)
	if err != nil {
		d.logger.Warn("classification failed, returning neutral", "classifier", d.classifier.Name(), "error", err)
		return neutral
	}
	labels := emotion.Split(res.Labels)
	primary := d.table.ResolveSet(labels)
	conf := res.Confidence
	if conf <= 0 || conf > 1 {
		conf = DefaultConfidence
	}
	d.logger.Debug("emotion detected", "classifier", d.classifier.Name(), "raw", res.Labels, "emotion", primary, "confidence", conf)
	return Detection{
		Raw:        res.Labels,
		Labels:     labels,
		Emotion:    primary,
		Confidence: conf,
		Fallback:   len(labels) == 0,
	}
}

// Kinds accepted by New.
const (
	KindLexicon = "lexicon"
	KindOpenAI  = "openai"
	KindGemini  = "gemini"
)

// Settings selects and configures a backend.
type Settings struct {
	Kind         string
	OpenAIAPIKey string
	OpenAIModel  string
	OpenAIURL    string
	GoogleAPIKey string
	GeminiModel  string
	GeminiURL    string
	Table        *emotion.PriorityTable
}

// New builds the classifier named by s.Kind.
func New(ctx context.Context, s Settings) (Classifier, error) {
	switch strings.ToLower(strings.TrimSpace(s.Kind)) {
	case "", KindLexicon:
		return NewLexicon(nil), nil
	case KindOpenAI:
		return NewOpenAI(s.OpenAIAPIKey, s.OpenAIModel, s.Table, s.OpenAIURL)
	case KindGemini:
		return NewGemini(ctx, s.GoogleAPIKey, s.GeminiModel, s.Table, s.GeminiURL)
	default:
		return nil, fmt.Errorf("unknown classifier %q", s.Kind)
	}
}
