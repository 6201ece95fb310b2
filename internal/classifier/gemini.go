package classifier

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/youruser/bubblesticker/internal/emotion"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// Gemini classifies with the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
	table  *emotion.PriorityTable
}

// NewGemini returns a Gemini classifier. An empty baseURL uses the public endpoint.
func NewGemini(ctx context.Context, apiKey, model string, table *emotion.PriorityTable, baseURL string) (*Gemini, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: %w: API key is required", ErrNotConfigured)
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultGeminiModel
	}
	if table == nil {
		table = emotion.DefaultPriority
	}
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Gemini{client: client, model: model, table: table}, nil
}

// Name implements Classifier.
func (g *Gemini) Name() string { return "gemini:" + g.model }

// Classify implements Classifier.
func (g *Gemini) Classify(ctx context.Context, text string) (Result, error) {
	if g == nil || g.client == nil {
		return Result{}, ErrNotConfigured
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt(g.table), genai.RoleUser),
		Temperature:       genai.Ptr[float32](0),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(text), config)
	if err != nil {
		return Result{}, fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return Result{}, fmt.Errorf("gemini: empty response")
	}
	reply := resp.Text()
	labels := parseLabels(reply, g.table)
	if labels == "" {
		return Result{}, fmt.Errorf("gemini: no labels in reply %q", reply)
	}
	return Result{Labels: labels, Confidence: DefaultConfidence}, nil
}
