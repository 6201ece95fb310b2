package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/youruser/bubblesticker/internal/emotion"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAI classifies through an OpenAI compatible chat completions endpoint.
type OpenAI struct {
	client *openai.Client
	model  string
	table  *emotion.PriorityTable
}

// NewOpenAI returns an OpenAI classifier. baseURL may be empty for the public API.
func NewOpenAI(apiKey, model string, table *emotion.PriorityTable, baseURL string) (*OpenAI, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("openai: %w: API key is required", ErrNotConfigured)
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultOpenAIModel
	}
	if table == nil {
		table = emotion.DefaultPriority
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	return &OpenAI{client: &client, model: model, table: table}, nil
}

// Name implements Classifier.
func (c *OpenAI) Name() string { return "openai:" + c.model }

// Classify implements Classifier.
func (c *OpenAI) Classify(ctx context.Context, text string) (Result, error) {
	if c == nil || c.client == nil {
		return Result{}, ErrNotConfigured
	}
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt(c.table)),
			openai.UserMessage(text),
		},
		Temperature: openai.Float(0),
		MaxTokens:   openai.Int(32),
	}
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return Result{}, fmt.Errorf("openai chat completion: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("openai: empty response")
	}
	labels := parseLabels(resp.Choices[0].Message.Content, c.table)
	if labels == "" {
		return Result{}, fmt.Errorf("openai: no labels in reply %q", resp.Choices[0].Message.Content)
	}
	return Result{Labels: labels, Confidence: DefaultConfidence}, nil
}
