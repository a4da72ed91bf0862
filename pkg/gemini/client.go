// Package gemini wraps the Google GenAI SDK behind the narrow JSON-generation
// surface the services need.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/TripVibes/trip-vibes-backend/logger"
)

// ClientInterface is the LLM surface consumed by the services. Responses are
// raw strings; callers own parsing and treat the model as untrusted input.
type ClientInterface interface {
	GenerateJSON(ctx context.Context, system, user string) (string, error)
}

// Client calls the Gemini API.
type Client struct {
	client          *genai.Client
	model           string
	temperature     float32
	maxOutputTokens int32
}

// NewClient connects to the Gemini API. The model name and output bounds come
// from configuration.
func NewClient(ctx context.Context, apiKey, model string, maxOutputTokens int32) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{
		client:          c,
		model:           model,
		temperature:     0.4,
		maxOutputTokens: maxOutputTokens,
	}, nil
}

// GenerateJSON sends a system+user prompt pair and returns the model's text,
// cleaned of markdown fences. Any transport error, empty candidate list, or
// empty text is returned as an error; callers decide how to degrade.
func (c *Client) GenerateJSON(ctx context.Context, system, user string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](c.temperature),
		MaxOutputTokens:   c.maxOutputTokens,
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(user), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	txt := resp.Text()
	if txt == "" {
		return "", fmt.Errorf("empty response from model %s", c.model)
	}

	logger.GetLogger().Debugw("Gemini response received",
		"model", c.model,
		"response_length", len(txt),
	)

	return CleanResponse(txt), nil
}

// CleanResponse strips markdown code fences and surrounding whitespace that
// models wrap around JSON output.
func CleanResponse(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	return s
}
