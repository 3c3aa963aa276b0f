package gemini

import (
	"context"
	"fmt"

	"github.com/Dan9191/scenario-planner/internal/config"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// contentGenerator is the part of genai.Models the client calls
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client sends single-prompt requests to the Gemini API
type Client struct {
	models contentGenerator
	model  string
	log    *logrus.Logger
}

// NewClient initializes a Gemini client from configuration
func NewClient(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return newClient(gc.Models, cfg.GeminiModel, log), nil
}

func newClient(models contentGenerator, model string, log *logrus.Logger) *Client {
	return &Client{models: models, model: model, log: log}
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.model
}

// Generate sends one prompt and returns the text of the first candidate
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		reason := "no candidates"
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			reason = fmt.Sprintf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("gemini returned %s", reason)
	}

	text := resp.Text()
	c.log.WithFields(logrus.Fields{
		"model":         c.model,
		"finish_reason": resp.Candidates[0].FinishReason,
		"chars":         len(text),
	}).Debug("Gemini response received")

	if text == "" {
		return "", fmt.Errorf("gemini returned no text (finish reason %s)", resp.Candidates[0].FinishReason)
	}
	return text, nil
}
