package llmclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"voyago/pkg/utils"
)

// GeminiClient serves as the last generation attempt when every OpenRouter
// model has failed. One client holds one underlying connection.
type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

func (c *GeminiClient) Provider() string { return "gemini" }

func (c *GeminiClient) Complete(ctx context.Context, model, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	m := c.client.GenerativeModel(model)
	m.SetTemperature(completionTemperature)
	m.SetTopP(completionTopP)
	m.SetMaxOutputTokens(completionMaxTokens)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", utils.ErrEmptyCompletion
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	content := strings.TrimSpace(b.String())
	if content == "" {
		return "", utils.ErrEmptyCompletion
	}
	return content, nil
}

func (c *GeminiClient) Close() error { return c.client.Close() }
