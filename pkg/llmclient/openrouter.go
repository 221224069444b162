package llmclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"voyago/pkg/utils"
)

// Sampling parameters and token budget sized for the guide template
// (roughly 800 words plus headings).
const (
	completionMaxTokens   = 1000
	completionTemperature = 0.7
	completionTopP        = 0.9
	requestTimeout        = 15 * time.Second
)

// OpenRouterClient speaks the OpenAI chat-completion protocol against the
// OpenRouter gateway, which multiplexes many hosted models behind one key.
type OpenRouterClient struct {
	client *openai.Client
}

// refererTransport injects the attribution headers OpenRouter uses to rank
// free-tier apps.
type refererTransport struct {
	referer string
	base    http.RoundTripper
}

func (t *refererTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("HTTP-Referer", t.referer)
	req.Header.Set("X-Title", "Voyago Travel Bot")
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

func NewOpenRouterClient(apiKey, baseURL, referer string) *OpenRouterClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{
		Timeout:   requestTimeout,
		Transport: &refererTransport{referer: referer},
	}
	return &OpenRouterClient{client: openai.NewClientWithConfig(cfg)}
}

func (c *OpenRouterClient) Provider() string { return "openrouter" }

func (c *OpenRouterClient) Complete(ctx context.Context, model, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemperature,
		TopP:        completionTopP,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", utils.ErrEmptyCompletion
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", utils.ErrEmptyCompletion
	}
	return content, nil
}

func (c *OpenRouterClient) Close() error { return nil }
