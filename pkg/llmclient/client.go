package llmclient

import (
	"context"
	"fmt"
	"strings"
)

// TextClient is a chat-completion backend. Implementations are safe for
// concurrent use and bound each call with their own request timeout.
type TextClient interface {
	// Provider names the backend for logs and metrics.
	Provider() string
	// Complete sends a single-user-message completion request against the
	// given model identifier and returns the raw text.
	Complete(ctx context.Context, model, prompt string) (string, error)
	Close() error
}

// NewTextClient builds a client for the named provider.
func NewTextClient(provider, apiKey, baseURL, referer string) (TextClient, error) {
	switch strings.ToLower(provider) {
	case "openrouter":
		return NewOpenRouterClient(apiKey, baseURL, referer), nil
	case "gemini":
		return NewGeminiClient(apiKey)
	default:
		return nil, fmt.Errorf("unsupported text provider: %s. Use 'openrouter' or 'gemini'", provider)
	}
}
