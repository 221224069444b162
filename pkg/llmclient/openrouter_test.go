package llmclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/pkg/utils"
)

func completionServer(t *testing.T, body string, gotReferer, gotTitle *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		if gotReferer != nil {
			*gotReferer = r.Header.Get("HTTP-Referer")
		}
		if gotTitle != nil {
			*gotTitle = r.Header.Get("X-Title")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestOpenRouterCompleteReturnsContent(t *testing.T) {
	var referer, title string
	srv := completionServer(t, `{
		"id": "gen-1",
		"object": "chat.completion",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "Day 1: Old Town walk."}, "finish_reason": "stop"}]
	}`, &referer, &title)
	defer srv.Close()

	client := NewOpenRouterClient("test-key", srv.URL, "https://voyago.example")
	content, err := client.Complete(context.Background(), "mistralai/mistral-7b-instruct:free", "plan a trip")
	require.NoError(t, err)
	assert.Equal(t, "Day 1: Old Town walk.", content)
	assert.Equal(t, "https://voyago.example", referer)
	assert.Equal(t, "Voyago Travel Bot", title)
}

func TestOpenRouterCompleteEmptyChoices(t *testing.T) {
	srv := completionServer(t, `{"id": "gen-2", "object": "chat.completion", "choices": []}`, nil, nil)
	defer srv.Close()

	client := NewOpenRouterClient("test-key", srv.URL, "")
	_, err := client.Complete(context.Background(), "mistralai/mistral-7b-instruct:free", "plan a trip")
	assert.ErrorIs(t, err, utils.ErrEmptyCompletion)
}

func TestOpenRouterCompleteBlankContent(t *testing.T) {
	srv := completionServer(t, `{
		"id": "gen-3",
		"object": "chat.completion",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "   "}, "finish_reason": "stop"}]
	}`, nil, nil)
	defer srv.Close()

	client := NewOpenRouterClient("test-key", srv.URL, "")
	_, err := client.Complete(context.Background(), "mistralai/mistral-7b-instruct:free", "plan a trip")
	assert.ErrorIs(t, err, utils.ErrEmptyCompletion)
}
