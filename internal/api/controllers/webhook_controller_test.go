package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowBot blocks inside HandleUpdate until released, signalling on started
// once the update reaches it.
type slowBot struct {
	started chan struct{}
	release chan struct{}
}

func newSlowBot() *slowBot {
	return &slowBot{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (b *slowBot) HandleUpdate(context.Context, tgbotapi.Update) {
	close(b.started)
	<-b.release
}

func (b *slowBot) StartPolling(context.Context) {}

func (b *slowBot) RegisterWebhook() error { return nil }

func webhookRouter(bot *slowBot) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook", NewWebhookController(bot).TelegramUpdateHandler)
	return r
}

func TestTelegramUpdateHandlerRespondsBeforeProcessing(t *testing.T) {
	bot := newSlowBot()
	router := webhookRouter(bot)

	body := `{"update_id":1,"message":{"message_id":1,"chat":{"id":42},"text":"/start"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// The handler must not wait on the bot; guide generation can run for
	// many seconds and Telegram redelivers slow webhooks.
	require.Equal(t, http.StatusOK, w.Code)

	select {
	case <-bot.started:
	case <-time.After(time.Second):
		t.Fatal("update never reached the bot service")
	}
	close(bot.release)
}

func TestTelegramUpdateHandlerRejectsMalformedPayload(t *testing.T) {
	bot := newSlowBot()
	router := webhookRouter(bot)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	select {
	case <-bot.started:
		t.Fatal("malformed payload must not reach the bot service")
	case <-time.After(50 * time.Millisecond):
	}
}
