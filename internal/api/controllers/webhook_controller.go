package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"voyago/internal/services"
	"voyago/pkg/utils"
)

type WebhookController struct {
	botService services.BotServiceInterface
}

func NewWebhookController(botService services.BotServiceInterface) *WebhookController {
	return &WebhookController{
		botService: botService,
	}
}

// POST /webhook receives one Telegram update per request. The update is
// handled on its own goroutine with a detached context so the 200 goes out
// immediately; guide generation can take a minute and Telegram redelivers
// anything it has to wait on. The bot layer swallows its own errors.
func (w *WebhookController) TelegramUpdateHandler(c *gin.Context) {
	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Malformed update payload")
		return
	}

	go w.botService.HandleUpdate(context.Background(), update)
	c.Status(http.StatusOK)
}
