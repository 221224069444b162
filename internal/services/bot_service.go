package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"voyago/internal/config"
	"voyago/internal/models/response_models"
)

// telegramMessageLimit is Telegram's hard cap per message; longer guide
// texts are split on paragraph boundaries.
const telegramMessageLimit = 4000

type BotServiceInterface interface {
	// HandleUpdate processes one Telegram update end to end, including all
	// outbound replies. Errors are logged, never returned to Telegram.
	HandleUpdate(ctx context.Context, update tgbotapi.Update)
	// StartPolling runs long polling until the context is cancelled. Used in
	// development; production registers a webhook instead.
	StartPolling(ctx context.Context)
	// RegisterWebhook points Telegram at the configured public URL.
	RegisterWebhook() error
}

type BotService struct {
	api      *tgbotapi.BotAPI
	cfg      *config.Config
	sessions SessionServiceInterface
	guides   GuideServiceInterface
	links    LinksServiceInterface
	logger   *zap.Logger
}

func NewBotService(
	cfg *config.Config,
	sessions SessionServiceInterface,
	guides GuideServiceInterface,
	links LinksServiceInterface,
	logger *zap.Logger,
) (BotServiceInterface, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}
	logger.Info("telegram bot authorized", zap.String("username", api.Self.UserName))
	return &BotService{
		api:      api,
		cfg:      cfg,
		sessions: sessions,
		guides:   guides,
		links:    links,
		logger:   logger,
	}, nil
}

func (b *BotService) RegisterWebhook() error {
	wh, err := tgbotapi.NewWebhook(b.cfg.WebhookURL + "/webhook")
	if err != nil {
		return fmt.Errorf("building webhook config: %w", err)
	}
	if _, err := b.api.Request(wh); err != nil {
		return fmt.Errorf("registering webhook: %w", err)
	}
	b.logger.Info("webhook registered", zap.String("url", b.cfg.WebhookURL))
	return nil
}

func (b *BotService) StartPolling(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("started long polling")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			b.HandleUpdate(ctx, update)
		}
	}
}

func (b *BotService) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.Chat == nil {
		return
	}
	chatID := update.Message.Chat.ID
	text := strings.TrimSpace(update.Message.Text)

	switch {
	case strings.HasPrefix(text, "/start"):
		b.send(chatID, "👋 Hi! I'm Voyago, your travel planner. Let's build your trip.\n\n"+b.sessions.Start(chatID))
	case strings.HasPrefix(text, "/cancel"):
		b.sessions.Cancel(chatID)
		b.send(chatID, "Trip planning cancelled. Send /start whenever you're ready.")
	case strings.HasPrefix(text, "/help"):
		b.send(chatID, "Send /start to plan a trip. I'll ask a few questions, then send a day-by-day guide plus flight, hotel and service links.")
	default:
		b.handleAnswer(ctx, chatID, text)
	}
}

func (b *BotService) handleAnswer(ctx context.Context, chatID int64, text string) {
	reply, done, req, err := b.sessions.Advance(chatID, text)
	if err != nil {
		b.send(chatID, "I lost track of our conversation. Send /start to begin again.")
		return
	}
	if !done {
		b.send(chatID, reply)
		return
	}

	b.send(chatID, fmt.Sprintf("✨ Building your %s guide, one moment...", req.DestinationCity))

	guide := b.guides.GenerateGuide(ctx, req)
	for _, chunk := range splitMessage(guide.Text) {
		b.send(chatID, chunk)
	}
	b.send(chatID, formatLinks(b.links.BuildAll(req)))
	b.logger.Info("trip served",
		zap.Int64("chat_id", chatID),
		zap.String("city", req.DestinationCity),
		zap.String("source", string(guide.Source)))
}

func (b *BotService) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("sending telegram message failed",
			zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func formatLinks(set response_models.LinkSet) string {
	var sb strings.Builder
	sb.WriteString("🔗 YOUR TRIP LINKS\n\n")
	sb.WriteString("✈️ Flights: " + set.FlightLink + "\n\n")
	sb.WriteString("🏨 Hotels: " + set.HotelLink + "\n")
	for _, link := range set.ServiceLinks {
		fmt.Fprintf(&sb, "\n%s\n%s\n%s\n", link.Title, link.Description, link.URL)
	}
	sb.WriteString("\n🛟 TRAVEL PROTECTION\n")
	for _, link := range set.ProtectionLinks {
		fmt.Fprintf(&sb, "\n%s\n%s\n%s\n", link.Title, link.Description, link.URL)
	}
	return sb.String()
}

// splitMessage chunks text under the Telegram limit, preferring paragraph
// breaks so sections stay intact. A single paragraph over the limit is
// hard-split on the nearest space, or mid-word when there is none.
func splitMessage(text string) []string {
	if len(text) <= telegramMessageLimit {
		return []string{text}
	}
	var chunks []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	for _, para := range strings.Split(text, "\n\n") {
		if len(para) > telegramMessageLimit {
			flush()
			chunks = append(chunks, hardSplit(para, telegramMessageLimit)...)
			continue
		}
		if current.Len() > 0 && current.Len()+len(para)+2 > telegramMessageLimit {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
	}
	flush()
	return chunks
}

// hardSplit cuts text into pieces of at most limit bytes without breaking a
// UTF-8 sequence, preferring the last space in the back half of each piece.
func hardSplit(text string, limit int) []string {
	var chunks []string
	for len(text) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		if sp := strings.LastIndexByte(text[:cut], ' '); sp > limit/2 {
			cut = sp
		}
		chunks = append(chunks, strings.TrimSpace(text[:cut]))
		text = strings.TrimSpace(text[cut:])
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
