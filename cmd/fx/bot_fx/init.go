package bot_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyago/internal/api/controllers"
	"voyago/internal/config"
	"voyago/internal/services"
)

// sweepInterval paces the janitor that drops expired chat sessions.
const sweepInterval = 5 * time.Minute

var Module = fx.Options(
	fx.Provide(
		ProvideSessionService,
		ProvideBotService,
		ProvideWebhookController,
	),
	fx.Invoke(StartBot),
)

func ProvideSessionService() services.SessionServiceInterface {
	return services.NewSessionService()
}

func ProvideBotService(
	cfg *config.Config,
	sessions services.SessionServiceInterface,
	guides services.GuideServiceInterface,
	links services.LinksServiceInterface,
	logger *zap.Logger,
) (services.BotServiceInterface, error) {
	return services.NewBotService(cfg, sessions, guides, links, logger)
}

func ProvideWebhookController(botService services.BotServiceInterface) *controllers.WebhookController {
	return controllers.NewWebhookController(botService)
}

// StartBot runs webhook registration (production) or long polling
// (development), plus the session sweeper, tied to the fx lifecycle.
func StartBot(
	lc fx.Lifecycle,
	cfg *config.Config,
	bot services.BotServiceInterface,
	sessions services.SessionServiceInterface,
	logger *zap.Logger,
) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if cfg.WebhookURL != "" {
				if err := bot.RegisterWebhook(); err != nil {
					return err
				}
			} else {
				go bot.StartPolling(ctx)
			}

			go func() {
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if removed := sessions.Sweep(); removed > 0 {
							logger.Debug("swept expired sessions", zap.Int("removed", removed))
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
