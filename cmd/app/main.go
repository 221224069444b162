package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyago/cmd/fx/bot_fx"
	"voyago/cmd/fx/config_fx"
	"voyago/cmd/fx/guide_fx"
	"voyago/cmd/fx/links_fx"
	"voyago/internal/api/controllers"
	"voyago/internal/config"
	"voyago/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		guide_fx.Module,
		links_fx.Module,
		bot_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.Invoke(StartKeepAlive),
	)

	app.Run()
}

func ProvideRouter(
	cfg *config.Config,
	healthController *controllers.HealthController,
	guideController *controllers.GuideController,
	linksController *controllers.LinksController,
	webhookController *controllers.WebhookController,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	RegisterRoutes(r, healthController, guideController, linksController, webhookController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	healthController *controllers.HealthController,
	guideController *controllers.GuideController,
	linksController *controllers.LinksController,
	webhookController *controllers.WebhookController,
) {
	r.GET("/", healthController.StatusHandler)
	r.GET("/ping", healthController.PingHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/webhook", webhookController.TelegramUpdateHandler)

	api := r.Group("/api")
	api.POST("/guide", guideController.GenerateGuideHandler)
	api.POST("/links", linksController.BuildLinksHandler)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", cfg.AppPort))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

// StartKeepAlive pings the public URL every ten minutes so free-tier hosts
// do not put the process to sleep between Telegram updates.
func StartKeepAlive(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) {
	if cfg.WebhookURL == "" {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(10 * time.Minute)
				defer ticker.Stop()
				client := &http.Client{Timeout: 10 * time.Second}
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						resp, err := client.Get(cfg.WebhookURL + "/ping")
						if err != nil {
							logger.Warn("keep-alive ping failed", zap.Error(err))
							continue
						}
						resp.Body.Close()
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
