package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyago/internal/api/controllers"
	"voyago/internal/config"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	ProvideConfig,
	ProvideLogger,
	ProvideHealthController,
)

func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

func ProvideLogger(cfg *config.Config) *zap.Logger {
	utils.InitializeLogger(cfg.Env)
	return utils.GetLogger()
}

func ProvideHealthController(cfg *config.Config) *controllers.HealthController {
	return controllers.NewHealthController(cfg)
}
