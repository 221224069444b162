package links_fx

import (
	"go.uber.org/fx"

	"voyago/internal/api/controllers"
	"voyago/internal/config"
	"voyago/internal/services"
)

var Module = fx.Provide(
	ProvideLinksService,
	ProvideLinksController,
)

func ProvideLinksService(cfg *config.Config) services.LinksServiceInterface {
	return services.NewLinksService(cfg)
}

func ProvideLinksController(linksService services.LinksServiceInterface) *controllers.LinksController {
	return controllers.NewLinksController(linksService)
}
