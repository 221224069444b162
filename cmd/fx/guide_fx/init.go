package guide_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyago/internal/api/controllers"
	"voyago/internal/config"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/llmclient"
)

var Module = fx.Provide(
	ProvideGuideLibrary,
	ProvidePromptService,
	ProvideFallbackService,
	ProvideGuideService,
	ProvideGuideController,
)

func ProvideGuideLibrary() (repositories.GuideLibrary, error) {
	return repositories.NewGuideLibrary()
}

func ProvidePromptService() services.PromptServiceInterface {
	return services.NewPromptService()
}

func ProvideFallbackService(library repositories.GuideLibrary) services.FallbackServiceInterface {
	return services.NewFallbackService(library)
}

// ProvideGuideService wires the text-generation backends. OpenRouter is the
// primary; Gemini is attached only when a key is configured, as the final
// attempt before the static fallback.
func ProvideGuideService(
	cfg *config.Config,
	prompts services.PromptServiceInterface,
	fallback services.FallbackServiceInterface,
	logger *zap.Logger,
) (services.GuideServiceInterface, error) {
	var openRouter llmclient.TextClient
	if cfg.OpenRouterAPIKey != "" {
		client, err := llmclient.NewTextClient("openrouter", cfg.OpenRouterAPIKey, cfg.OpenRouterBaseURL, cfg.OpenRouterReferer)
		if err != nil {
			return nil, err
		}
		openRouter = client
	} else {
		logger.Warn("OPENROUTER_API_KEY not set, skipping OpenRouter models")
	}

	var gemini llmclient.TextClient
	if cfg.GeminiAPIKey != "" {
		client, err := llmclient.NewTextClient("gemini", cfg.GeminiAPIKey, "", "")
		if err != nil {
			return nil, err
		}
		gemini = client
	} else {
		logger.Warn("GEMINI_API_KEY not set, skipping Gemini fallback model")
	}

	return services.NewGuideService(prompts, fallback, openRouter, gemini, cfg.GeminiModel, logger), nil
}

func ProvideGuideController(guideService services.GuideServiceInterface) *controllers.GuideController {
	return controllers.NewGuideController(guideService)
}
