package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/llmclient"
	"voyago/pkg/metrics"
	"voyago/pkg/utils"
)

// openRouterModels is the ordered free-tier model list tried before Gemini.
// First success that survives validation wins.
var openRouterModels = []string{
	"mistralai/mistral-7b-instruct:free",
	"meta-llama/llama-3.1-8b-instruct:free",
	"google/gemma-2-9b-it:free",
}

type GuideServiceInterface interface {
	// GenerateGuide produces guide text for the trip. It never returns an
	// error; every failure path ends in the static or generic fallback.
	GenerateGuide(ctx context.Context, req request_models.TripRequest) response_models.GuideResult
}

type GuideService struct {
	prompts     PromptServiceInterface
	fallback    FallbackServiceInterface
	openRouter  llmclient.TextClient
	gemini      llmclient.TextClient // nil when no Gemini key is configured
	geminiModel string
	logger      *zap.Logger
}

func NewGuideService(
	prompts PromptServiceInterface,
	fallback FallbackServiceInterface,
	openRouter llmclient.TextClient,
	gemini llmclient.TextClient,
	geminiModel string,
	logger *zap.Logger,
) GuideServiceInterface {
	return &GuideService{
		prompts:     prompts,
		fallback:    fallback,
		openRouter:  openRouter,
		gemini:      gemini,
		geminiModel: geminiModel,
		logger:      logger,
	}
}

type generationAttempt struct {
	client llmclient.TextClient
	model  string
}

func (g *GuideService) attempts() []generationAttempt {
	var list []generationAttempt
	if g.openRouter != nil {
		for _, model := range openRouterModels {
			list = append(list, generationAttempt{client: g.openRouter, model: model})
		}
	}
	if g.gemini != nil {
		list = append(list, generationAttempt{client: g.gemini, model: g.geminiModel})
	}
	return list
}

func (g *GuideService) GenerateGuide(ctx context.Context, req request_models.TripRequest) response_models.GuideResult {
	start := time.Now()
	defer func() {
		metrics.GenerationSeconds.Observe(time.Since(start).Seconds())
	}()

	prompt := g.prompts.BuildGuidePrompt(req)

	for _, attempt := range g.attempts() {
		text, err := attempt.client.Complete(ctx, attempt.model, prompt)
		if err != nil {
			metrics.ModelAttempts.WithLabelValues(attempt.model, "error").Inc()
			g.logger.Warn("generation attempt failed",
				zap.String("provider", attempt.client.Provider()),
				zap.String("model", attempt.model),
				zap.Error(err))
			continue
		}
		if reason := validateGuideText(text, req.DestinationCity); reason != "" {
			metrics.ModelAttempts.WithLabelValues(attempt.model, "rejected").Inc()
			g.logger.Warn("generated text rejected",
				zap.String("provider", attempt.client.Provider()),
				zap.String("model", attempt.model),
				zap.String("reason", reason),
				zap.Int("length", len(text)))
			continue
		}

		metrics.ModelAttempts.WithLabelValues(attempt.model, "ok").Inc()
		metrics.GuideResults.WithLabelValues(string(response_models.SourceAIGenerated)).Inc()
		g.logger.Info("guide generated",
			zap.String("provider", attempt.client.Provider()),
			zap.String("model", attempt.model),
			zap.String("city", req.DestinationCity),
			zap.Duration("elapsed", time.Since(start)))
		return response_models.GuideResult{
			Text:   text,
			Source: response_models.SourceAIGenerated,
			Model:  attempt.model,
		}
	}

	budget, duration := g.prompts.TripBudget(req)
	metrics.GuideResults.WithLabelValues(string(response_models.SourceStaticFallback)).Inc()
	g.logger.Info("serving static fallback guide",
		zap.String("city", req.DestinationCity),
		zap.Error(utils.ErrProviderExhausted))
	return response_models.GuideResult{
		Text:   g.fallback.Render(req, budget, duration),
		Source: response_models.SourceStaticFallback,
	}
}

const minGuideLength = 500

// dayMarker matches the structural headings of a day-by-day itinerary.
var dayMarker = regexp.MustCompile(`(?i)\bday\s*\d`)

// currencyAmount matches a price mention such as €300, $1,200 or £15.
var currencyAmount = regexp.MustCompile(`[€$£₺¥]\s?\d[\d,.]*`)

// genericPhrases are filler the free-tier models emit when they have nothing
// city-specific to say; their presence fails the whole text.
var genericPhrases = []string{
	"explore the city center",
	"enjoy local cuisine",
	"immerse yourself in the local culture",
	"as an ai",
	"i cannot provide",
	"i'm unable to",
}

// validateGuideText applies the specificity heuristic. Empty return means
// the text is acceptable; otherwise the failed check is named for the log.
func validateGuideText(text, city string) string {
	if !strings.Contains(strings.ToLower(text), strings.ToLower(city)) {
		return "missing city name"
	}
	if len(text) < minGuideLength {
		return "too short"
	}
	if !dayMarker.MatchString(text) {
		return "no day-by-day structure"
	}
	lower := strings.ToLower(text)
	for _, phrase := range genericPhrases {
		if strings.Contains(lower, phrase) {
			return "generic phrasing"
		}
	}
	if len(currencyAmount.FindAllString(text, 4)) < 3 {
		return "too few concrete prices"
	}
	return ""
}
