package services

import (
	"fmt"
	"strings"

	"voyago/internal/models/request_models"
	"voyago/pkg/utils"
)

type PromptServiceInterface interface {
	BuildGuidePrompt(req request_models.TripRequest) string
	TripBudget(req request_models.TripRequest) (utils.BudgetInfo, int)
}

type PromptService struct{}

func NewPromptService() PromptServiceInterface {
	return &PromptService{}
}

// interestGuidance maps a recognized interest keyword to the emphasis block
// appended to the prompt. Matching is a case-insensitive substring check over
// the free-text interests field.
var interestGuidance = map[string]string{
	"culture":   "Focus on museums, historical sites, architecture, and cultural experiences. Include specific museum names with entry prices and recommended visit durations.",
	"food":      "Focus on local cuisine, food markets, cooking classes, and authentic restaurants. Name specific dishes with typical prices and where locals eat them.",
	"nature":    "Focus on parks, gardens, hiking trails, viewpoints, and outdoor activities. Include specific trail names, park entry fees, and best visiting times.",
	"beach":     "Focus on beaches, waterfront areas, water sports, and coastal walks. Name specific beaches with access costs and facilities.",
	"nightlife": "Focus on bars, clubs, evening entertainment, and late-night districts. Name specific venues with typical cover charges and drink prices.",
}

// interestOrder fixes the emission order of guidance blocks so the prompt is
// deterministic for a given request.
var interestOrder = []string{"culture", "food", "nature", "beach", "nightlife"}

// TripBudget derives the budget picture and trip duration shared by the
// prompt and both fallback renderers.
func (p *PromptService) TripBudget(req request_models.TripRequest) (utils.BudgetInfo, int) {
	duration := utils.TripDurationFromStrings(req.CheckIn, req.CheckOut)
	return utils.ParseBudget(req.Budget, duration), duration
}

// BuildGuidePrompt assembles the full instruction string for one trip. Pure
// function of the request plus the static guidance tables.
func (p *PromptService) BuildGuidePrompt(req request_models.TripRequest) string {
	budget, duration := p.TripBudget(req)
	travelerType := req.NormalizedTravelerType()
	if travelerType == "" {
		travelerType = request_models.TravelerCouple
	}
	interests := strings.TrimSpace(req.Interests)
	if interests == "" {
		interests = "general sightseeing"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed %d-day travel guide for %s for a %s traveler interested in %s.\n\n",
		duration, req.DestinationCity, travelerType, interests)
	fmt.Fprintf(&b, "Trip dates: %s to %s.\n", req.CheckIn, req.CheckOut)
	fmt.Fprintf(&b, "Total budget: %s (%s level, about %s per day).\n\n",
		budget.Display, budget.Level, budget.DisplayDaily)

	matched := false
	lowerInterests := strings.ToLower(req.Interests)
	for _, key := range interestOrder {
		if strings.Contains(lowerInterests, key) {
			b.WriteString(interestGuidance[key])
			b.WriteString("\n")
			matched = true
		}
	}
	if !matched {
		b.WriteString("Provide a balanced mix of sightseeing, food, and local experiences.\n")
	}

	b.WriteString("\nStructure the guide with these sections:\n")
	fmt.Fprintf(&b, "1. A 2-3 sentence overview of %s\n", req.DestinationCity)
	fmt.Fprintf(&b, "2. Day-by-day itinerary (Day 1 through Day %d) with morning, afternoon and evening activities, each with a concrete price\n", duration)
	fmt.Fprintf(&b, "3. Budget breakdown for the %s level: accommodation, food, transport, activities per day\n", budget.Level)
	b.WriteString("4. Money-saving tips specific to the city\n")
	b.WriteString("5. Local food to try with typical prices\n")
	b.WriteString("6. One local secret most tourists miss\n")
	b.WriteString("7. Practical info: currency, language, tipping, transport\n\n")

	fmt.Fprintf(&b, "IMPORTANT: Name real, specific places in %s (streets, venues, restaurants). ", req.DestinationCity)
	b.WriteString("Include at least 5 concrete prices. Never write generic filler like \"explore the city center\" or \"enjoy local cuisine\" without naming where.")

	return b.String()
}
