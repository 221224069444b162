package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/request_models"
)

func pragueTrip() request_models.TripRequest {
	return request_models.TripRequest{
		DestinationCity: "Prague",
		OriginCity:      "London",
		TravelerType:    "Solo",
		Interests:       "Culture",
		CheckIn:         "2026-01-10",
		CheckOut:        "2026-01-13",
		Budget:          "€300",
	}
}

func TestBuildGuidePromptEmbedsTripParameters(t *testing.T) {
	prompt := NewPromptService().BuildGuidePrompt(pragueTrip())

	assert.Contains(t, prompt, "3-day travel guide for Prague")
	assert.Contains(t, prompt, "Solo traveler")
	assert.Contains(t, prompt, "2026-01-10 to 2026-01-13")
	assert.Contains(t, prompt, "€300")
	assert.Contains(t, prompt, "mid-range")
	assert.Contains(t, prompt, "€100 per day")
	assert.Contains(t, prompt, "Day 1 through Day 3")
}

func TestBuildGuidePromptInterestGuidance(t *testing.T) {
	svc := NewPromptService()

	culture := svc.BuildGuidePrompt(pragueTrip())
	assert.Contains(t, culture, "museums, historical sites")
	assert.NotContains(t, culture, "balanced mix")

	req := pragueTrip()
	req.Interests = "food and nightlife"
	multi := svc.BuildGuidePrompt(req)
	assert.Contains(t, multi, "local cuisine, food markets")
	assert.Contains(t, multi, "bars, clubs")

	req.Interests = "stamp collecting"
	generic := svc.BuildGuidePrompt(req)
	assert.Contains(t, generic, "balanced mix")
}

func TestBuildGuidePromptIsDeterministic(t *testing.T) {
	svc := NewPromptService()
	req := pragueTrip()
	req.Interests = "nightlife, beach, culture"

	first := svc.BuildGuidePrompt(req)
	second := svc.BuildGuidePrompt(req)
	assert.Equal(t, first, second)
}

func TestBuildGuidePromptDefaults(t *testing.T) {
	req := request_models.TripRequest{
		DestinationCity: "Lyon",
		CheckIn:         "2026-05-01",
		CheckOut:        "2026-05-04",
	}
	prompt := NewPromptService().BuildGuidePrompt(req)

	assert.Contains(t, prompt, "Couple traveler")
	assert.Contains(t, prompt, "general sightseeing")
	assert.Contains(t, prompt, "€1000 (estimated)")
}

func TestTripBudget(t *testing.T) {
	budget, duration := NewPromptService().TripBudget(pragueTrip())
	require.Equal(t, 3, duration)
	assert.Equal(t, 100, budget.Daily)
	assert.Equal(t, "mid-range", budget.Level)
}
