package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/config"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type stubGuideService struct {
	result response_models.GuideResult
}

func (s *stubGuideService) GenerateGuide(context.Context, request_models.TripRequest) response_models.GuideResult {
	return s.result
}

func testRouter(guide services.GuideServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/guide", NewGuideController(guide).GenerateGuideHandler)
	r.POST("/api/links", NewLinksController(services.NewLinksService(&config.Config{
		BookingAID:   "304142",
		BookingLabel: "voyago-bot",
	})).BuildLinksHandler)
	return r
}

func TestGenerateGuideHandler(t *testing.T) {
	router := testRouter(&stubGuideService{result: response_models.GuideResult{
		Text:   "Prague guide text",
		Source: response_models.SourceStaticFallback,
	}})

	body := `{"destination_city":"Prague","check_in":"2026-01-10","check_out":"2026-01-13"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/guide", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result response_models.GuideResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "Prague guide text", result.Text)
	assert.Equal(t, response_models.SourceStaticFallback, result.Source)
}

func TestGenerateGuideHandlerRejectsMissingFields(t *testing.T) {
	router := testRouter(&stubGuideService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/guide", strings.NewReader(`{"destination_city":"Prague"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, utils.ErrInvalidTripRequest.Error(), resp.Message)
}

func TestGenerateGuideHandlerRejectsInvertedDates(t *testing.T) {
	router := testRouter(&stubGuideService{})

	body := `{"destination_city":"Prague","check_in":"2026-01-13","check_out":"2026-01-10"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/guide", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, utils.ErrInvalidDateRange.Error(), resp.Message)
}

func TestBuildLinksHandler(t *testing.T) {
	router := testRouter(&stubGuideService{})

	body := `{"destination_city":"Prague","origin_city":"London","traveler_type":"Family","check_in":"2026-01-10","check_out":"2026-01-13"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/links", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var set response_models.LinkSet
	require.NoError(t, json.Unmarshal(data, &set))

	assert.Contains(t, set.FlightLink, "LON.CITY-PRG.CITY")
	assert.Contains(t, set.HotelLink, "group_children=2")
	assert.Len(t, set.ServiceLinks, 4)
	assert.Len(t, set.ProtectionLinks, 4)
}
