package controllers

import (
	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type GuideController struct {
	guideService services.GuideServiceInterface
}

func NewGuideController(guideService services.GuideServiceInterface) *GuideController {
	return &GuideController{
		guideService: guideService,
	}
}

// POST /api/guide
func (g *GuideController) GenerateGuideHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidTripRequest)
		return
	}
	if err := req.Validate(); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result := g.guideService.GenerateGuide(c.Request.Context(), req)
	utils.RespondSuccess(c, result, "Guide generated")
}
