package controllers

import (
	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type LinksController struct {
	linksService services.LinksServiceInterface
}

func NewLinksController(linksService services.LinksServiceInterface) *LinksController {
	return &LinksController{
		linksService: linksService,
	}
}

// POST /api/links
func (l *LinksController) BuildLinksHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidTripRequest)
		return
	}
	if err := req.Validate(); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	links := l.linksService.BuildAll(req)
	utils.RespondSuccess(c, links, "Links built")
}
