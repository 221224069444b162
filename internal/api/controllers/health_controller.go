package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"voyago/internal/config"
	"voyago/pkg/utils"
)

type HealthController struct {
	cfg       *config.Config
	startedAt time.Time
}

func NewHealthController(cfg *config.Config) *HealthController {
	return &HealthController{
		cfg:       cfg,
		startedAt: time.Now(),
	}
}

// GET /
func (h *HealthController) StatusHandler(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"service":     "voyago",
		"environment": h.cfg.Env,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      time.Since(h.startedAt).Round(time.Second).String(),
	}, "Voyago is running")
}

// GET /ping serves the keep-alive pinger and external uptime checks.
func (h *HealthController) PingHandler(c *gin.Context) {
	c.String(200, "pong")
}
