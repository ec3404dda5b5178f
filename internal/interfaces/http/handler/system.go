package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler handles operational endpoints
type SystemHandler struct {
	BaseHandler
	appName string
	env     string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(appName, env string) *SystemHandler {
	return &SystemHandler{appName: appName, env: env}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health reports service liveness
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{
		"app":    h.appName,
		"env":    h.env,
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
