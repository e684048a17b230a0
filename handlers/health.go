package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler checks the health status of the service
// @Summary      Health check
// @Description  Reports that the server is up and how many dialects are registered
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "Service health status"
// @Router       /health [get]
func (h *Handlers) HealthHandler(c *gin.Context) {
	status := gin.H{
		"status":     "healthy",
		"ai_service": "ready",
		"dialects":   len(h.sqlService.Registry().Keys()),
	}

	c.JSON(http.StatusOK, status)
}
