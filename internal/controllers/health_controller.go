package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/franciscosanchezn/edu-match/internal/models"
	"github.com/gin-gonic/gin"
)

const serviceName = "edu-match"

// Pinger reports whether a backing dependency is reachable
type Pinger func(ctx context.Context) error

// HealthController reports service liveness
type HealthController interface {
	// HealthCheck reports whether the service and its database are up
	HealthCheck(c *gin.Context)
}

type healthController struct {
	ping    Pinger
	timeout time.Duration
}

// NewHealthController creates a HealthController that probes the database through ping
func NewHealthController(ping Pinger) HealthController {
	return &healthController{ping: ping, timeout: 2 * time.Second}
}

// HealthCheck godoc
// @Summary Health check
// @Description Check if the service and its database are running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} models.APIError
// @Router /health [get]
func (h *healthController) HealthCheck(ctx *gin.Context) {
	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), h.timeout)
	defer cancel()

	if err := h.ping(reqCtx); err != nil {
		ctx.Error(err)
		ctx.JSON(http.StatusServiceUnavailable, models.NewAPIError(models.ErrServiceUnavailable,
			"Database unreachable", map[string]interface{}{"service": serviceName}))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	})
}
