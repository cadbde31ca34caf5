package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/storefront-catalog-service/pkg/response"
)

// Pinger is the minimal contract I need from a repository to check readiness.
// I keep it local to the handler package to avoid coupling and simplify tests.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler exposes liveness and readiness endpoints.
type HealthHandler struct {
	repo Pinger
	log  zerolog.Logger
}

func NewHealthHandler(repo Pinger, logger zerolog.Logger) *HealthHandler {
	l := logger.With().Str("module", "http").Str("component", "health").Logger()
	return &HealthHandler{repo: repo, log: l}
}

type healthStatus struct {
	Status string `json:"status"`
}

// Liveness responds OK if the process is up; it doesn't check dependencies.
func (h *HealthHandler) Liveness(c *gin.Context) {
	response.WriteData(c, http.StatusOK, healthStatus{Status: "alive"})
}

// Readiness verifies critical dependencies, currently just the database.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.repo.Ping(c.Request.Context()); err != nil {
		// the driver error stays in the log
		h.log.Warn().Err(err).Msg("readiness check failed")
		c.JSON(http.StatusServiceUnavailable, response.Failure[healthStatus]("dependency unavailable", healthStatus{Status: "unavailable"}))
		return
	}
	response.WriteData(c, http.StatusOK, healthStatus{Status: "ready"})
}
