package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubarena/rosterhub/internal/adapters/http/common"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	version string
	dbPing  func(ctx context.Context) error
}

// NewHealthHandler wires the handler. dbPing checks the database for the
// readiness probe.
func NewHealthHandler(version string, dbPing func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{version: version, dbPing: dbPing}
}

// Health serves GET /health: process is up.
func (h *HealthHandler) Health(c *gin.Context) {
	common.RespondSuccess(c, http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

// Ready serves GET /ready: process is up and the database answers.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.dbPing(c.Request.Context()); err != nil {
		common.RespondError(c, http.StatusServiceUnavailable, "database unavailable", nil)
		return
	}
	common.RespondSuccess(c, http.StatusOK, gin.H{"status": "ready"})
}
