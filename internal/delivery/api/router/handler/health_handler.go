package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"walkey/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports liveness together with database connectivity.
type HealthHandler struct {
	checker service.HealthChecker
	logger  *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(checker service.HealthChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{checker: checker, logger: logger}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Check handles GET /health.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.checker.Ping(ctx); err != nil {
		h.logger.Error("Database health check failed", slog.Any("error", err))

		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "error", Database: "disconnected"})
	}

	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Database: "connected"})
}
