package rest

import (
	"context"
	"net/http"
	"time"

	"dataMarket/pkg/logger"

	"github.com/labstack/echo/v4"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	version string
}

func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		version: version,
	}
}

// GET /healthz
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.Warn("health check failed", err)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"status":  "unavailable",
			"version": h.version,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "ok",
		"version": h.version,
	})
}
