package rest

import (
	"context"
	"net/http"

	"dataMarket/business/recommendation"
	"dataMarket/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationConfigProvider interface {
		Config() recommendation.Config
	}

	SnapshotInvalidator interface {
		Invalidate(ctx context.Context) error
		InvalidateOrders(ctx context.Context) error
	}

	RecommendationAdminHandler struct {
		cfgProvider RecommendationConfigProvider
		cache       SnapshotInvalidator
	}
)

// cache may be nil when the snapshot cache is disabled.
func NewRecommendationAdminHandler(
	cfgProvider RecommendationConfigProvider,
	cache SnapshotInvalidator,
) *RecommendationAdminHandler {
	return &RecommendationAdminHandler{
		cfgProvider: cfgProvider,
		cache:       cache,
	}
}

// GET /api/v1/admin/recommendations/config
func (h *RecommendationAdminHandler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.cfgProvider.Config()))
}

// POST /api/v1/admin/recommendations/cache/invalidate?scope=all|orders
//
// scope=orders is the hook the checkout flow calls when an order is paid.
func (h *RecommendationAdminHandler) InvalidateCache(c echo.Context) error {
	scope := c.QueryParam("scope")
	if scope == "" {
		scope = "all"
	}

	var invalidate func(ctx context.Context) error
	switch scope {
	case "all":
		if h.cache != nil {
			invalidate = h.cache.Invalidate
		}
	case "orders":
		if h.cache != nil {
			invalidate = h.cache.InvalidateOrders
		}
	default:
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "scope must be all or orders"})
	}

	if invalidate == nil {
		return c.JSON(http.StatusOK, echo.Map{
			"status": "cache disabled",
		})
	}

	if err := invalidate(c.Request().Context()); err != nil {
		logger.Error("Failed to invalidate snapshot cache", err, "scope", scope)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to invalidate cache"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
		"scope":  scope,
	})
}
