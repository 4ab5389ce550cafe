package rest

import (
	"context"
	"net/http"

	"dataMarket/domain"
	"dataMarket/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	OrdersHandler struct {
		ordersService OrdersService
	}

	OrdersService interface {
		GetPurchaseHistory(ctx context.Context, consumerID uint) ([]domain.PurchaseHistoryItem, error)
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		ordersService: ordersService,
	}
}

// GET /api/v1/orders
func (h *OrdersHandler) GetPurchaseHistory(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	items, err := h.ordersService.GetPurchaseHistory(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to get purchase history", err, "user_id", userID)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to get orders"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(items))
}
