package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velstore/storefront/internal/api/middleware"
	"github.com/velstore/storefront/internal/order"
)

// PlaceOrderResponse is the successful order payload.
type PlaceOrderResponse struct {
	OrderID string `json:"order_id"`
	Count   int    `json:"count"`
	Notice  bool   `json:"notice"`
}

// HandlePlaceOrder handles POST /v1/orders
func HandlePlaceOrder(orders *order.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionCart, ok := middleware.GetCartFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no cart session"})
			return
		}

		receipt, err := orders.Place(c.Request.Context(), sessionCart)
		if err != nil {
			switch {
			case errors.Is(err, order.ErrEmptyCart):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cart is empty"})
			case errors.Is(err, order.ErrInFlight):
				c.JSON(http.StatusConflict, gin.H{"error": "order submission already in flight"})
			default:
				logger.Error("order placement failed", zap.Error(err))
				c.JSON(http.StatusBadGateway, gin.H{"error": "failed to place order"})
			}
			return
		}

		c.JSON(http.StatusOK, PlaceOrderResponse{
			OrderID: receipt.ID,
			Count:   sessionCart.Count(),
			Notice:  orders.Notice().Active(),
		})
	}
}
