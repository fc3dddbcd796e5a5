package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velorashop/backoffice/internal/domain"
	"github.com/velorashop/backoffice/internal/service"
	"github.com/velorashop/backoffice/internal/store"
	"github.com/velorashop/backoffice/internal/storeapi"
)

// UpdateOrderStatusRequest represents a status change request
type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

// HandleListOrders handles GET /v1/admin/orders with an optional ?status= filter
func HandleListOrders(entities *store.EntityStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := entities.Orders()

		if statusParam := c.Query("status"); statusParam != "" {
			status := domain.OrderStatus(statusParam)
			if !status.IsValid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status: " + statusParam})
				return
			}
			filtered := make([]domain.Order, 0, len(orders))
			for _, o := range orders {
				if o.OrderStatus == status {
					filtered = append(filtered, o)
				}
			}
			orders = filtered
		}

		c.JSON(http.StatusOK, gin.H{
			"orders": orders,
			"count":  len(orders),
		})
	}
}

// HandleGetOrder handles GET /v1/admin/orders/:id (id or order number)
func HandleGetOrder(entities *store.EntityStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := entities.OrderByID(c.Param("id"))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// HandleUpdateOrderStatus handles PATCH /v1/admin/orders/:id/status
func HandleUpdateOrderStatus(entities *store.EntityStore, client *storeapi.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		orderService := service.NewOrderService(entities, client, logger)
		updated, err := orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":     updated.ID,
			"status": updated.OrderStatus,
		})
	}
}
