package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velorashop/backoffice/internal/domain"
	"github.com/velorashop/backoffice/internal/store"
)

// CustomerSummary is a customer row enriched with order aggregates derived
// from the order collection. TotalSpent counts completed orders only,
// matching the sales metric.
type CustomerSummary struct {
	domain.Customer
	OrderCount int          `json:"orderCount"`
	TotalSpent domain.Money `json:"totalSpent"`
}

// HandleListCustomers handles GET /v1/admin/customers
func HandleListCustomers(entities *store.EntityStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		customers := entities.Customers()
		orders := entities.Orders()

		counts := make(map[string]int)
		spent := make(map[string]domain.Money)
		for i := range orders {
			o := &orders[i]
			if o.UserID == "" {
				continue
			}
			counts[o.UserID]++
			if o.IsCompleted() {
				spent[o.UserID] = spent[o.UserID].Add(o.TotalAmount)
			}
		}

		summaries := make([]CustomerSummary, len(customers))
		for i, cust := range customers {
			summaries[i] = CustomerSummary{
				Customer:   cust,
				OrderCount: counts[cust.ID],
				TotalSpent: spent[cust.ID],
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"customers": summaries,
			"count":     len(summaries),
		})
	}
}

// HandleGetCustomerOrders handles GET /v1/admin/customers/:ref/orders
func HandleGetCustomerOrders(entities *store.EntityStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("ref")
		orders := entities.Orders()

		owned := make([]domain.Order, 0)
		for _, o := range orders {
			if o.UserID == ref {
				owned = append(owned, o)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"orders": owned,
			"count":  len(owned),
		})
	}
}
