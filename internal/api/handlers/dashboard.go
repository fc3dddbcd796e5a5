package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velorashop/backoffice/internal/domain"
	"github.com/velorashop/backoffice/internal/metrics"
	"github.com/velorashop/backoffice/internal/pkg/clock"
	"github.com/velorashop/backoffice/internal/store"
)

// lowStockPreviewSize bounds the alert list shown on the dashboard card;
// the full count still ships so the card can say "and N more".
const lowStockPreviewSize = 3

// DashboardResponse is the admin dashboard payload
type DashboardResponse struct {
	TotalSales         domain.Money     `json:"totalSales"`
	SalesChangePct     int              `json:"salesChangePercent"`
	TotalOrders        int              `json:"totalOrders"`
	OrdersChangePct    int              `json:"ordersChangePercent"`
	ActiveProducts     int              `json:"activeProducts"`
	ProductsChangePct  int              `json:"productsChangePercent"`
	TotalCustomers     int              `json:"totalCustomers"`
	CustomersChangePct int              `json:"customersChangePercent"`
	LowStockCount      int              `json:"lowStockCount"`
	LowStockPreview    []domain.Product `json:"lowStockPreview"`
}

// HandleGetDashboard handles GET /v1/admin/dashboard
func HandleGetDashboard(entities *store.EntityStore, clk clock.Clock, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := metrics.Derive(entities.Orders(), entities.Products(), clk.Now())

		preview := snap.LowStock
		if len(preview) > lowStockPreviewSize {
			preview = preview[:lowStockPreviewSize]
		}

		c.JSON(http.StatusOK, DashboardResponse{
			TotalSales:         snap.TotalSales,
			SalesChangePct:     snap.SalesChangePct,
			TotalOrders:        snap.TotalOrders,
			OrdersChangePct:    snap.OrdersChangePct,
			ActiveProducts:     snap.ActiveProducts,
			ProductsChangePct:  snap.ProductsChangePct,
			TotalCustomers:     snap.TotalCustomers,
			CustomersChangePct: snap.CustomersChangePct,
			LowStockCount:      len(snap.LowStock),
			LowStockPreview:    preview,
		})
	}
}
