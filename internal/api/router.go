package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velorashop/backoffice/internal/api/handlers"
	"github.com/velorashop/backoffice/internal/config"
	"github.com/velorashop/backoffice/internal/pkg/clock"
	"github.com/velorashop/backoffice/internal/store"
	"github.com/velorashop/backoffice/internal/storeapi"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, entities *store.EntityStore, client *storeapi.Client, clk clock.Clock, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Velora Back Office API",
			"endpoints": []string{
				"GET /health",
				"GET /v1/admin/dashboard",
				"GET /v1/admin/products",
				"GET /v1/admin/orders",
				"PATCH /v1/admin/orders/:id/status",
				"GET /v1/admin/customers",
				"GET /v1/admin/banners",
				"GET /v1/admin/reviews",
				"POST /v1/admin/refresh",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		admin := v1.Group("/admin")
		{
			admin.GET("/dashboard", handlers.HandleGetDashboard(entities, clk, logger))

			admin.GET("/products", handlers.HandleListProducts(entities, logger))
			admin.POST("/products", handlers.HandleCreateProduct(entities, client, logger))
			admin.PUT("/products/:id", handlers.HandleUpdateProduct(entities, client, logger))
			admin.DELETE("/products/:id", handlers.HandleDeleteProduct(entities, client, logger))

			admin.GET("/orders", handlers.HandleListOrders(entities, logger))
			admin.GET("/orders/:id", handlers.HandleGetOrder(entities, logger))
			admin.PATCH("/orders/:id/status", handlers.HandleUpdateOrderStatus(entities, client, logger))

			admin.GET("/customers", handlers.HandleListCustomers(entities, logger))
			admin.GET("/customers/:ref/orders", handlers.HandleGetCustomerOrders(entities, logger))

			admin.GET("/banners", handlers.HandleListBanners(entities, logger))
			admin.POST("/banners", handlers.HandleCreateBanner(entities, client, logger))
			admin.PUT("/banners/:id", handlers.HandleUpdateBanner(entities, client, logger))
			admin.DELETE("/banners/:id", handlers.HandleDeleteBanner(entities, client, logger))

			admin.GET("/reviews", handlers.HandleListReviews(entities, logger))
			admin.DELETE("/reviews/:id", handlers.HandleDeleteReview(entities, client, logger))

			admin.POST("/refresh", handlers.HandleRefresh(entities, logger))
		}
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
