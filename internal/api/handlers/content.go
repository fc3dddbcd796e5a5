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

// BannerRequest represents a banner create/update request
type BannerRequest struct {
	Title    string `json:"title" binding:"required"`
	ImageURL string `json:"imageUrl" binding:"required"`
	Link     string `json:"link"`
	IsActive bool   `json:"isActive"`
}

// HandleListBanners handles GET /v1/admin/banners
func HandleListBanners(entities *store.EntityStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		banners := entities.Banners()
		c.JSON(http.StatusOK, gin.H{
			"banners": banners,
			"count":   len(banners),
		})
	}
}

// HandleCreateBanner handles POST /v1/admin/banners
func HandleCreateBanner(entities *store.EntityStore, client *storeapi.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BannerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		contentService := service.NewContentService(entities, client, logger)
		created, err := contentService.CreateBanner(c.Request.Context(), &domain.Banner{
			Title:    req.Title,
			ImageURL: req.ImageURL,
			Link:     req.Link,
			IsActive: req.IsActive,
		})
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// HandleUpdateBanner handles PUT /v1/admin/banners/:id
func HandleUpdateBanner(entities *store.EntityStore, client *storeapi.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BannerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		contentService := service.NewContentService(entities, client, logger)
		updated, err := contentService.UpdateBanner(c.Request.Context(), &domain.Banner{
			ID:       c.Param("id"),
			Title:    req.Title,
			ImageURL: req.ImageURL,
			Link:     req.Link,
			IsActive: req.IsActive,
		})
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// HandleDeleteBanner handles DELETE /v1/admin/banners/:id
func HandleDeleteBanner(entities *store.EntityStore, client *storeapi.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		contentService := service.NewContentService(entities, client, logger)
		if err := contentService.DeleteBanner(c.Request.Context(), id); err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}

// HandleListReviews handles GET /v1/admin/reviews with an optional ?product= filter
func HandleListReviews(entities *store.EntityStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews := entities.Reviews()

		if productID := c.Query("product"); productID != "" {
			filtered := make([]domain.Review, 0, len(reviews))
			for _, r := range reviews {
				if r.ProductID == productID {
					filtered = append(filtered, r)
				}
			}
			reviews = filtered
		}

		c.JSON(http.StatusOK, gin.H{
			"reviews": reviews,
			"count":   len(reviews),
		})
	}
}

// HandleDeleteReview handles DELETE /v1/admin/reviews/:id
func HandleDeleteReview(entities *store.EntityStore, client *storeapi.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		contentService := service.NewContentService(entities, client, logger)
		if err := contentService.DeleteReview(c.Request.Context(), id); err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}
