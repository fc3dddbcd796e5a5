package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velorashop/backoffice/internal/catalog"
	"github.com/velorashop/backoffice/internal/domain"
	"github.com/velorashop/backoffice/internal/service"
	"github.com/velorashop/backoffice/internal/store"
	"github.com/velorashop/backoffice/internal/storeapi"
	"github.com/velorashop/backoffice/pkg/errors"
)

// specFromQuery builds a filter spec from list-products query parameters:
// search, min_price, max_price, colors, materials, occasions (the set
// facets are comma-separated).
func specFromQuery(c *gin.Context) (catalog.Spec, error) {
	spec := catalog.Spec{
		SearchText: c.Query("search"),
		Colors:     splitCSV(c.Query("colors")),
		Materials:  splitCSV(c.Query("materials")),
		Occasions:  splitCSV(c.Query("occasions")),
	}

	minStr, maxStr := c.Query("min_price"), c.Query("max_price")
	if minStr == "" && maxStr == "" {
		return spec, nil
	}
	if minStr == "" || maxStr == "" {
		return spec, &errors.ErrValidation{Message: "min_price and max_price must be provided together"}
	}
	min, err := domain.NewMoneyFromDecimal(minStr)
	if err != nil {
		return spec, &errors.ErrValidation{Message: "invalid min_price"}
	}
	max, err := domain.NewMoneyFromDecimal(maxStr)
	if err != nil {
		return spec, &errors.ErrValidation{Message: "invalid max_price"}
	}
	if max.Cmp(min) < 0 {
		return spec, &errors.ErrValidation{Message: "max_price must not be below min_price"}
	}
	spec.PriceRange = &catalog.PriceRange{Min: min, Max: max}
	return spec, nil
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// HandleListProducts handles GET /v1/admin/products
func HandleListProducts(entities *store.EntityStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		spec, err := specFromQuery(c)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		products := catalog.Filter(entities.Products(), spec)
		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"count":    len(products),
		})
	}
}

// ProductRequest represents a product create/update request
type ProductRequest struct {
	Title             string               `json:"title" binding:"required"`
	Description       string               `json:"description"`
	SellingPrice      domain.Money         `json:"sellingPrice"`
	OriginalPrice     domain.Money         `json:"originalPrice"`
	AvailableQuantity int                  `json:"availableQuantity"`
	Status            domain.ProductStatus `json:"status"`
	Filter            domain.ProductFilter `json:"filter"`
	Images            []string             `json:"images"`
}

func (r *ProductRequest) toDomain(id string) *domain.Product {
	status := r.Status
	if status == "" {
		status = domain.ProductStatusDraft
	}
	return &domain.Product{
		ID:                id,
		Title:             r.Title,
		Description:       r.Description,
		SellingPrice:      r.SellingPrice,
		OriginalPrice:     r.OriginalPrice,
		AvailableQuantity: r.AvailableQuantity,
		Status:            status,
		Filter:            r.Filter,
		Images:            r.Images,
	}
}

// HandleCreateProduct handles POST /v1/admin/products
func HandleCreateProduct(entities *store.EntityStore, client *storeapi.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		catalogService := service.NewCatalogService(entities, client, logger)
		created, err := catalogService.CreateProduct(c.Request.Context(), req.toDomain(""))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// HandleUpdateProduct handles PUT /v1/admin/products/:id
func HandleUpdateProduct(entities *store.EntityStore, client *storeapi.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := entities.ProductByID(id); err != nil {
			writeError(c, logger, err)
			return
		}

		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		catalogService := service.NewCatalogService(entities, client, logger)
		updated, err := catalogService.UpdateProduct(c.Request.Context(), req.toDomain(id))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// HandleDeleteProduct handles DELETE /v1/admin/products/:id
func HandleDeleteProduct(entities *store.EntityStore, client *storeapi.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := entities.ProductByID(id); err != nil {
			writeError(c, logger, err)
			return
		}

		catalogService := service.NewCatalogService(entities, client, logger)
		if err := catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}
