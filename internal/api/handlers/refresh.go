package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velorashop/backoffice/internal/service"
	"github.com/velorashop/backoffice/internal/store"
)

// HandleRefresh handles POST /v1/admin/refresh - on-demand refresh of all
// storefront collections. A failed fetch leaves the affected collection
// untouched and surfaces the storefront's error so the operator can retry.
func HandleRefresh(entities *store.EntityStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := service.RunRefreshOnce(c.Request.Context(), entities, logger); err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "refreshed"})
	}
}
