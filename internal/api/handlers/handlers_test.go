package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/velorashop/backoffice/internal/domain"
	"github.com/velorashop/backoffice/internal/pkg/clock"
	"github.com/velorashop/backoffice/internal/store"
	"github.com/velorashop/backoffice/pkg/errors"
)

type fakeFetcher struct {
	products []domain.Product
	orders   []domain.Order
	err      error // returned by every fetch when set
}

func (f *fakeFetcher) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

func (f *fakeFetcher) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	return f.orders, f.err
}

func (f *fakeFetcher) FetchCustomers(ctx context.Context) ([]domain.Customer, error) {
	return nil, f.err
}

func (f *fakeFetcher) FetchBanners(ctx context.Context) ([]domain.Banner, error) {
	return nil, f.err
}

func (f *fakeFetcher) FetchReviews(ctx context.Context) ([]domain.Review, error) {
	return nil, f.err
}

func newTestStore(t *testing.T, fetcher *fakeFetcher) *store.EntityStore {
	t.Helper()
	s := store.New(fetcher, nil)
	require.NoError(t, s.RefreshAll(context.Background()))
	return s
}

func TestHandleGetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)

	fetcher := &fakeFetcher{
		orders: []domain.Order{{
			ID:            "o1",
			UserID:        "u1",
			TotalAmount:   domain.NewMoney(1000),
			PaymentStatus: domain.PaymentStatusCompleted,
			IsPaid:        true,
			CreatedAt:     thisMonth,
		}},
		products: []domain.Product{
			{ID: "p1", Status: domain.ProductStatusActive, AvailableQuantity: 2, CreatedAt: thisMonth},
			{ID: "p2", Status: domain.ProductStatusActive, AvailableQuantity: 4, CreatedAt: thisMonth},
			{ID: "p3", Status: domain.ProductStatusActive, AvailableQuantity: 6, CreatedAt: thisMonth},
			{ID: "p4", Status: domain.ProductStatusActive, AvailableQuantity: 8, CreatedAt: thisMonth},
		},
	}
	s := newTestStore(t, fetcher)

	router := gin.New()
	router.GET("/dashboard", HandleGetDashboard(s, clock.NewFake(now), zap.NewNop()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalSales         json.Number      `json:"totalSales"`
		SalesChangePct     int              `json:"salesChangePercent"`
		TotalOrders        int              `json:"totalOrders"`
		TotalCustomers     int              `json:"totalCustomers"`
		LowStockCount      int              `json:"lowStockCount"`
		LowStockPreview    []domain.Product `json:"lowStockPreview"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, json.Number("1000.00"), resp.TotalSales)
	assert.Equal(t, 100, resp.SalesChangePct)
	assert.Equal(t, 1, resp.TotalOrders)
	assert.Equal(t, 1, resp.TotalCustomers)
	assert.Equal(t, 4, resp.LowStockCount)
	assert.Len(t, resp.LowStockPreview, 3, "preview truncated to 3")
}

func TestHandleListProducts_QueryFacets(t *testing.T) {
	gin.SetMode(gin.TestMode)

	fetcher := &fakeFetcher{products: []domain.Product{
		{ID: "p1", Title: "Silk Saree", SellingPrice: domain.NewMoney(4999),
			Filter: domain.ProductFilter{Material: "Silk", Color: "Red"}},
		{ID: "p2", Title: "Cotton Saree", SellingPrice: domain.NewMoney(1299),
			Filter: domain.ProductFilter{Material: "Cotton", Color: "Blue"}},
	}}
	s := newTestStore(t, fetcher)

	router := gin.New()
	router.GET("/products", HandleListProducts(s, zap.NewNop()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?materials=Silk&colors=Red", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []domain.Product `json:"products"`
		Count    int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "p1", resp.Products[0].ID)
}

func TestHandleListProducts_RejectsHalfOpenPriceRange(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newTestStore(t, &fakeFetcher{})

	router := gin.New()
	router.GET("/products", HandleListProducts(s, zap.NewNop()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?min_price=100", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandleRefresh_SurfacesStorefrontFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	fetcher := &fakeFetcher{
		orders: []domain.Order{{ID: "o1"}},
	}
	s := newTestStore(t, fetcher)

	// Storefront goes down after the initial load; a refresh must report
	// the failure instead of pretending success
	fetcher.err = &errors.ErrRemote{StatusCode: http.StatusServiceUnavailable, Message: "storefront down"}

	router := gin.New()
	router.POST("/refresh", HandleRefresh(s, zap.NewNop()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "storefront down")

	// The collections loaded before the outage are untouched
	assert.Len(t, s.Orders(), 1)
}

func TestHandleRefresh_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	fetcher := &fakeFetcher{}
	s := newTestStore(t, fetcher)
	fetcher.orders = []domain.Order{{ID: "o1"}}

	router := gin.New()
	router.POST("/refresh", HandleRefresh(s, zap.NewNop()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "refreshed")
	assert.Len(t, s.Orders(), 1)
}

func TestHandleGetCustomerOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	fetcher := &fakeFetcher{orders: []domain.Order{
		{ID: "o1", UserID: "u1"},
		{ID: "o2", UserID: "u2"},
		{ID: "o3", UserID: "u1"},
	}}
	s := newTestStore(t, fetcher)

	router := gin.New()
	router.GET("/customers/:ref/orders", HandleGetCustomerOrders(s, zap.NewNop()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/customers/u1/orders", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}
