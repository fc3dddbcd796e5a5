package storeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velorashop/backoffice/internal/domain"
	"github.com/velorashop/backoffice/pkg/errors"
)

func TestFetchProducts_DecodesCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/products", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"_id":"p1","title":"Silk Saree","sellingPrice":4999,"availableQuantity":5,"status":"active",
			 "filter":{"material":"Silk","color":"Red","occasion":["Wedding"]}},
			{"_id":"p2","title":"Cotton Saree","sellingPrice":"1299.00","status":"draft"}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", nil)
	products, err := client.FetchProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "4999.00", products[0].SellingPrice.String())
	assert.Equal(t, "Silk", products[0].Filter.Material)
	assert.Equal(t, "1299.00", products[1].SellingPrice.String())
	assert.Equal(t, domain.ProductStatusDraft, products[1].Status)
}

func TestFetch_ExtractsUpstreamErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"store under maintenance"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", nil)
	_, err := client.FetchOrders(context.Background())

	var remoteErr *errors.ErrRemote
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusServiceUnavailable, remoteErr.StatusCode)
	assert.Equal(t, "store under maintenance", remoteErr.Error())
}

func TestFetch_GenericMessageWhenBodyUnreadable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>nginx</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", nil)
	_, err := client.FetchOrders(context.Background())

	var remoteErr *errors.ErrRemote
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "storefront API returned 502", remoteErr.Error())
}

func TestUpdateOrderStatus_SendsPatchWithIdempotencyKey(t *testing.T) {
	var gotMethod, gotPath, gotKey string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotKey = r.Header.Get("Idempotency-Key")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id":"o1","orderId":"ORD-1","orderStatus":"shipped"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", nil)
	order, err := client.UpdateOrderStatus(context.Background(), "o1", domain.OrderStatusShipped)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/admin/orders/o1/status", gotPath)
	assert.NotEmpty(t, gotKey, "mutations carry an idempotency key")
	assert.Equal(t, "shipped", gotBody["orderStatus"])
	assert.Equal(t, domain.OrderStatusShipped, order.OrderStatus)
}

func TestUpdateOrderStatus_NoEchoReturnsNilOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", nil)
	order, err := client.UpdateOrderStatus(context.Background(), "o1", domain.OrderStatusShipped)

	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestDeleteProduct_PropagatesRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no such product"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", nil)
	err := client.DeleteProduct(context.Background(), "ghost")

	var remoteErr *errors.ErrRemote
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "no such product", remoteErr.Error())
}
