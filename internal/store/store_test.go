package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velorashop/backoffice/internal/domain"
)

// fakeFetcher serves canned collections and per-kind errors
type fakeFetcher struct {
	products    []domain.Product
	orders      []domain.Order
	customers   []domain.Customer
	banners     []domain.Banner
	reviews     []domain.Review
	productsErr error
	ordersErr   error
}

func (f *fakeFetcher) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	return f.products, f.productsErr
}

func (f *fakeFetcher) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	return f.orders, f.ordersErr
}

func (f *fakeFetcher) FetchCustomers(ctx context.Context) ([]domain.Customer, error) {
	return f.customers, nil
}

func (f *fakeFetcher) FetchBanners(ctx context.Context) ([]domain.Banner, error) {
	return f.banners, nil
}

func (f *fakeFetcher) FetchReviews(ctx context.Context) ([]domain.Review, error) {
	return f.reviews, nil
}

func TestRefresh_ReplacesCollectionWholesale(t *testing.T) {
	fetcher := &fakeFetcher{products: []domain.Product{{ID: "p1"}, {ID: "p2"}}}
	s := New(fetcher, nil)

	require.NoError(t, s.Refresh(context.Background(), domain.KindProducts))
	assert.Len(t, s.Products(), 2)

	// A later snapshot fully replaces the earlier one, not a merge
	fetcher.products = []domain.Product{{ID: "p3"}}
	require.NoError(t, s.Refresh(context.Background(), domain.KindProducts))

	got := s.Products()
	require.Len(t, got, 1)
	assert.Equal(t, "p3", got[0].ID)
}

func TestRefresh_FailureLeavesCollectionUntouched(t *testing.T) {
	fetcher := &fakeFetcher{orders: []domain.Order{{ID: "o1"}}}
	s := New(fetcher, nil)
	require.NoError(t, s.Refresh(context.Background(), domain.KindOrders))

	fetcher.ordersErr = errors.New("storefront down")
	err := s.Refresh(context.Background(), domain.KindOrders)
	require.Error(t, err)

	got := s.Orders()
	require.Len(t, got, 1)
	assert.Equal(t, "o1", got[0].ID)
}

func TestRefreshAll_ContinuesPastFailures(t *testing.T) {
	fetcher := &fakeFetcher{
		productsErr: errors.New("products down"),
		orders:      []domain.Order{{ID: "o1"}},
		banners:     []domain.Banner{{ID: "b1"}},
	}
	s := New(fetcher, nil)

	err := s.RefreshAll(context.Background())
	require.Error(t, err)

	// The failing collection stays empty; the others still refreshed
	assert.Empty(t, s.Products())
	assert.Len(t, s.Orders(), 1)
	assert.Len(t, s.Banners(), 1)
}

func TestReplaceAndRemove_NoopWhenAbsent(t *testing.T) {
	fetcher := &fakeFetcher{products: []domain.Product{{ID: "p1", Title: "one"}}}
	s := New(fetcher, nil)
	require.NoError(t, s.Refresh(context.Background(), domain.KindProducts))

	s.ReplaceProductByID(domain.Product{ID: "ghost", Title: "nope"})
	s.RemoveProductByID("ghost")
	s.ReplaceOrderByID(domain.Order{ID: "ghost"})

	got := s.Products()
	require.Len(t, got, 1)
	assert.Equal(t, "one", got[0].Title)
	assert.Empty(t, s.Orders())
}

func TestReplaceProductByID_ReplacesInPlace(t *testing.T) {
	fetcher := &fakeFetcher{products: []domain.Product{{ID: "p1"}, {ID: "p2"}}}
	s := New(fetcher, nil)
	require.NoError(t, s.Refresh(context.Background(), domain.KindProducts))

	s.ReplaceProductByID(domain.Product{ID: "p1", Title: "updated"})

	got := s.Products()
	require.Len(t, got, 2)
	assert.Equal(t, "updated", got[0].Title, "position preserved")
}

func TestSnapshots_AreCopies(t *testing.T) {
	fetcher := &fakeFetcher{products: []domain.Product{{ID: "p1", Title: "original"}}}
	s := New(fetcher, nil)
	require.NoError(t, s.Refresh(context.Background(), domain.KindProducts))

	snapshot := s.Products()
	snapshot[0].Title = "mutated"

	assert.Equal(t, "original", s.Products()[0].Title)
}

func TestOrderByID_MatchesIDOrOrderNumber(t *testing.T) {
	fetcher := &fakeFetcher{orders: []domain.Order{{ID: "abc123", OrderID: "ORD-42"}}}
	s := New(fetcher, nil)
	require.NoError(t, s.Refresh(context.Background(), domain.KindOrders))

	byID, err := s.OrderByID("abc123")
	require.NoError(t, err)
	byNumber, err := s.OrderByID("ORD-42")
	require.NoError(t, err)
	assert.Equal(t, byID.ID, byNumber.ID)

	_, err = s.OrderByID("missing")
	assert.Error(t, err)
}
