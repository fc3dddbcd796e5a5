package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/velorashop/backoffice/internal/domain"
	"github.com/velorashop/backoffice/pkg/errors"
)

// Fetcher provides bulk reads from the storefront API. Satisfied by
// storeapi.Client; faked in tests.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	FetchOrders(ctx context.Context) ([]domain.Order, error)
	FetchCustomers(ctx context.Context) ([]domain.Customer, error)
	FetchBanners(ctx context.Context) ([]domain.Banner, error)
	FetchReviews(ctx context.Context) ([]domain.Review, error)
}

// EntityStore holds the in-memory mirror of the storefront collections.
// Refresh replaces a collection wholesale; the scoped mutators apply
// single-entity changes after a successful remote write. A failed remote
// call never touches the local collections.
//
// Collections are guarded by an RWMutex because the server runs a
// background refresh loop beside the request handlers. Readers always get
// copies, never a view into a collection mid-replace.
type EntityStore struct {
	mu      sync.RWMutex
	fetcher Fetcher
	logger  *zap.Logger

	products  []domain.Product
	orders    []domain.Order
	customers []domain.Customer
	banners   []domain.Banner
	reviews   []domain.Review
}

// New creates an empty entity store backed by the given fetcher
func New(fetcher Fetcher, logger *zap.Logger) *EntityStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntityStore{fetcher: fetcher, logger: logger}
}

// Refresh replaces one collection from the storefront snapshot. On fetch
// failure the collection is left unchanged and the error is returned for
// the caller to retry.
func (s *EntityStore) Refresh(ctx context.Context, kind domain.EntityKind) error {
	switch kind {
	case domain.KindProducts:
		products, err := s.fetcher.FetchProducts(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.products = products
		s.mu.Unlock()
	case domain.KindOrders:
		orders, err := s.fetcher.FetchOrders(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.orders = orders
		s.mu.Unlock()
	case domain.KindCustomers:
		customers, err := s.fetcher.FetchCustomers(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.customers = customers
		s.mu.Unlock()
	case domain.KindBanners:
		banners, err := s.fetcher.FetchBanners(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.banners = banners
		s.mu.Unlock()
	case domain.KindReviews:
		reviews, err := s.fetcher.FetchReviews(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.reviews = reviews
		s.mu.Unlock()
	default:
		return &errors.ErrValidation{Message: "unknown entity kind: " + string(kind)}
	}
	return nil
}

// RefreshAll refreshes every collection, continuing past individual
// failures and returning the first error encountered.
func (s *EntityStore) RefreshAll(ctx context.Context) error {
	var first error
	for _, kind := range []domain.EntityKind{
		domain.KindProducts,
		domain.KindOrders,
		domain.KindCustomers,
		domain.KindBanners,
		domain.KindReviews,
	} {
		if err := s.Refresh(ctx, kind); err != nil {
			s.logger.Warn("Collection refresh failed",
				zap.String("kind", string(kind)), zap.Error(err))
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// Products returns a copy of the product collection
func (s *EntityStore) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Orders returns a copy of the order collection
func (s *EntityStore) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Customers returns a copy of the customer collection
func (s *EntityStore) Customers() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Banners returns a copy of the banner collection
func (s *EntityStore) Banners() []domain.Banner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Banner, len(s.banners))
	copy(out, s.banners)
	return out
}

// Reviews returns a copy of the review collection
func (s *EntityStore) Reviews() []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

// ProductByID looks up a product by id
func (s *EntityStore) ProductByID(id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "product", ID: id}
}

// OrderByID looks up an order by id or by its human-facing order number
func (s *EntityStore) OrderByID(id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.orders {
		if s.orders[i].ID == id || s.orders[i].OrderID == id {
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "order", ID: id}
}

// AddProduct appends a newly created product
func (s *EntityStore) AddProduct(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
}

// ReplaceProductByID replaces the product with a matching id. A no-op when
// the id is absent, tolerating races with a concurrent refresh.
func (s *EntityStore) ReplaceProductByID(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return
		}
	}
}

// RemoveProductByID removes the product with a matching id; no-op if absent
func (s *EntityStore) RemoveProductByID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

// ReplaceOrderByID replaces the order with a matching id; no-op if absent
func (s *EntityStore) ReplaceOrderByID(o domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == o.ID {
			s.orders[i] = o
			return
		}
	}
}

// AddBanner appends a newly created banner
func (s *EntityStore) AddBanner(b domain.Banner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.banners = append(s.banners, b)
}

// ReplaceBannerByID replaces the banner with a matching id; no-op if absent
func (s *EntityStore) ReplaceBannerByID(b domain.Banner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.banners {
		if s.banners[i].ID == b.ID {
			s.banners[i] = b
			return
		}
	}
}

// RemoveBannerByID removes the banner with a matching id; no-op if absent
func (s *EntityStore) RemoveBannerByID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.banners {
		if s.banners[i].ID == id {
			s.banners = append(s.banners[:i], s.banners[i+1:]...)
			return
		}
	}
}

// RemoveReviewByID removes the review with a matching id; no-op if absent
func (s *EntityStore) RemoveReviewByID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reviews {
		if s.reviews[i].ID == id {
			s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
			return
		}
	}
}
