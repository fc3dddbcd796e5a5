package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/velorashop/backoffice/internal/domain"
	"github.com/velorashop/backoffice/internal/store"
)

// CatalogPersister persists product changes at the storefront.
// Satisfied by storeapi.Client.
type CatalogPersister interface {
	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type catalogService struct {
	store  *store.EntityStore
	client CatalogPersister
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(entities *store.EntityStore, client CatalogPersister, logger *zap.Logger) *catalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &catalogService{
		store:  entities,
		client: client,
		logger: logger,
	}
}

// CreateProduct persists a new product and applies it to the local store.
// When the storefront does not echo the created entity, the product
// collection is refreshed wholesale instead.
func (s *catalogService) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	created, err := s.client.CreateProduct(ctx, p)
	if err != nil {
		return nil, err
	}
	if created == nil {
		if err := s.store.Refresh(ctx, domain.KindProducts); err != nil {
			return nil, err
		}
		return p, nil
	}
	s.store.AddProduct(*created)
	return created, nil
}

// UpdateProduct persists product changes and replaces the local copy by id
func (s *catalogService) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	updated, err := s.client.UpdateProduct(ctx, p)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		if err := s.store.Refresh(ctx, domain.KindProducts); err != nil {
			return nil, err
		}
		return s.store.ProductByID(p.ID)
	}
	s.store.ReplaceProductByID(*updated)
	return updated, nil
}

// DeleteProduct removes a product remotely, then locally
func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.client.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.store.RemoveProductByID(id)
	return nil
}
