package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/velorashop/backoffice/internal/domain"
	"github.com/velorashop/backoffice/internal/store"
)

// ContentPersister persists banner and review changes at the storefront.
// Satisfied by storeapi.Client.
type ContentPersister interface {
	CreateBanner(ctx context.Context, b *domain.Banner) (*domain.Banner, error)
	UpdateBanner(ctx context.Context, b *domain.Banner) (*domain.Banner, error)
	DeleteBanner(ctx context.Context, id string) error
	DeleteReview(ctx context.Context, id string) error
}

type contentService struct {
	store  *store.EntityStore
	client ContentPersister
	logger *zap.Logger
}

// NewContentService creates a new content service for banners and reviews
func NewContentService(entities *store.EntityStore, client ContentPersister, logger *zap.Logger) *contentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &contentService{
		store:  entities,
		client: client,
		logger: logger,
	}
}

// CreateBanner persists a new banner and applies it locally
func (s *contentService) CreateBanner(ctx context.Context, b *domain.Banner) (*domain.Banner, error) {
	created, err := s.client.CreateBanner(ctx, b)
	if err != nil {
		return nil, err
	}
	if created == nil {
		if err := s.store.Refresh(ctx, domain.KindBanners); err != nil {
			return nil, err
		}
		return b, nil
	}
	s.store.AddBanner(*created)
	return created, nil
}

// UpdateBanner persists banner changes and replaces the local copy by id
func (s *contentService) UpdateBanner(ctx context.Context, b *domain.Banner) (*domain.Banner, error) {
	updated, err := s.client.UpdateBanner(ctx, b)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		if err := s.store.Refresh(ctx, domain.KindBanners); err != nil {
			return nil, err
		}
		return b, nil
	}
	s.store.ReplaceBannerByID(*updated)
	return updated, nil
}

// DeleteBanner removes a banner remotely, then locally
func (s *contentService) DeleteBanner(ctx context.Context, id string) error {
	if err := s.client.DeleteBanner(ctx, id); err != nil {
		return err
	}
	s.store.RemoveBannerByID(id)
	return nil
}

// DeleteReview removes a review remotely, then locally
func (s *contentService) DeleteReview(ctx context.Context, id string) error {
	if err := s.client.DeleteReview(ctx, id); err != nil {
		return err
	}
	s.store.RemoveReviewByID(id)
	return nil
}
