package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/velorashop/backoffice/internal/domain"
	"github.com/velorashop/backoffice/internal/store"
	"github.com/velorashop/backoffice/pkg/errors"
)

// StatusPersister persists an order status change at the storefront.
// Satisfied by storeapi.Client.
type StatusPersister interface {
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)
}

type orderService struct {
	store  *store.EntityStore
	client StatusPersister
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(entities *store.EntityStore, client StatusPersister, logger *zap.Logger) *orderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &orderService{
		store:  entities,
		client: client,
		logger: logger,
	}
}

// UpdateStatus moves an order through the fulfillment state machine:
// pending -> processing -> shipped -> delivered, with cancellation allowed
// from any non-terminal state. The transition is validated before the
// remote call; on remote failure the local order is left untouched so a
// failed write never survives as an optimistic update. Setting the status
// an order already has is an idempotent success.
//
// The updated order is returned so callers holding a selected-order
// reference can refresh it.
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, newStatus domain.OrderStatus) (*domain.Order, error) {
	if !newStatus.IsValid() {
		return nil, &errors.ErrValidation{Message: "invalid order status: " + string(newStatus)}
	}

	order, err := s.store.OrderByID(orderID)
	if err != nil {
		return nil, err
	}

	// Already at the requested status - idempotent success
	if order.OrderStatus == newStatus {
		return order, nil
	}

	if !order.OrderStatus.CanTransitionTo(newStatus) {
		return nil, &errors.ErrInvalidStateTransition{
			From: order.OrderStatus,
			To:   newStatus,
		}
	}

	s.logger.Info("Updating order status",
		zap.String("order_id", order.ID),
		zap.String("from", string(order.OrderStatus)),
		zap.String("to", string(newStatus)),
	)

	updated, err := s.client.UpdateOrderStatus(ctx, order.ID, newStatus)
	if err != nil {
		s.logger.Error("Storefront rejected status update",
			zap.String("order_id", order.ID), zap.Error(err))
		return nil, err
	}

	if updated == nil {
		// Storefront accepted but did not echo the order; fall back to a
		// full collection refresh and re-read
		if err := s.store.Refresh(ctx, domain.KindOrders); err != nil {
			return nil, err
		}
		return s.store.OrderByID(order.ID)
	}

	s.store.ReplaceOrderByID(*updated)
	return updated, nil
}
