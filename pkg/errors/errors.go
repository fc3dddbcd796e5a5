package errors

import (
	"fmt"

	"github.com/velorashop/backoffice/internal/domain"
)

// ErrNotFound is returned when an entity is not present in the store
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation is returned when a request fails validation
type ErrValidation struct {
	Message string
	Fields  map[string]string
}

func (e *ErrValidation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// ErrInvalidStateTransition is returned when an order status change
// violates the fulfillment state machine
type ErrInvalidStateTransition struct {
	From domain.OrderStatus
	To   domain.OrderStatus
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// ErrRemote is returned when the storefront API rejects or fails a call.
// Message carries the upstream error text when the response body had one.
type ErrRemote struct {
	StatusCode int
	Message    string
}

func (e *ErrRemote) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("storefront API returned %d", e.StatusCode)
	}
	return "storefront API request failed"
}
