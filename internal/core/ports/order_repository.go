// Package ports defines the contracts between the order core and its
// infrastructure: persistence, the store/user directory and the notification sink.
package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderFilter narrows Find and FindEarliest. Nil fields do not constrain the result;
// From and To are inclusive.
type OrderFilter struct {
	CustomerID *kernel.UUID
	StoreID    *kernel.UUID
	Status     *order.Status
	From       *time.Time
	To         *time.Time
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. The order must be valid and not already stored.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns *errs.ObjectNotFoundError if absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Find returns the orders matching filter, newest first.
	Find(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// FindEarliest returns the oldest order matching filter.
	// Returns *errs.ObjectNotFoundError when nothing matches.
	FindEarliest(ctx context.Context, filter OrderFilter) (*order.Order, error)

	// UpdateDecision writes the status, delivery estimate and decision time of
	// aggregate, but only if the stored status still equals expected.
	//
	// Returns:
	//   - *errs.ObjectNotFoundError if the order no longer exists
	//   - *errs.InvalidStateError if another transition won the race
	//
	// Example:
	//   expected := o.Status()
	//   if err := o.Confirm("2 days", time.Now()); err != nil {
	//       return err
	//   }
	//   err := repo.UpdateDecision(ctx, o, expected)
	UpdateDecision(ctx context.Context, aggregate *order.Order, expected order.Status) error
}
