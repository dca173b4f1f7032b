// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work, the mail transport and the order
// list cache.
package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add inserts a new order and assigns it the generated ID.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order back only if the stored row is still in the
	// status the order was loaded with. When it is not, Update returns an
	// errs.ErrConcurrentModification error and writes nothing.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)
}
