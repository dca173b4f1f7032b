package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/deliverer"
	"fastfeet/internal/core/domain/model/kernel"
)

// DelivererRepository defines the persistence contract for deliverers.
type DelivererRepository interface {
	// Add inserts a new deliverer and assigns it the generated ID.
	Add(ctx context.Context, aggregate *deliverer.Deliverer) error

	// Get loads a deliverer. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.ID) (*deliverer.Deliverer, error)
}
