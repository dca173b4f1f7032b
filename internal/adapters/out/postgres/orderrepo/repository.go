package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order and assigns it the ID generated by the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.ID().IsZero() {
		return order.ErrOrderAlreadyIdentified
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.AssignID(id); err != nil {
		return err
	}
	aggregate.MarkPersisted()

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update writes the order only if its row still matches the status the
// order was loaded in. A row that moved on in the meantime yields an
// errs.ConcurrentModificationError and nothing is written.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ID().IsZero() {
		return errs.NewValueIsRequiredError("order id")
	}

	dto := fromDomain(aggregate)
	query := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID)
	query = whereFilter(query, order.FilterFor(aggregate.PersistedStatus()))

	result := query.Select(mutableColumns).Updates(&dto)
	if result.Error != nil {
		return fmt.Errorf("update order: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return r.missingRowError(ctx, aggregate.ID())
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}

// missingRowError tells a deleted row from one whose status changed.
func (r *GormOrderRepository) missingRowError(ctx context.Context, id kernel.ID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Value()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", id.Value())
	}
	return errs.NewConcurrentModificationError("order", id.Value())
}

func whereFilter(db *gorm.DB, f order.Filter) *gorm.DB {
	for _, c := range f.Conditions() {
		switch c.Presence {
		case order.IsNull:
			db = db.Where(c.Column + " IS NULL")
		case order.IsNotNull:
			db = db.Where(c.Column + " IS NOT NULL")
		}
	}
	return db
}
