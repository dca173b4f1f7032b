package delivererrepo

import (
	"context"
	"errors"
	"fmt"

	"fastfeet/internal/core/domain/model/deliverer"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDelivererRepository implements DelivererRepository using GORM.
type GormDelivererRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

func NewGormDelivererRepository(db *gorm.DB, tracker aggregateTracker) *GormDelivererRepository {
	return &GormDelivererRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a deliverer and assigns it the generated ID.
func (r *GormDelivererRepository) Add(ctx context.Context, aggregate *deliverer.Deliverer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.ID().IsZero() {
		return deliverer.ErrDelivererAlreadyIdentified
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("insert deliverer: %w", err)
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.AssignID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormDelivererRepository) Get(ctx context.Context, id kernel.ID) (*deliverer.Deliverer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DelivererDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliverer", id.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}
