// Package delivererrepo persists deliverers with GORM.
package delivererrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/deliverer"
	"fastfeet/internal/core/domain/model/kernel"
)

// DelivererDTO is the row of the "deliverers" table.
type DelivererDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`
	Email     string `gorm:"size:150;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DelivererDTO) TableName() string {
	return "deliverers"
}

func fromDomain(d *deliverer.Deliverer) DelivererDTO {
	dto := DelivererDTO{
		FirstName: d.FirstName(),
		LastName:  d.LastName(),
		Email:     d.Email(),
	}
	if !d.ID().IsZero() {
		dto.ID = d.ID().Value()
	}
	return dto
}

func toDomain(dto DelivererDTO) (*deliverer.Deliverer, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	return deliverer.RestoreDeliverer(id, dto.FirstName, dto.LastName, dto.Email)
}
