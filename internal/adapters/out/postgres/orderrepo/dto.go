// Package orderrepo persists order aggregates with GORM. It maps orders to
// the "orders" table and guards every update with the status the order was
// loaded in.
package orderrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
)

// OrderDTO is the row of the "orders" table. Lifecycle flags are stored as
// NULL until set, so that the list filter can test them with IS NULL.
type OrderDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Product     string `gorm:"size:150;not null"`
	Quantity    int    `gorm:"not null"`
	DelivererID int64  `gorm:"not null;index"`
	RecipientID int64  `gorm:"not null;index"`
	SignatureID *int64
	StartDate   *time.Time
	Started     *bool
	EndDate     *time.Time
	Ended       *bool
	CanceledAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// mutableColumns are the columns an update may change.
var mutableColumns = []string{
	"product",
	"signature_id",
	"start_date",
	"started",
	"end_date",
	"ended",
	"canceled_at",
	"updated_at",
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		Product:     o.Product(),
		Quantity:    o.Quantity(),
		DelivererID: o.DelivererID().Value(),
		RecipientID: o.RecipientID().Value(),
		StartDate:   o.StartDate(),
		Started:     flag(o.Started()),
		EndDate:     o.EndDate(),
		Ended:       flag(o.Ended()),
		CanceledAt:  o.CanceledAt(),
		CreatedAt:   o.CreatedAt(),
	}
	if !o.ID().IsZero() {
		dto.ID = o.ID().Value()
	}
	if sig := o.SignatureID(); sig != nil {
		v := sig.Value()
		dto.SignatureID = &v
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	delivererID, err := kernel.NewID(dto.DelivererID)
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.NewID(dto.RecipientID)
	if err != nil {
		return nil, err
	}

	var signatureID *kernel.ID
	if dto.SignatureID != nil {
		sig, sigErr := kernel.NewID(*dto.SignatureID)
		if sigErr != nil {
			return nil, sigErr
		}
		signatureID = &sig
	}

	return order.RestoreOrder(order.Snapshot{
		ID:          id,
		Product:     dto.Product,
		Quantity:    dto.Quantity,
		DelivererID: delivererID,
		RecipientID: recipientID,
		CreatedAt:   dto.CreatedAt,
		StartDate:   dto.StartDate,
		Started:     dto.Started,
		EndDate:     dto.EndDate,
		Ended:       dto.Ended,
		CanceledAt:  dto.CanceledAt,
		SignatureID: signatureID,
	})
}

// flag maps false to NULL.
func flag(set bool) *bool {
	if !set {
		return nil
	}
	return &set
}
