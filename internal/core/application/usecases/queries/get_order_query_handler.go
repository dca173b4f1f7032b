package queries

import (
	"context"
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order. The stored row goes through
// order.RestoreOrder so that status, past and cancelable follow the same
// rules as the write side.
type GetOrderQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGetOrderQueryHandler(db *gorm.DB, clock kernel.Clock) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, clock: clock}
}

const orderColumns = "id, product, quantity, deliverer_id, recipient_id, signature_id, created_at, start_date, started, end_date, ended, canceled_at"

type orderRow struct {
	ID          int64
	Product     string
	Quantity    int
	DelivererID int64
	RecipientID int64
	SignatureID *int64
	CreatedAt   time.Time
	StartDate   *time.Time
	Started     *bool
	EndDate     *time.Time
	Ended       *bool
	CanceledAt  *time.Time
}

// Handle returns an errs.ObjectNotFoundError for an unknown ID.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Select(orderColumns).
		Where("id = ?", query.OrderID().Value()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().Value())
		}
		return GetOrderQueryResponse{}, err
	}

	o, err := restore(row)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	now := h.clock.Now()
	return GetOrderQueryResponse{
		ID:          row.ID,
		Product:     row.Product,
		Quantity:    row.Quantity,
		DelivererID: row.DelivererID,
		RecipientID: row.RecipientID,
		SignatureID: row.SignatureID,
		CreatedAt:   row.CreatedAt,
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
		CanceledAt:  row.CanceledAt,
		Status:      o.Status().String(),
		Past:        o.IsPast(now),
		Cancelable:  o.IsCancelable(now),
	}, nil
}

func restore(row orderRow) (*order.Order, error) {
	var signatureID *kernel.ID
	if row.SignatureID != nil {
		id, err := kernel.NewID(*row.SignatureID)
		if err != nil {
			return nil, err
		}
		signatureID = &id
	}

	ids := make([]kernel.ID, 3)
	for i, v := range []int64{row.ID, row.DelivererID, row.RecipientID} {
		id, err := kernel.NewID(v)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	return order.RestoreOrder(order.Snapshot{
		ID:          ids[0],
		Product:     row.Product,
		Quantity:    row.Quantity,
		DelivererID: ids[1],
		RecipientID: ids[2],
		CreatedAt:   row.CreatedAt,
		StartDate:   row.StartDate,
		Started:     row.Started,
		EndDate:     row.EndDate,
		Ended:       row.Ended,
		CanceledAt:  row.CanceledAt,
		SignatureID: signatureID,
	})
}
