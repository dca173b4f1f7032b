package queries

import (
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery asks for one order with its derived lifecycle fields.
type GetOrderQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.ID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

// GetOrderQueryResponse is the full order. Past and Cancelable are computed
// against the handler's clock at read time.
type GetOrderQueryResponse struct {
	ID          int64      `json:"id"`
	Product     string     `json:"product"`
	Quantity    int        `json:"quantity"`
	DelivererID int64      `json:"deliverer_id"`
	RecipientID int64      `json:"recipient_id"`
	SignatureID *int64     `json:"signature_id"`
	CreatedAt   time.Time  `json:"created_at"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	CanceledAt  *time.Time `json:"canceled_at"`
	Status      string     `json:"status"`
	Past        bool       `json:"past"`
	Cancelable  bool       `json:"cancelable"`
}
