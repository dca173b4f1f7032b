package servers

import (
	"time"
)

// Error defines model for Error.
type Error struct {
	Constraint *string `json:"constraint,omitempty"`
	Error      string  `json:"error"`
	Field      *string `json:"field,omitempty"`
}

// CreatedOrder defines model for CreatedOrder.
type CreatedOrder struct {
	DelivererId int64  `json:"deliverer_id"`
	Product     string `json:"product"`
	Quantity    int    `json:"quantity"`
	RecipientId int64  `json:"recipient_id"`
}

// ListedOrder defines model for ListedOrder.
type ListedOrder struct {
	Deliverer ListedOrderDeliverer `json:"deliverer"`
	Id        int64                `json:"id"`
	Product   string               `json:"product"`
	Recipient ListedOrderRecipient `json:"recipient"`
}

// ListedOrderDeliverer defines model for ListedOrder.deliverer.
type ListedOrderDeliverer struct {
	FirstName string `json:"first_name"`
	Id        int64  `json:"id"`
	LastName  string `json:"last_name"`
}

// ListedOrderRecipient defines model for ListedOrder.recipient.
type ListedOrderRecipient struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// OrderDetail defines model for OrderDetail.
type OrderDetail struct {
	CanceledAt  *time.Time `json:"canceled_at"`
	Cancelable  bool       `json:"cancelable"`
	CreatedAt   time.Time  `json:"created_at"`
	DelivererId int64      `json:"deliverer_id"`
	EndDate     *time.Time `json:"end_date"`
	Id          int64      `json:"id"`
	Past        bool       `json:"past"`
	Product     string     `json:"product"`
	Quantity    int        `json:"quantity"`
	RecipientId int64      `json:"recipient_id"`
	SignatureId *int64     `json:"signature_id"`
	StartDate   *time.Time `json:"start_date"`
	Status      string     `json:"status"`
}

// StartedOrder defines model for StartedOrder.
type StartedOrder struct {
	StartDate time.Time `json:"start_date"`
	Started   bool      `json:"started"`
}

// EndedOrder defines model for EndedOrder.
type EndedOrder struct {
	EndDate time.Time `json:"end_date"`
	Ended   bool      `json:"ended"`
}

// PatchedOrder defines model for PatchedOrder.
type PatchedOrder struct {
	Product     string `json:"product"`
	SignatureId *int64 `json:"signature_id"`
}

// CanceledOrder defines model for CanceledOrder.
type CanceledOrder struct {
	CanceledAt time.Time `json:"canceled_at"`
}

// Recipient defines model for Recipient.
type Recipient struct {
	City       string `json:"city"`
	Complement string `json:"complement"`
	Id         int64  `json:"id"`
	Name       string `json:"name"`
	Number     string `json:"number"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
	Street     string `json:"street"`
}

// Deliverer defines model for Deliverer.
type Deliverer struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	Id        int64  `json:"id"`
	LastName  string `json:"last_name"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Page   *int    `form:"page,omitempty" json:"page,omitempty"`
	Option *string `form:"option,omitempty" json:"option,omitempty"`
}
