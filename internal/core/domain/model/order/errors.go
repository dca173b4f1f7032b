package order

import "errors"

// Lifecycle rules. Transition methods return them wrapped in an
// errs.InvalidTransitionError, so callers can match either the rule or the
// general category.
var (
	ErrOutOfWindow     = errors.New("transport can only start inside the delivery window")
	ErrNotStarted      = errors.New("order has not started")
	ErrAlreadyStarted  = errors.New("order has already started")
	ErrAlreadyEnded    = errors.New("order has already ended")
	ErrAlreadyCanceled = errors.New("order has already been canceled")
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created by
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderAlreadyIdentified is returned when assigning an ID to an order
	// that already has one.
	ErrOrderAlreadyIdentified = errors.New("order already has an ID")
)
