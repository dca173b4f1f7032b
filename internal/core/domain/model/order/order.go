package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

const (
	// MaxProductLength is the longest accepted product name, in characters.
	MaxProductLength = 150

	// MaxQuantity is the largest quantity the orders table can store.
	MaxQuantity = math.MaxInt32

	// cancelNotice is how long before the end date an order stops being
	// cancelable.
	cancelNotice = 24 * time.Hour
)

// Order is the aggregate root of a delivery: one product and quantity handed
// by one deliverer to one recipient, with the timestamps of its lifecycle.
//
// Order follows these invariants:
//   - product is non-empty and at most MaxProductLength characters
//   - quantity is positive
//   - deliverer and recipient references are valid IDs
//   - status is consistent with the lifecycle timestamps and only changes
//     through StartTransport, EndTransport and Cancel
//
// Orders created by NewOrder have no ID until the repository assigns one.
type Order struct {
	id          kernel.ID
	product     string
	quantity    int
	delivererID kernel.ID
	recipientID kernel.ID
	createdAt   time.Time

	status Status
	// persistedStatus is the status the stored row had when the order was
	// loaded (or last saved); repositories guard updates with it.
	persistedStatus Status

	startDate   *time.Time
	endDate     *time.Time
	canceledAt  *time.Time
	signatureID *kernel.ID

	isConstructed bool
}

// NewOrder creates a Pending order.
//
// Example:
//
//	o, err := order.NewOrder("Box A", 3, delivererID, recipientID, clock.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	product string,
	quantity int,
	delivererID kernel.ID,
	recipientID kernel.ID,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:       createdAt,
		status:          Pending,
		persistedStatus: Pending,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setProduct(product),
		o.setQuantity(quantity),
		o.setDeliverer(delivererID),
		o.setRecipient(recipientID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot holds the persisted fields of an order. Started and Ended are
// the stored boolean flags, nil when the column is NULL.
type Snapshot struct {
	ID          kernel.ID
	Product     string
	Quantity    int
	DelivererID kernel.ID
	RecipientID kernel.ID
	CreatedAt   time.Time
	StartDate   *time.Time
	Started     *bool
	EndDate     *time.Time
	Ended       *bool
	CanceledAt  *time.Time
	SignatureID *kernel.ID
}

// RestoreOrder rebuilds an order from storage. The lifecycle status is
// derived here, once, and an inconsistent combination of fields is rejected.
func RestoreOrder(s Snapshot) (*Order, error) {
	status, err := resolveStatus(s)
	if err != nil {
		return nil, err
	}

	o := &Order{
		createdAt:       s.CreatedAt,
		status:          status,
		persistedStatus: status,
		startDate:       copyTime(s.StartDate),
		endDate:         copyTime(s.EndDate),
		canceledAt:      copyTime(s.CanceledAt),
		isConstructed:   true,
	}

	if err = errors.Join(
		o.setID(s.ID),
		o.setProduct(s.Product),
		o.setQuantity(s.Quantity),
		o.setDeliverer(s.DelivererID),
		o.setRecipient(s.RecipientID),
		o.setSignature(s.SignatureID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func resolveStatus(s Snapshot) (Status, error) {
	hasStart := s.StartDate != nil
	hasEnd := s.EndDate != nil
	isCanceled := s.CanceledAt != nil

	switch {
	case isTrue(s.Started) != hasStart:
		return Unknown, inconsistent("started flag does not match start date")
	case isTrue(s.Ended) != hasEnd:
		return Unknown, inconsistent("ended flag does not match end date")
	case hasEnd && !hasStart:
		return Unknown, inconsistent("ended without a start date")
	case isCanceled && hasStart:
		return Unknown, inconsistent("canceled after start")
	case isCanceled:
		return Canceled, nil
	case hasEnd:
		return Ended, nil
	case hasStart:
		return Started, nil
	default:
		return Pending, nil
	}
}

// Validate ensures the order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && !o.id.IsZero() && o.id.IsEqual(other.id)
}

// AssignID records the key generated by the database on insert.
func (o *Order) AssignID(id kernel.ID) error {
	if !o.id.IsZero() {
		return ErrOrderAlreadyIdentified
	}
	return o.setID(id)
}

// MarkPersisted records that the current status was written to storage.
func (o *Order) MarkPersisted() {
	o.persistedStatus = o.status
}

// ID returns the order's identifier (zero until persisted).
func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) Product() string {
	return o.product
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) DelivererID() kernel.ID {
	return o.delivererID
}

func (o *Order) RecipientID() kernel.ID {
	return o.recipientID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PersistedStatus returns the status of the stored row this order was loaded
// from, which differs from Status between a transition and the save.
func (o *Order) PersistedStatus() Status {
	return o.persistedStatus
}

func (o *Order) StartDate() *time.Time {
	return copyTime(o.startDate)
}

func (o *Order) EndDate() *time.Time {
	return copyTime(o.endDate)
}

func (o *Order) CanceledAt() *time.Time {
	return copyTime(o.canceledAt)
}

// Started reports whether the transport began (Started or Ended).
func (o *Order) Started() bool {
	return o.status == Started || o.status == Ended
}

// Ended reports whether the package was delivered.
func (o *Order) Ended() bool {
	return o.status == Ended
}

// SignatureID returns the captured signature, nil when none is attached.
func (o *Order) SignatureID() *kernel.ID {
	if o.signatureID == nil {
		return nil
	}
	id := *o.signatureID
	return &id
}

// StartTransport marks the package as picked up at now.
//
// Returns an InvalidTransitionError wrapping ErrAlreadyStarted,
// ErrAlreadyCanceled or ErrOutOfWindow when the transition is refused; the
// order is left unchanged in that case.
func (o *Order) StartTransport(now time.Time, window kernel.DeliveryWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	if !window.Contains(now) {
		return errs.NewInvalidTransitionError(o.status.String(), "start transport", ErrOutOfWindow)
	}

	o.status = newStatus
	o.startDate = &now
	return nil
}

// EndTransport marks the package as delivered at now.
//
// Returns an InvalidTransitionError wrapping ErrNotStarted or
// ErrAlreadyEnded when the transition is refused.
func (o *Order) EndTransport(now time.Time) error {
	newStatus, err := o.status.End()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.endDate = &now
	return nil
}

// Cancel withdraws a Pending order at now.
//
// Returns an InvalidTransitionError wrapping ErrAlreadyStarted or
// ErrAlreadyCanceled when the transition is refused.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.canceledAt = &now
	return nil
}

// ChangeProduct renames the product of a non-canceled order.
func (o *Order) ChangeProduct(product string) error {
	if err := o.status.ValidateEditable(); err != nil {
		return err
	}
	return o.setProduct(product)
}

// AttachSignature links the captured signature of a non-canceled order.
func (o *Order) AttachSignature(signatureID kernel.ID) error {
	if err := o.status.ValidateEditable(); err != nil {
		return err
	}
	return o.setSignature(&signatureID)
}

// IsPast reports whether the order ended before now.
func (o *Order) IsPast(now time.Time) bool {
	return o.endDate != nil && o.endDate.Before(now)
}

// IsCancelable reports whether now is more than one day before the end date.
// Orders without an end date are not cancelable by this measure.
func (o *Order) IsCancelable(now time.Time) bool {
	return o.endDate != nil && now.Before(o.endDate.Add(-cancelNotice))
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setProduct(product string) error {
	product = strings.TrimSpace(product)
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}
	if n := utf8.RuneCountInString(product); n > MaxProductLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"product is invalid",
			fmt.Errorf("%d characters is longer than %d", n, MaxProductLength),
		)
	}
	o.product = product
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setDeliverer(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliverer", err)
	}
	o.delivererID = id
	return nil
}

func (o *Order) setRecipient(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recipient", err)
	}
	o.recipientID = id
	return nil
}

func (o *Order) setSignature(id *kernel.ID) error {
	if id == nil {
		o.signatureID = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	sig := *id
	o.signatureID = &sig
	return nil
}

func inconsistent(reason string) error {
	return errs.NewValueIsInvalidErrorWithCause("order state is inconsistent", errors.New(reason))
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
