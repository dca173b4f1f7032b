package notification

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

var (
	// ErrNotificationIsNotConstructed is returned when using a zero-value
	// Notification.
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification constructor")
	// ErrNotificationNotPending is returned when recording an attempt on a
	// notification that is already Sent or Failed.
	ErrNotificationNotPending = errors.New("notification is not pending")
)

// Message is the rendered email a notification carries.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Notification is one outgoing email about an order.
type Notification struct {
	id        kernel.UUID
	orderID   kernel.ID
	message   Message
	status    Status
	attempts  int
	lastError string
	createdAt time.Time
	sentAt    *time.Time

	isConstructed bool
}

// NewNotification creates a Pending notification with a fresh ID.
func NewNotification(orderID kernel.ID, message Message, createdAt time.Time) (*Notification, error) {
	n := &Notification{
		id:            kernel.NewUUID(),
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setOrderID(orderID),
		n.setMessage(message),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// Snapshot holds the stored fields of a notification.
type Snapshot struct {
	ID        kernel.UUID
	OrderID   kernel.ID
	Message   Message
	Status    Status
	Attempts  int
	LastError string
	CreatedAt time.Time
	SentAt    *time.Time
}

// RestoreNotification rebuilds a stored notification.
func RestoreNotification(s Snapshot) (*Notification, error) {
	n := &Notification{
		attempts:      s.Attempts,
		lastError:     s.LastError,
		createdAt:     s.CreatedAt,
		isConstructed: true,
	}
	if s.SentAt != nil {
		sentAt := *s.SentAt
		n.sentAt = &sentAt
	}

	if err := errors.Join(
		s.ID.Validate(),
		s.Status.Validate(),
		n.setOrderID(s.OrderID),
		n.setMessage(s.Message),
	); err != nil {
		return nil, err
	}
	if s.Attempts < 0 {
		return nil, errs.NewValueIsOutOfRangeError("attempts", s.Attempts, 0, "unbounded")
	}
	n.id = s.ID
	n.status = s.Status

	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) OrderID() kernel.ID {
	return n.orderID
}

func (n *Notification) Message() Message {
	return n.message
}

func (n *Notification) Status() Status {
	return n.status
}

// Attempts counts failed hand-offs to the mail transport.
func (n *Notification) Attempts() int {
	return n.attempts
}

func (n *Notification) LastError() string {
	return n.lastError
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) SentAt() *time.Time {
	if n.sentAt == nil {
		return nil
	}
	t := *n.sentAt
	return &t
}

// MarkSent records a successful hand-off.
func (n *Notification) MarkSent(now time.Time) error {
	if n.status != Pending {
		return ErrNotificationNotPending
	}
	n.status = Sent
	n.sentAt = &now
	return nil
}

// RecordFailure counts a failed hand-off. When maxAttempts is reached the
// notification is marked Failed.
func (n *Notification) RecordFailure(cause error, maxAttempts int) error {
	if n.status != Pending {
		return ErrNotificationNotPending
	}
	n.attempts++
	if cause != nil {
		n.lastError = cause.Error()
	}
	if n.attempts >= maxAttempts {
		n.status = Failed
	}
	return nil
}

func (n *Notification) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	n.orderID = id
	return nil
}

func (n *Notification) setMessage(m Message) error {
	m.To = strings.TrimSpace(m.To)
	if _, err := mail.ParseAddress(m.To); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("to", fmt.Errorf("%q is not an email address", m.To))
	}
	if strings.TrimSpace(m.Subject) == "" {
		return errs.NewValueIsRequiredError("subject")
	}
	if strings.TrimSpace(m.Body) == "" {
		return errs.NewValueIsRequiredError("body")
	}
	n.message = m
	return nil
}
