package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition      = errors.New("invalid transition")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrNotificationFailed     = errors.New("notification failed")
)

// InvalidTransitionError reports a lifecycle change refused by the state
// machine. Rule is the specific sentinel (order.ErrNotStarted, ...), so both
// errors.Is(err, ErrInvalidTransition) and errors.Is(err, rule) hold.
type InvalidTransitionError struct {
	Status string
	Action string
	Rule   error
}

func NewInvalidTransitionError(status, action string, rule error) *InvalidTransitionError {
	return &InvalidTransitionError{Status: status, Action: action, Rule: rule}
}

func (e *InvalidTransitionError) Error() string {
	return withCause(fmt.Sprintf("%s: cannot %s from %s", ErrInvalidTransition, e.Action, e.Status), e.Rule)
}

func (e *InvalidTransitionError) Unwrap() []error {
	if e.Rule == nil {
		return []error{ErrInvalidTransition}
	}
	return []error{ErrInvalidTransition, e.Rule}
}

// ConcurrentModificationError reports that a record changed between being
// read and being conditionally updated.
type ConcurrentModificationError struct {
	Entity string
	ID     any
}

func NewConcurrentModificationError(entity string, id any) *ConcurrentModificationError {
	return &ConcurrentModificationError{Entity: entity, ID: id}
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: %s %v was changed by another request", ErrConcurrentModification, e.Entity, e.ID)
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}

// NotificationFailedError reports a message the transport did not accept.
type NotificationFailedError struct {
	Address string
	Cause   error
}

func NewNotificationFailedError(address string, cause error) *NotificationFailedError {
	return &NotificationFailedError{Address: address, Cause: cause}
}

func (e *NotificationFailedError) Error() string {
	return withCause(fmt.Sprintf("%s: to %s", ErrNotificationFailed, e.Address), e.Cause)
}

func (e *NotificationFailedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrNotificationFailed}
	}
	return []error{ErrNotificationFailed, e.Cause}
}
