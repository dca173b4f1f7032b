package order

import (
	"fmt"

	"fastfeet/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──start──> Started ──end──> Ended
//	   │
//	   └──cancel──> Canceled
//
// Ended and Canceled are final.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: nothing has happened to the order yet.
	Pending

	// Started means the deliverer picked the package up.
	Started

	// Ended means the package was delivered.
	Ended

	// Canceled means the order was withdrawn before pickup.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Started:  "Started",
		Ended:    "Ended",
		Canceled: "Canceled",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Canceled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer; invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Start transitions Pending -> Started.
func (s Status) Start() (Status, error) {
	switch s {
	case Pending:
		return Started, nil
	case Started, Ended:
		return Unknown, s.refuse("start transport", ErrAlreadyStarted)
	case Canceled:
		return Unknown, s.refuse("start transport", ErrAlreadyCanceled)
	default:
		return Unknown, s.refuse("start transport", s.Validate())
	}
}

// End transitions Started -> Ended.
func (s Status) End() (Status, error) {
	switch s {
	case Started:
		return Ended, nil
	case Pending, Canceled:
		return Unknown, s.refuse("end transport", ErrNotStarted)
	case Ended:
		return Unknown, s.refuse("end transport", ErrAlreadyEnded)
	default:
		return Unknown, s.refuse("end transport", s.Validate())
	}
}

// Cancel transitions Pending -> Canceled.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Pending:
		return Canceled, nil
	case Started, Ended:
		return Unknown, s.refuse("cancel", ErrAlreadyStarted)
	case Canceled:
		return Unknown, s.refuse("cancel", ErrAlreadyCanceled)
	default:
		return Unknown, s.refuse("cancel", s.Validate())
	}
}

// ValidateEditable checks that descriptive fields (product, signature) may
// still change. Only canceled orders are frozen.
func (s Status) ValidateEditable() error {
	if err := s.Validate(); err != nil {
		return s.refuse("update", err)
	}
	if s == Canceled {
		return s.refuse("update", ErrAlreadyCanceled)
	}
	return nil
}

func (s Status) refuse(action string, rule error) error {
	return errs.NewInvalidTransitionError(s.String(), action, rule)
}
