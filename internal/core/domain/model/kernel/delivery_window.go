package kernel

import (
	"errors"
	"fmt"
	"time"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

const (
	// DefaultWindowStartHour is the first hour in which a transport may start.
	DefaultWindowStartHour = 8
	// DefaultWindowEndHour is the last hour in which a transport may start
	// (inclusive, so starts are accepted until 18:59).
	DefaultWindowEndHour = 18

	minHour = 0
	maxHour = 23
)

// ErrDeliveryWindowIsNotConstructed is returned when validating a zero-value
// DeliveryWindow.
var ErrDeliveryWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery window must be created via NewDeliveryWindow or DefaultDeliveryWindow")

// DeliveryWindow is the range of hours of the day, both ends inclusive, in
// which transports may start. Only the hour of the instant is compared, in
// the instant's own location.
//
// Example:
//
//	window, err := kernel.NewDeliveryWindow(8, 18)
//	window.Contains(time.Date(2026, 3, 2, 18, 59, 0, 0, time.Local)) // true
//	window.Contains(time.Date(2026, 3, 2, 7, 59, 0, 0, time.Local))  // false
type DeliveryWindow struct { //nolint:recvcheck //using for validation
	startHour int
	endHour   int
	guard     guard.ConstructorGuard
}

// NewDeliveryWindow builds a window from startHour to endHour inclusive.
// Both hours must be in 0..23 and startHour must not be after endHour.
func NewDeliveryWindow(startHour, endHour int) (DeliveryWindow, error) {
	w := DeliveryWindow{guard: guard.NewConstructorGuard()}

	if err := errors.Join(w.setStartHour(startHour), w.setEndHour(endHour)); err != nil {
		return DeliveryWindow{}, err
	}

	if startHour > endHour {
		return DeliveryWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"delivery window is invalid",
			fmt.Errorf("start hour %d is after end hour %d", startHour, endHour),
		)
	}

	return w, nil
}

// DefaultDeliveryWindow returns the 08..18 window.
func DefaultDeliveryWindow() DeliveryWindow {
	return DeliveryWindow{
		startHour: DefaultWindowStartHour,
		endHour:   DefaultWindowEndHour,
		guard:     guard.NewConstructorGuard(),
	}
}

func (w DeliveryWindow) Validate() error {
	return w.guard.Validate(ErrDeliveryWindowIsNotConstructed)
}

func (w DeliveryWindow) StartHour() int {
	return w.startHour
}

func (w DeliveryWindow) EndHour() int {
	return w.endHour
}

// Contains reports whether the hour of t falls inside the window.
func (w DeliveryWindow) Contains(t time.Time) bool {
	hour := t.Hour()
	return hour >= w.startHour && hour <= w.endHour
}

// String renders the window as "08:00-18:59".
func (w DeliveryWindow) String() string {
	return fmt.Sprintf("%02d:00-%02d:59", w.startHour, w.endHour)
}

func (w *DeliveryWindow) setStartHour(hour int) error {
	if hour < minHour || hour > maxHour {
		return errs.NewValueIsOutOfRangeError("start hour", hour, minHour, maxHour)
	}
	w.startHour = hour
	return nil
}

func (w *DeliveryWindow) setEndHour(hour int) error {
	if hour < minHour || hour > maxHour {
		return errs.NewValueIsOutOfRangeError("end hour", hour, minHour, maxHour)
	}
	w.endHour = hour
	return nil
}
