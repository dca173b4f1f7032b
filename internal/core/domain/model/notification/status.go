package notification

import (
	"fmt"

	"fastfeet/internal/pkg/errs"
)

// Status is the delivery state of a notification.
type Status string

const (
	Pending Status = "pending"
	Sent    Status = "sent"
	Failed  Status = "failed"
)

// ParseStatus maps a stored value back to a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	switch s {
	case Pending, Sent, Failed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("notification status", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}
