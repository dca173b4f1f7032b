package commands

import (
	"errors"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// DefaultRetryBatchSize bounds how many notifications one retry run sends.
const DefaultRetryBatchSize = 50

var ErrRetryNotificationsCommandIsNotConstructed = errors.New(
	"RetryNotificationsCommand must be created via NewRetryNotificationsCommand constructor",
)

// RetryNotificationsCommand resends Pending notifications, oldest first.
type RetryNotificationsCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewRetryNotificationsCommand(batchSize int) (RetryNotificationsCommand, error) {
	if batchSize <= 0 {
		return RetryNotificationsCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, "unbounded")
	}

	return RetryNotificationsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RetryNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrRetryNotificationsCommandIsNotConstructed)
}

func (c RetryNotificationsCommand) BatchSize() int {
	return c.batchSize
}
