package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var ErrStartTransportCommandIsNotConstructed = errors.New(
	"StartTransportCommand must be created via NewStartTransportCommand constructor",
)

// StartTransportCommand records that the deliverer picked an order up.
type StartTransportCommand struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewStartTransportCommand(orderID kernel.ID) (StartTransportCommand, error) {
	if err := orderID.Validate(); err != nil {
		return StartTransportCommand{}, err
	}

	return StartTransportCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c StartTransportCommand) Validate() error {
	return c.guard.Validate(ErrStartTransportCommandIsNotConstructed)
}

func (c StartTransportCommand) OrderID() kernel.ID {
	return c.orderID
}
