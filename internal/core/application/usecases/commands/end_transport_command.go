package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var ErrEndTransportCommandIsNotConstructed = errors.New(
	"EndTransportCommand must be created via NewEndTransportCommand constructor",
)

// EndTransportCommand records that an order was delivered.
type EndTransportCommand struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewEndTransportCommand(orderID kernel.ID) (EndTransportCommand, error) {
	if err := orderID.Validate(); err != nil {
		return EndTransportCommand{}, err
	}

	return EndTransportCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c EndTransportCommand) Validate() error {
	return c.guard.Validate(ErrEndTransportCommandIsNotConstructed)
}

func (c EndTransportCommand) OrderID() kernel.ID {
	return c.orderID
}
