package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/pkg/guard"
)

var ErrCreateRecipientCommandIsNotConstructed = errors.New(
	"CreateRecipientCommand must be created via NewCreateRecipientCommand constructor",
)

// CreateRecipientCommand registers a recipient. Field rules live in the
// recipient aggregate.
type CreateRecipientCommand struct {
	name    string
	address recipient.Address

	guard guard.ConstructorGuard
}

func NewCreateRecipientCommand(name string, address recipient.Address) CreateRecipientCommand {
	return CreateRecipientCommand{
		name:    name,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}
}

func (c CreateRecipientCommand) Validate() error {
	return c.guard.Validate(ErrCreateRecipientCommandIsNotConstructed)
}

func (c CreateRecipientCommand) Name() string {
	return c.name
}

func (c CreateRecipientCommand) Address() recipient.Address {
	return c.address
}
