package commands

import (
	"errors"

	"fastfeet/internal/pkg/guard"
)

var ErrCreateDelivererCommandIsNotConstructed = errors.New(
	"CreateDelivererCommand must be created via NewCreateDelivererCommand constructor",
)

// CreateDelivererCommand registers a deliverer.
type CreateDelivererCommand struct {
	firstName string
	lastName  string
	email     string

	guard guard.ConstructorGuard
}

func NewCreateDelivererCommand(firstName, lastName, email string) CreateDelivererCommand {
	return CreateDelivererCommand{
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		guard:     guard.NewConstructorGuard(),
	}
}

func (c CreateDelivererCommand) Validate() error {
	return c.guard.Validate(ErrCreateDelivererCommandIsNotConstructed)
}

func (c CreateDelivererCommand) FirstName() string {
	return c.firstName
}

func (c CreateDelivererCommand) LastName() string {
	return c.lastName
}

func (c CreateDelivererCommand) Email() string {
	return c.email
}
