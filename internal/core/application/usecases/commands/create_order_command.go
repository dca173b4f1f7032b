package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new delivery order
// for an existing deliverer and recipient.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Box A", 3, delivererID, recipientID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	product     string
	quantity    int
	delivererID kernel.ID
	recipientID kernel.ID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the shape of the request. Product and
// quantity rules are checked again by the order aggregate.
func NewCreateOrderCommand(
	product string,
	quantity int,
	delivererID kernel.ID,
	recipientID kernel.ID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProduct(product),
		cmd.setQuantity(quantity),
		cmd.setDelivererID(delivererID),
		cmd.setRecipientID(recipientID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Product() string {
	return c.product
}

func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

func (c CreateOrderCommand) DelivererID() kernel.ID {
	return c.delivererID
}

func (c CreateOrderCommand) RecipientID() kernel.ID {
	return c.recipientID
}

func (c *CreateOrderCommand) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}
	c.product = product
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 || quantity > order.MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, order.MaxQuantity)
	}
	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setDelivererID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliverer_id", err)
	}
	c.delivererID = id
	return nil
}

func (c *CreateOrderCommand) setRecipientID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recipient_id", err)
	}
	c.recipientID = id
	return nil
}
