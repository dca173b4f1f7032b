package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand patches the descriptive fields of an order. A nil
// field is left unchanged.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.ID
	product     *string
	signatureID *kernel.ID

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(orderID kernel.ID, product *string, signatureID *kernel.ID) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSignatureID(signatureID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}
	if product != nil {
		p := *product
		cmd.product = &p
	}

	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// Product returns the new product name, if one was given.
func (c UpdateOrderCommand) Product() (string, bool) {
	if c.product == nil {
		return "", false
	}
	return *c.product, true
}

// SignatureID returns the signature to attach, if one was given.
func (c UpdateOrderCommand) SignatureID() (kernel.ID, bool) {
	if c.signatureID == nil {
		return kernel.ID{}, false
	}
	return *c.signatureID, true
}

// IsEmpty reports whether the patch changes nothing.
func (c UpdateOrderCommand) IsEmpty() bool {
	return c.product == nil && c.signatureID == nil
}

func (c *UpdateOrderCommand) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderCommand) setSignatureID(id *kernel.ID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	sig := *id
	c.signatureID = &sig
	return nil
}
