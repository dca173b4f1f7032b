package commands

import (
	"context"
	"errors"

	"fastfeet/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies field patches to orders that are not
// canceled.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the order after the patch. An empty patch only loads it.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if cmd.IsEmpty() {
		return o, nil
	}

	var productErr, signatureErr error
	if product, ok := cmd.Product(); ok {
		productErr = o.ChangeProduct(product)
	}
	if signatureID, ok := cmd.SignatureID(); ok {
		signatureErr = o.AttachSignature(signatureID)
	}
	if err = errors.Join(productErr, signatureErr); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
