package commands

import (
	"context"
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"
)

// CreateOrderCommandHandler creates Pending orders after checking that the
// deliverer and the recipient exist.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrReferenceNotFound) {
//	    // deliverer or recipient does not exist
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, clock kernel.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle inserts the order and returns it with its generated ID. A missing
// deliverer or recipient yields an errs.ReferenceNotFoundError naming it.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	if _, err := uow.DelivererRepository().Get(ctx, cmd.DelivererID()); err != nil {
		return nil, asReference(err, "deliverer", cmd.DelivererID())
	}
	if _, err := uow.RecipientRepository().Get(ctx, cmd.RecipientID()); err != nil {
		return nil, asReference(err, "recipient", cmd.RecipientID())
	}

	o, err := order.NewOrder(cmd.Product(), cmd.Quantity(), cmd.DelivererID(), cmd.RecipientID(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func asReference(err error, reference string, id kernel.ID) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewReferenceNotFoundError(reference, id.Value())
	}
	return err
}
