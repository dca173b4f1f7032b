package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
)

// StartTransportCommandHandler starts transports inside the delivery window.
//
// Example:
//
//	handler := NewStartTransportCommandHandler(uowFactory, clock, kernel.DefaultDeliveryWindow())
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrOutOfWindow) {
//	    // too early or too late in the day
//	}
type StartTransportCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	window     kernel.DeliveryWindow
}

func NewStartTransportCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	window kernel.DeliveryWindow,
) StartTransportCommandHandler {
	return StartTransportCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		window:     window,
	}
}

// Handle loads the order, starts it at the current time and stores it.
// The update is conditional on the status the order was loaded with, so a
// concurrent transition makes it fail with errs.ErrConcurrentModification.
func (h StartTransportCommandHandler) Handle(ctx context.Context, cmd StartTransportCommand) (*order.Order, error) {
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

	if err = o.StartTransport(h.clock.Now(), h.window); err != nil {
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
