package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
)

// EndTransportCommandHandler marks started orders as delivered. Deliveries
// may end at any hour.
type EndTransportCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewEndTransportCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) EndTransportCommandHandler {
	return EndTransportCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h EndTransportCommandHandler) Handle(ctx context.Context, cmd EndTransportCommand) (*order.Order, error) {
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

	if err = o.EndTransport(h.clock.Now()); err != nil {
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
