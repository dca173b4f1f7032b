package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/deliverer"
)

type CreateDelivererCommandHandler struct {
	uowFactory DelivererUoWFactory
}

func NewCreateDelivererCommandHandler(uowFactory DelivererUoWFactory) CreateDelivererCommandHandler {
	return CreateDelivererCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the deliverer and returns it with its generated ID.
func (h CreateDelivererCommandHandler) Handle(ctx context.Context, cmd CreateDelivererCommand) (*deliverer.Deliverer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d, err := deliverer.NewDeliverer(cmd.FirstName(), cmd.LastName(), cmd.Email())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DelivererRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
