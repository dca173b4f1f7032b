package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/recipient"
)

type CreateRecipientCommandHandler struct {
	uowFactory RecipientUoWFactory
}

func NewCreateRecipientCommandHandler(uowFactory RecipientUoWFactory) CreateRecipientCommandHandler {
	return CreateRecipientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the recipient and returns it with its generated ID.
func (h CreateRecipientCommandHandler) Handle(ctx context.Context, cmd CreateRecipientCommand) (*recipient.Recipient, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r, err := recipient.NewRecipient(cmd.Name(), cmd.Address())
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

	if err = uow.RecipientRepository().Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
