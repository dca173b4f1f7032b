package commands

import (
	"context"
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/errs"
)

// DefaultMaxDeliveryAttempts is how many failed sends turn a notification
// into Failed when no other limit is configured.
const DefaultMaxDeliveryAttempts = 5

// DeliverNotificationCommandHandler sends a Pending notification and records
// the outcome on it.
//
// The notification row stays locked while the transport is called, so the
// post-commit send and the retry job never both send the same notification.
// Notifications that are no longer Pending are skipped.
type DeliverNotificationCommandHandler struct {
	uowFactory  NotificationUoWFactory
	mailer      ports.Mailer
	clock       kernel.Clock
	maxAttempts int
}

func NewDeliverNotificationCommandHandler(
	uowFactory NotificationUoWFactory,
	mailer ports.Mailer,
	clock kernel.Clock,
	maxAttempts int,
) DeliverNotificationCommandHandler {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxDeliveryAttempts
	}
	return DeliverNotificationCommandHandler{
		uowFactory:  uowFactory,
		mailer:      mailer,
		clock:       clock,
		maxAttempts: maxAttempts,
	}
}

// Handle returns an errs.NotificationFailedError when the transport refused
// the message. The failed attempt is stored before returning.
func (h DeliverNotificationCommandHandler) Handle(ctx context.Context, cmd DeliverNotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	n, err := repo.GetForUpdate(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}
	if n.Status() != notification.Pending {
		return nil
	}

	sendErr := h.mailer.Send(ctx, n)
	if sendErr != nil {
		err = n.RecordFailure(sendErr, h.maxAttempts)
	} else {
		err = n.MarkSent(h.clock.Now())
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, n); err != nil {
		return errors.Join(err, sendErr)
	}

	if err = uow.Commit(ctx); err != nil {
		return errors.Join(err, sendErr)
	}

	if sendErr != nil {
		return errs.NewNotificationFailedError(n.Message().To, sendErr)
	}
	return nil
}
