package commands

import (
	"context"
	"log/slog"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/services"
)

// NotificationDeliverer hands one stored notification to the mail transport.
type NotificationDeliverer interface {
	Handle(ctx context.Context, cmd DeliverNotificationCommand) error
}

// CancelOrderCommandHandler cancels Pending orders and notifies their
// deliverer.
//
// The cancellation and the notification row are written in one
// transaction. The notification is sent after the commit; a send failure is
// logged and left on the row for the retry job, and never undoes the
// cancellation.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory, clock, services.NewCancellationNotice(), deliverHandler, logger)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrAlreadyStarted) {
//	    // the deliverer already has the package
//	}
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
	notice     services.CancellationNotice
	deliverer  NotificationDeliverer
	logger     *slog.Logger
}

func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	clock kernel.Clock,
	notice services.CancellationNotice,
	deliverer NotificationDeliverer,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notice:     notice,
		deliverer:  deliverer,
		logger:     logger.With("component", "CancelOrderCommandHandler"),
	}
}

// Handle returns the canceled order.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, n, err := h.cancel(ctx, cmd)
	if err != nil {
		return nil, err
	}

	deliverCmd, err := NewDeliverNotificationCommand(n.ID())
	if err == nil {
		err = h.deliverer.Handle(ctx, deliverCmd)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "cancellation notice not sent, left for retry",
			"order_id", o.ID().Value(),
			"notification_id", n.ID().String(),
			"error", err)
	}

	return o, nil
}

func (h CancelOrderCommandHandler) cancel(
	ctx context.Context,
	cmd CancelOrderCommand,
) (*order.Order, *notification.Notification, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, nil, err
	}

	now := h.clock.Now()
	if err = o.Cancel(now); err != nil {
		return nil, nil, err
	}

	d, err := uow.DelivererRepository().Get(ctx, o.DelivererID())
	if err != nil {
		return nil, nil, err
	}
	r, err := uow.RecipientRepository().Get(ctx, o.RecipientID())
	if err != nil {
		return nil, nil, err
	}

	msg, err := h.notice.Compose(o, d, r)
	if err != nil {
		return nil, nil, err
	}
	n, err := notification.NewNotification(o.ID(), msg, now)
	if err != nil {
		return nil, nil, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return nil, nil, err
	}
	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return o, n, nil
}
