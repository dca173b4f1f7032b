package commands

import (
	"context"
	"errors"
	"log/slog"

	"fastfeet/internal/pkg/errs"
)

// RetryReport summarizes one retry run.
type RetryReport struct {
	Attempted int
	Sent      int
	Failed    int
}

// RetryNotificationsCommandHandler resends notifications whose first send
// failed. It is driven by the notification retry job.
type RetryNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	deliverer  NotificationDeliverer
	logger     *slog.Logger
}

func NewRetryNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	deliverer NotificationDeliverer,
	logger *slog.Logger,
) RetryNotificationsCommandHandler {
	return RetryNotificationsCommandHandler{
		uowFactory: uowFactory,
		deliverer:  deliverer,
		logger:     logger.With("component", "RetryNotificationsCommandHandler"),
	}
}

// Handle sends each pending notification in its own transaction. Transport
// failures are counted and logged; any other error stops the run.
func (h RetryNotificationsCommandHandler) Handle(ctx context.Context, cmd RetryNotificationsCommand) (RetryReport, error) {
	var report RetryReport

	if err := cmd.Validate(); err != nil {
		return report, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return report, err
	}
	pending, err := uow.NotificationRepository().GetPending(ctx, cmd.BatchSize())
	_ = uow.Rollback(ctx)
	if err != nil {
		return report, err
	}

	for _, n := range pending {
		deliverCmd, err := NewDeliverNotificationCommand(n.ID())
		if err != nil {
			return report, err
		}

		report.Attempted++
		err = h.deliverer.Handle(ctx, deliverCmd)
		switch {
		case err == nil:
			report.Sent++
		case errors.Is(err, errs.ErrNotificationFailed):
			report.Failed++
			h.logger.WarnContext(ctx, "notification send failed",
				"notification_id", n.ID().String(),
				"error", err)
		default:
			return report, err
		}
	}

	return report, nil
}
