package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var ErrDeliverNotificationCommandIsNotConstructed = errors.New(
	"DeliverNotificationCommand must be created via NewDeliverNotificationCommand constructor",
)

// DeliverNotificationCommand sends one stored notification.
type DeliverNotificationCommand struct {
	notificationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeliverNotificationCommand(notificationID kernel.UUID) (DeliverNotificationCommand, error) {
	if err := notificationID.Validate(); err != nil {
		return DeliverNotificationCommand{}, err
	}

	return DeliverNotificationCommand{
		notificationID: notificationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c DeliverNotificationCommand) Validate() error {
	return c.guard.Validate(ErrDeliverNotificationCommandIsNotConstructed)
}

func (c DeliverNotificationCommand) NotificationID() kernel.UUID {
	return c.notificationID
}
