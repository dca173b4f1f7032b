package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"
)

// NotificationRepository stores the outbox of notifications.
type NotificationRepository interface {
	Add(ctx context.Context, aggregate *notification.Notification) error
	Update(ctx context.Context, aggregate *notification.Notification) error
	// GetForUpdate loads a notification and locks its row until the
	// transaction ends, so that only one sender handles it at a time.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetPending returns up to limit Pending notifications, oldest first.
	GetPending(ctx context.Context, limit int) ([]*notification.Notification, error)
}
