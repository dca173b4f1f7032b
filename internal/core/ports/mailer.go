package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/notification"
)

// Mailer hands a rendered notification to the mail transport. A nil error
// means the transport accepted the message, not that it reached the inbox.
type Mailer interface {
	Send(ctx context.Context, n *notification.Notification) error
}
