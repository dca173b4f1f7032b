package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
)

// RecipientRepository defines the persistence contract for recipients.
type RecipientRepository interface {
	Add(ctx context.Context, aggregate *recipient.Recipient) error
	Get(ctx context.Context, id kernel.ID) (*recipient.Recipient, error)
}
