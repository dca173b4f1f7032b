package ports

import (
	"context"
)

// OrderListCache keeps rendered order list pages. Implementations may drop
// entries at any time; Get reports a miss with ok set to false.
type OrderListCache interface {
	Get(ctx context.Context, key string, dest any) (ok bool, err error)
	Set(ctx context.Context, key string, value any) error

	// Invalidate drops every cached page.
	Invalidate(ctx context.Context) error
}
