package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and then notifies the commit
	// observers about the aggregates written in it.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	DelivererRepository() DelivererRepository
	RecipientRepository() RecipientRepository
	NotificationRepository() NotificationRepository
}

// CommitObserver is told which aggregates a unit of work wrote, after the
// transaction committed. Observers must not fail the caller; they log their
// own errors.
type CommitObserver interface {
	AggregatesCommitted(ctx context.Context, aggregates []any)
}
