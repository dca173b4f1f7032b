// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fastfeet/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it uses.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DelivererRepoFactory interface {
		DelivererRepository() ports.DelivererRepository
	}

	RecipientRepoFactory interface {
		RecipientRepository() ports.RecipientRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// OrderUoW manages transactions for order-only operations such as
	// lifecycle transitions and field updates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	DelivererUoW interface {
		TxManager
		DelivererRepoFactory
	}

	DelivererUoWFactory interface {
		Create() DelivererUoW
	}

	RecipientUoW interface {
		TxManager
		RecipientRepoFactory
	}

	RecipientUoWFactory interface {
		Create() RecipientUoW
	}

	// NotificationUoW manages transactions over the notification outbox.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// UoW spans every repository. Used by commands that read references or
	// write more than one aggregate type in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   d, err := uow.DelivererRepository().Get(ctx, o.DelivererID())
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		DelivererRepoFactory
		RecipientRepoFactory
		NotificationRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
