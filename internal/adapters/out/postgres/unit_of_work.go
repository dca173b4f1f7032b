// Package postgres provides the GORM-based Unit of Work, the repositories it
// hands out and the goose schema migrations.
//
// A unit of work keeps the aggregates written through its repositories.
// After a successful commit it passes them to the registered commit
// observers, for example to drop cached order lists.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, cache)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	o, err := uow.OrderRepository().Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if err = o.Cancel(now); err != nil {
//	    return err
//	}
//	if err = uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Order updates are conditional on the loaded status, so two
//     transactions racing on one order cannot both win
package postgres

import (
	"context"

	"fastfeet/internal/adapters/out/postgres/delivererrepo"
	"fastfeet/internal/adapters/out/postgres/notificationrepo"
	"fastfeet/internal/adapters/out/postgres/orderrepo"
	"fastfeet/internal/adapters/out/postgres/recipientrepo"
	"fastfeet/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool and one set of commit observers.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	observers []ports.CommitObserver
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. Observers are told about the aggregates of every committed
// unit of work, in the order given.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, orderListCache)
func NewGormUnitOfWorkFactory(db *gorm.DB, observers ...ports.CommitObserver) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		observers: observers,
	}
}

// Create produces a new UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		observers: f.observers,
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates written in it.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	observers []ports.CommitObserver

	trackedAggregates []any
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create
// nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction, then hands the tracked aggregates to the
// commit observers. Observers are not called when the commit fails.
//
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil

	committed := uow.trackedAggregates
	uow.trackedAggregates = nil
	if err != nil {
		return err
	}

	if len(committed) > 0 {
		for _, observer := range uow.observers {
			observer.AggregatesCommitted(ctx, committed)
		}
	}
	return nil
}

// Rollback discards all changes made within the current transaction and
// forgets the tracked aggregates.
//
// Returns gorm.ErrInvalidTransaction if no transaction is active, which
// makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = nil
	return err
}

// OrderRepository provides access to order persistence within the unit of
// work. Outside a transaction it uses the main connection.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DelivererRepository() ports.DelivererRepository {
	return delivererrepo.NewGormDelivererRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RecipientRepository() ports.RecipientRepository {
	return recipientrepo.NewGormRecipientRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, aggregate)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
