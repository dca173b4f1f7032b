// Package pgtest starts a migrated PostgreSQL container for integration
// test suites.
package pgtest

import (
	"context"
	"fmt"
	"time"

	postgres_adapter "fastfeet/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a running container with the schema applied.
type Database struct {
	Container *postgres.PostgresContainer
	DSN       string
	DB        *gorm.DB
}

// Start runs postgres:15-alpine, applies the migrations and connects GORM.
// The caller must Terminate the database.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	d := &Database{Container: container}

	d.DSN, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, d.fail(ctx, err)
	}

	if err = postgres_adapter.Migrate(ctx, d.DSN); err != nil {
		return nil, d.fail(ctx, err)
	}

	d.DB, err = gorm.Open(gorm_postgres.Open(d.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, d.fail(ctx, err)
	}

	return d, nil
}

// Truncate empties every table and resets the ID sequences.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE notifications, orders, recipients, deliverers RESTART IDENTITY CASCADE").Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

func (d *Database) fail(ctx context.Context, err error) error {
	_ = d.Container.Terminate(ctx)
	return err
}
