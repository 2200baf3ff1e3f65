// Package pgtest starts a disposable PostgreSQL container with the migrated schema for
// repository integration tests.
package pgtest

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"dentallab/internal/adapters/out/postgres/migrations"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs postgres:15-alpine and applies every migration.
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
		return nil, err
	}
	d := &Database{Container: container}

	d.DSN, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return d, err
	}

	sqlDB, err := sql.Open("postgres", d.DSN)
	if err != nil {
		return d, err
	}
	defer sqlDB.Close()
	if _, err = migrations.Up(ctx, sqlDB); err != nil {
		return d, fmt.Errorf("migrate: %w", err)
	}

	d.DB, err = gorm.Open(postgresdriver.Open(d.DSN), &gorm.Config{})
	return d, err
}

// Truncate empties every table and restarts the id sequences.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE outsourcing_requests, order_stages, orders, offerings RESTART IDENTITY CASCADE").Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
