// Package migrations embeds the relational schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var files embed.FS

// Result describes one applied or rolled back migration.
type Result struct {
	Version int64
	Source  string
}

func newProvider(db *sql.DB) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, files)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return provider, nil
}

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB) ([]Result, error) {
	provider, err := newProvider(db)
	if err != nil {
		return nil, err
	}
	applied, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}
	return toResults(applied), nil
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *sql.DB) (*Result, error) {
	provider, err := newProvider(db)
	if err != nil {
		return nil, err
	}
	reverted, err := provider.Down(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to roll back migration: %w", err)
	}
	if reverted == nil || reverted.Source == nil {
		return nil, nil
	}
	return &Result{Version: reverted.Source.Version, Source: reverted.Source.Path}, nil
}

func toResults(applied []*goose.MigrationResult) []Result {
	results := make([]Result, 0, len(applied))
	for _, r := range applied {
		if r == nil || r.Source == nil {
			continue
		}
		results = append(results, Result{Version: r.Source.Version, Source: r.Source.Path})
	}
	return results
}
