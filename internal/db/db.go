package db

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"matchmaker/migrations"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// SeedDevRecords inserts sample records for development when the table is empty.
func (d *DB) SeedDevRecords(ctx context.Context) error {
	var count int64
	if err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM dataset_records`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}
	if count > 0 {
		return nil
	}

	lines := []string{
		"email,name,house",
		"alice@example.com,Alice,House A",
		"bob@example.com,Bob,House B",
		"carol@example.com,Carol,House C",
	}

	for _, line := range lines {
		if err := d.InsertRecordLine(ctx, line); err != nil {
			return fmt.Errorf("failed to seed record %q: %w", line, err)
		}
	}

	return nil
}
