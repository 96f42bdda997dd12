package dataset

import (
	"context"

	"matchmaker/internal/db"
)

// PostgresSource reads the dataset from the dataset_records table.
type PostgresSource struct {
	db *db.DB
}

// NewPostgresSource creates a Postgres-backed source.
func NewPostgresSource(database *db.DB) *PostgresSource {
	return &PostgresSource{db: database}
}

// Name returns "postgres".
func (s *PostgresSource) Name() string {
	return "postgres"
}

// Lines queries every record on every call.
func (s *PostgresSource) Lines(ctx context.Context) ([]string, error) {
	lines, err := s.db.ListRecordLines(ctx)
	if err != nil {
		return nil, unavailable("query dataset_records", err)
	}
	return lines, nil
}

// Close closes the connection pool.
func (s *PostgresSource) Close() error {
	s.db.Close()
	return nil
}
