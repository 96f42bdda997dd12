package db

import (
	"context"
)

// ListRecordLines returns every dataset line in insertion order.
func (d *DB) ListRecordLines(ctx context.Context) ([]string, error) {
	rows, err := d.Pool.Query(ctx, `SELECT line FROM dataset_records ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// InsertRecordLine appends a line to the dataset.
func (d *DB) InsertRecordLine(ctx context.Context, line string) error {
	_, err := d.Pool.Exec(ctx, `INSERT INTO dataset_records (line) VALUES ($1)`, line)
	return err
}
