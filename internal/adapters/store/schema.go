package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema for the sample archive.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSamplesQuery := `
	CREATE TABLE IF NOT EXISTS travel_samples (
		id BIGSERIAL PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		mode TEXT NOT NULL,
		success BOOLEAN NOT NULL,
		status TEXT NOT NULL,
		distance_meters INTEGER,
		duration_seconds INTEGER,
		duration_traffic_seconds INTEGER,
		recorded_at TIMESTAMPTZ NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_travel_samples_pair_recorded
	ON travel_samples(origin, destination, recorded_at DESC);
	`

	statements := []string{
		createSamplesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
