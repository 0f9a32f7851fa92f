package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"travel-time-service/internal/domain"
	"travel-time-service/internal/platform/obs"
)

// Postgres-backed implementation of the SampleArchive port. Rows are
// append-only observations; nothing here is read back to answer a live
// query.
type PostgresSampleArchive struct {
	DB  *sql.DB
	log *logrus.Logger
}

func NewPostgresSampleArchive(db *sql.DB, log *logrus.Logger) *PostgresSampleArchive {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &PostgresSampleArchive{DB: db, log: log}
}

// Persist a batch of samples in one transaction.
func (a *PostgresSampleArchive) SaveAll(ctx context.Context, samples []domain.Sample) (err error) {
	defer obs.Time(ctx, a.log, "archive.SaveAll")(&err)

	if a.DB == nil {
		return errors.New("sample archive: DB is nil")
	}

	if len(samples) == 0 {
		return nil
	}

	tx, err := a.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save samples: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO travel_samples (
		origin, destination, mode, success, status,
		distance_meters, duration_seconds, duration_traffic_seconds,
		recorded_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`)
	if err != nil {
		return fmt.Errorf("save samples: db prepare: %w", err)
	}
	defer stmt.Close()

	for i, s := range samples {
		_, err := stmt.ExecContext(
			ctx,
			s.Origin,
			s.Destination,
			string(s.Mode),
			s.Success,
			s.Status,
			nullableInt(s.DistanceMeters),
			nullableInt(s.DurationSeconds),
			nullableInt(s.DurationTrafficSeconds),
			s.RecordedAt,
		)
		if err != nil {
			return fmt.Errorf("save samples: insert sample #%d (%q -> %q): %w", i+1, s.Origin, s.Destination, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save samples: commit tx: %w", err)
	}

	return nil
}

// Return the most recently recorded samples, newest first. A limit of
// zero or less falls back to 50.
func (a *PostgresSampleArchive) ListRecent(ctx context.Context, limit int) (_ []domain.Sample, err error) {
	defer obs.Time(ctx, a.log, "archive.ListRecent")(&err)

	if a.DB == nil {
		return nil, errors.New("sample archive: DB is nil")
	}

	if limit <= 0 {
		limit = 50
	}

	q := `
	SELECT
		id, origin, destination, mode, success, status,
		distance_meters, duration_seconds, duration_traffic_seconds,
		recorded_at
	FROM travel_samples
	ORDER BY recorded_at DESC, id DESC
	LIMIT $1;
	`
	rows, err := a.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list samples: query travel_samples table: %w", err)
	}
	defer rows.Close()

	samples := make([]domain.Sample, 0, limit)
	for rows.Next() {
		var s domain.Sample
		var mode string
		var distance, duration, traffic sql.NullInt64

		err := rows.Scan(
			&s.ID, &s.Origin, &s.Destination, &mode, &s.Success, &s.Status,
			&distance, &duration, &traffic,
			&s.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list samples: scan row: %w", err)
		}

		s.Mode = domain.Mode(mode)
		s.DistanceMeters = fromNullInt(distance)
		s.DurationSeconds = fromNullInt(duration)
		s.DurationTrafficSeconds = fromNullInt(traffic)
		samples = append(samples, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list samples: row iteration: %w", err)
	}

	return samples, nil
}

func nullableInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func fromNullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
