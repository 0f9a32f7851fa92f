package ports

import (
	"context"

	"travel-time-service/internal/domain"
)

// Port: append-only persistence for collected travel samples. The
// archive is an observation log; it is never consulted to answer a
// live query.
type SampleArchive interface {
	// Persist a batch of samples in one transaction.
	SaveAll(ctx context.Context, samples []domain.Sample) error

	// Return the most recently recorded samples, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.Sample, error)
}
