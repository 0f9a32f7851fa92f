package ports

import (
	"context"
	"errors"

	"travel-time-service/internal/domain"
)

// ErrSampleNotFound reports that no sample is stored for the requested
// pair.
var ErrSampleNotFound = errors.New("sample not found")

// Port: keeps only the most recent sample per mode and
// origin/destination pair.
type LatestStore interface {
	SetLatest(ctx context.Context, sample domain.Sample) error

	// Return the last stored sample for the pair, or ErrSampleNotFound.
	GetLatest(ctx context.Context, mode domain.Mode, origin, destination string) (domain.Sample, error)
}
