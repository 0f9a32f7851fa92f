package ports

import (
	"context"

	"travel-time-service/internal/domain"
)

// Contract for querying travel times against an external distance API.
type TravelTimeProvider interface {
	// Run a single query. Request construction and transport problems
	// come back as errors; everything the remote service reports lands
	// inside the result instead.
	GetTravelTime(ctx context.Context, trip domain.Trip) (domain.TravelTime, error)

	// Run a whole batch concurrently, returning one result per trip in
	// trip order. Only request construction fails the batch; a trip
	// whose call fails becomes a failed result in its own slot.
	GetTravelTimes(ctx context.Context, trips []domain.Trip) ([]domain.TravelTime, error)
}
