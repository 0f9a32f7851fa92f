package googlemaps

import (
	"context"
	"fmt"

	"travel-time-service/internal/domain"
)

type MockTrip struct {
	From, To string
	Meters   int
	Seconds  int
}

// MockTravelTimeProvider serves canned driving results keyed by
// origin|destination. Useful for tests and local runs without an API
// key. Trips whose locations are not plain strings or not registered
// fail the same way unroutable pairs do.
type MockTravelTimeProvider struct {
	m map[string]domain.TravelTime
}

func NewMockTravelTimeProvider(trips []MockTrip) *MockTravelTimeProvider {
	m := make(map[string]domain.TravelTime, len(trips))
	for _, trip := range trips {
		meters := trip.Meters
		seconds := trip.Seconds
		traffic := trip.Seconds
		m[trip.From+"|"+trip.To] = domain.TravelTime{
			Mode:              domain.ModeDriving,
			Success:           true,
			Status:            domain.StatusOK,
			Origin:            trip.From,
			Destination:       trip.To,
			Distance:          &meters,
			Duration:          &seconds,
			DurationInTraffic: &traffic,
		}
	}
	return &MockTravelTimeProvider{m: m}
}

func (p *MockTravelTimeProvider) GetTravelTime(ctx context.Context, trip domain.Trip) (domain.TravelTime, error) {
	origin, err := FormatLocation(trip.Origin)
	if err != nil {
		return domain.TravelTime{}, fmt.Errorf("mock travel time: origin: %w", err)
	}
	destination, err := FormatLocation(trip.Destination)
	if err != nil {
		return domain.TravelTime{}, fmt.Errorf("mock travel time: destination: %w", err)
	}

	from, _ := trip.Origin.(string)
	to, _ := trip.Destination.(string)

	result, ok := p.m[from+"|"+to]
	if !ok {
		return domain.TravelTime{
			Mode:        domain.ModeDriving,
			Status:      "NOT_FOUND",
			Origin:      origin,
			Destination: destination,
		}, nil
	}

	return result, nil
}

func (p *MockTravelTimeProvider) GetTravelTimes(ctx context.Context, trips []domain.Trip) ([]domain.TravelTime, error) {
	results := make([]domain.TravelTime, len(trips))
	for i, trip := range trips {
		result, err := p.GetTravelTime(ctx, trip)
		if err != nil {
			return nil, fmt.Errorf("mock travel times: trip %d: %w", i, err)
		}
		results[i] = result
	}
	return results, nil
}
