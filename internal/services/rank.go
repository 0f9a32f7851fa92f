package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"travel-time-service/internal/domain"
	"travel-time-service/internal/ports"
)

// RankedDestination pairs a requested destination with its travel time
// result, ordered from quickest to slowest.
type RankedDestination struct {
	Destination string
	Result      domain.TravelTime
}

// RankDestinations queries travel times from one origin to each
// destination and orders the destinations by ascending duration.
// Destinations whose lookup failed sort after all successful ones.
// The sort is stable, so ties and failures keep their input order.
func RankDestinations(
	ctx context.Context,
	origin string,
	destinations []string,
	provider ports.TravelTimeProvider,
) ([]RankedDestination, error) {
	if provider == nil {
		return nil, errors.New("rank destinations: provider is nil")
	}
	if origin == "" {
		return nil, errors.New("rank destinations: origin is empty")
	}
	if len(destinations) == 0 {
		return []RankedDestination{}, nil
	}

	trips := make([]domain.Trip, 0, len(destinations))
	for _, destination := range destinations {
		trips = append(trips, domain.Trip{Origin: origin, Destination: destination})
	}

	results, err := provider.GetTravelTimes(ctx, trips)
	if err != nil {
		return nil, fmt.Errorf("rank destinations: %w", err)
	}
	if len(results) != len(destinations) {
		return nil, fmt.Errorf("rank destinations: got %d results for %d destinations", len(results), len(destinations))
	}

	ranked := make([]RankedDestination, 0, len(destinations))
	for i, destination := range destinations {
		ranked = append(ranked, RankedDestination{Destination: destination, Result: results[i]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		di, iOK := rankDuration(ranked[i].Result)
		dj, jOK := rankDuration(ranked[j].Result)
		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return false
		}
		return di < dj
	})

	return ranked, nil
}

func rankDuration(t domain.TravelTime) (int, bool) {
	if !t.Success || t.Duration == nil {
		return 0, false
	}
	return *t.Duration, true
}
