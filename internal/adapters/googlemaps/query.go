package googlemaps

import (
	"errors"
	"fmt"
	"strings"

	"travel-time-service/internal/domain"
)

const baseURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

// ErrConflictingTimes flags a trip carrying both time fields.
var ErrConflictingTimes = errors.New("cannot set both a departure and an arrival time")

// buildQuery assembles the request URL for one trip and records which
// optional parameters were actually appended, keyed by parameter name.
//
// The query string is concatenated in a fixed order so built URLs are
// reproducible byte for byte. Values are already wire-safe after
// location formatting; no further encoding is applied.
func buildQuery(cfg Config, trip domain.Trip) (string, map[string]string, error) {
	origin, err := FormatLocation(trip.Origin)
	if err != nil {
		return "", nil, fmt.Errorf("build query: origin: %w", err)
	}

	destination, err := FormatLocation(trip.Destination)
	if err != nil {
		return "", nil, fmt.Errorf("build query: destination: %w", err)
	}

	if trip.DepartureTime != "" && trip.ArrivalTime != "" {
		return "", nil, fmt.Errorf("build query: %w", ErrConflictingTimes)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "origins=%s&destinations=%s&mode=%s&key=%s",
		origin, destination, cfg.Mode, cfg.APIKey)

	applied := make(map[string]string, 4)

	departure := trip.DepartureTime
	if departure == "" && trip.ArrivalTime == "" {
		departure = "now"
	}
	if departure != "" {
		fmt.Fprintf(&sb, "&departure_time=%s", departure)
		applied["departure_time"] = departure
	} else {
		fmt.Fprintf(&sb, "&arrival_time=%s", trip.ArrivalTime)
		applied["arrival_time"] = trip.ArrivalTime
	}

	// Fixed option order; empty values are omitted, not sent blank.
	options := [...]struct{ name, value string }{
		{"language", cfg.Language},
		{"units", cfg.Units},
		{"avoid", cfg.Avoid},
		{"traffic_model", cfg.TrafficModel},
		{"transit_mode", cfg.TransitMode},
		{"transit_routing_preference", cfg.TransitRoutingPreference},
	}
	for _, opt := range options {
		if opt.value == "" {
			continue
		}
		fmt.Fprintf(&sb, "&%s=%s", opt.name, opt.value)
		applied[opt.name] = opt.value
	}

	return baseURL + "?" + sb.String(), applied, nil
}
