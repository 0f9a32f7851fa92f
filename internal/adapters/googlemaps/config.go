package googlemaps

import (
	"errors"
	"fmt"
	"strings"

	"travel-time-service/internal/domain"
)

// ErrTransitOnlyOption flags transit options combined with a
// non-transit mode.
var ErrTransitOnlyOption = errors.New("transit_mode and transit_routing_preference require transit mode")

// Per-client query settings. A Config is fixed at client construction;
// every query the client runs shares its mode and options. Option
// fields left empty are omitted from built URLs rather than sent blank.
type Config struct {
	APIKey                   string
	Mode                     domain.Mode
	Language                 string
	Units                    string // "imperial" or "metric"
	Avoid                    string // tolls, highways, ferries, indoor
	TrafficModel             string // best_guess, pessimistic, optimistic (driving only)
	TransitMode              string // subway, bus, train, tram, rail
	TransitRoutingPreference string
}

// DefaultConfig mirrors the remote API's documented defaults: driving
// mode, English, imperial units, best-guess traffic.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:       apiKey,
		Mode:         domain.ModeDriving,
		Language:     "en",
		Units:        "imperial",
		TrafficModel: "best_guess",
	}
}

func (c Config) validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return errors.New("api key is empty")
	}

	if (c.TransitMode != "" || c.TransitRoutingPreference != "") && c.Mode != domain.ModeTransit {
		return fmt.Errorf("%w (mode is %q)", ErrTransitOnlyOption, c.Mode)
	}

	return nil
}
