package googlemaps

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"travel-time-service/internal/domain"
	"travel-time-service/internal/platform/obs"
	"travel-time-service/internal/ports"
)

// Client implements TravelTimeProvider against the Google Distance
// Matrix API.
//
// It coordinates:
//   - Location normalization into the API's wire form
//   - Request URL construction with a reproducible parameter order
//   - Concurrent batch dispatch with per-slot failure absorption
//   - Mode-tagged response parsing
//
// The client is safe for concurrent use; its Config never changes after
// construction.
type Client struct {
	cfg     Config
	fetcher ports.PayloadFetcher
	log     *logrus.Logger
}

func NewClient(cfg Config, fetcher ports.PayloadFetcher, log *logrus.Logger) (*Client, error) {
	if cfg.Mode == "" {
		cfg.Mode = domain.ModeDriving
	}
	if _, err := domain.ParseMode(string(cfg.Mode)); err != nil {
		return nil, fmt.Errorf("new client: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("new client: %w", err)
	}
	if fetcher == nil {
		return nil, errors.New("new client: fetcher is nil")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Client{cfg: cfg, fetcher: fetcher, log: log}, nil
}

// Mode reports the travel mode this client queries with.
func (c *Client) Mode() domain.Mode { return c.cfg.Mode }

// GetTravelTime runs one query synchronously. URL construction and
// transport problems are returned as errors; remote failures and
// malformed payloads land inside the result.
func (c *Client) GetTravelTime(ctx context.Context, trip domain.Trip) (_ domain.TravelTime, err error) {
	defer obs.Time(ctx, c.log, "googlemaps.GetTravelTime")(&err)

	url, applied, err := buildQuery(c.cfg, trip)
	if err != nil {
		return domain.TravelTime{}, err
	}

	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return domain.TravelTime{}, fmt.Errorf("get travel time: %w", err)
	}

	return ParseResponse(c.cfg.Mode, applied, body), nil
}

type builtQuery struct {
	url     string
	applied map[string]string
}

// GetTravelTimes dispatches a whole batch at once. Every URL is built
// up front so a malformed trip fails the batch before a single request
// is sent. The calls then all fire concurrently with no cap; a slot
// whose call fails becomes a failed result while its siblings keep
// going. Results come back in trip order, one per trip.
func (c *Client) GetTravelTimes(ctx context.Context, trips []domain.Trip) (_ []domain.TravelTime, err error) {
	defer obs.Time(ctx, c.log, "googlemaps.GetTravelTimes")(&err)

	built := make([]builtQuery, len(trips))
	for i, trip := range trips {
		url, applied, buildErr := buildQuery(c.cfg, trip)
		if buildErr != nil {
			return nil, fmt.Errorf("get travel times: trip %d: %w", i, buildErr)
		}
		built[i] = builtQuery{url: url, applied: applied}
	}

	results := make([]domain.TravelTime, len(trips))
	var wg sync.WaitGroup

	for i := range built {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()

			body, fetchErr := c.fetcher.Fetch(ctx, built[slot].url)
			if fetchErr != nil {
				c.log.WithError(fetchErr).WithField("slot", slot).
					Warn("travel time request failed")
				// The slot absorbs its own transport failure so the
				// rest of the batch completes normally.
				results[slot] = domain.TravelTime{
					Mode:    c.cfg.Mode,
					Status:  fmt.Sprintf("transport failed: %v", fetchErr),
					Applied: built[slot].applied,
				}
				return
			}

			results[slot] = ParseResponse(c.cfg.Mode, built[slot].applied, body)
		}(i)
	}

	wg.Wait()

	return results, nil
}
