package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"travel-time-service/internal/domain"
	"travel-time-service/internal/ports"
)

// CollectTravelTimes runs one batch of trips through the provider and
// records the outcomes. The query results are the product: persistence
// is best-effort, so an archive or latest-store failure is logged and
// never fails the collection. Results come back in trip order.
func CollectTravelTimes(
	ctx context.Context,
	trips []domain.Trip,
	provider ports.TravelTimeProvider,
	archive ports.SampleArchive,
	latest ports.LatestStore,
	log *logrus.Logger,
) ([]domain.TravelTime, error) {
	if provider == nil {
		return nil, errors.New("collect travel times: provider is nil")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	if len(trips) == 0 {
		return []domain.TravelTime{}, nil
	}

	results, err := provider.GetTravelTimes(ctx, trips)
	if err != nil {
		return nil, fmt.Errorf("collect travel times: %w", err)
	}

	recordedAt := time.Now().UTC()
	samples := make([]domain.Sample, 0, len(results))
	for _, result := range results {
		samples = append(samples, domain.NewSample(result, recordedAt))
	}

	if archive != nil {
		if err := archive.SaveAll(ctx, samples); err != nil {
			log.WithError(err).Warn("sample archive write failed")
		}
	}

	if latest != nil {
		for _, sample := range samples {
			// Only observed travel times are worth surfacing as "latest".
			if !sample.Success {
				continue
			}
			if err := latest.SetLatest(ctx, sample); err != nil {
				log.WithError(err).WithFields(logrus.Fields{
					"origin":      sample.Origin,
					"destination": sample.Destination,
				}).Warn("latest store write failed")
			}
		}
	}

	return results, nil
}
