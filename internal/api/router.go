package api

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"travel-time-service/internal/api/handlers"
	"travel-time-service/internal/domain"
	"travel-time-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root. Archive and latest
// may be nil; the endpoints that need them answer 503 until configured.
func NewRouter(
	provider ports.TravelTimeProvider,
	archive ports.SampleArchive,
	latest ports.LatestStore,
	defaultMode domain.Mode,
	log *logrus.Logger,
) http.Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}

	mux := http.NewServeMux()

	travelTimes := &handlers.TravelTimeHandler{
		Provider: provider,
		Archive:  archive,
		Store:    latest,
		Log:      log,
	}
	rank := &handlers.RankHandler{
		Provider: provider,
		Log:      log,
	}
	samples := &handlers.SampleHandler{
		Archive:     archive,
		Store:       latest,
		DefaultMode: defaultMode,
		Log:         log,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/travel-times", travelTimes.Single)
	mux.HandleFunc("/travel-times/batch", travelTimes.Batch)
	mux.HandleFunc("/travel-times/latest", samples.Latest)
	mux.HandleFunc("/rank", rank.Rank)
	mux.HandleFunc("/samples", samples.List)

	return loggingMiddleware(log, mux)
}
