package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"travel-time-service/internal/adapters/googlemaps"
	"travel-time-service/internal/adapters/livestore"
	"travel-time-service/internal/adapters/store"
	"travel-time-service/internal/api/dto"
	"travel-time-service/internal/config"
	"travel-time-service/internal/domain"
	"travel-time-service/internal/platform/db"
	"travel-time-service/internal/platform/logging"
	"travel-time-service/internal/ports"
	"travel-time-service/internal/services"
)

// collect runs one batch of trips from a JSON file through the provider
// and records the outcomes, then exits. Suited to cron.
func main() {
	tripsFlag := flag.String("trips", "", "path to the trips JSON file (overrides TRIPS_PATH)")
	flag.Parse()

	dotenvErr := godotenv.Load()

	log := logging.New(config.Get("LOG_LEVEL", "info"), config.Get("LOG_FORMAT", "text"))
	if dotenvErr != nil {
		log.Info("no .env file found (using environment variables)")
	}

	apiKey := os.Getenv("API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Fatal("API_KEY is required")
	}

	tripsPath := *tripsFlag
	if tripsPath == "" {
		tripsPath = config.Get("TRIPS_PATH", "data/trips.json")
	}

	trips, err := loadTrips(tripsPath)
	if err != nil {
		log.WithError(err).Fatal("trips file rejected")
	}

	client, err := buildClient(apiKey, log)
	if err != nil {
		log.WithError(err).Fatal("client construction failed")
	}

	var archive ports.SampleArchive
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		sqlDB, err := db.Open(databaseURL)
		if err != nil {
			log.WithError(err).Fatal("database open failed")
		}
		defer sqlDB.Close()
		archive = store.NewPostgresSampleArchive(sqlDB, log)
	}

	var latest ports.LatestStore
	if redisAddr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); redisAddr != "" {
		redisStore, err := livestore.NewRedisLatestStore(redisAddr, config.Duration("LATEST_TTL", 24*time.Hour))
		if err != nil {
			log.WithError(err).Fatal("redis connect failed")
		}
		defer redisStore.Close()
		latest = redisStore
	}

	log.WithFields(logrus.Fields{"path": tripsPath, "trips": len(trips)}).Info("collecting travel times")

	results, err := services.CollectTravelTimes(context.Background(), trips, client, archive, latest, log)
	if err != nil {
		log.WithError(err).Fatal("collection failed")
	}

	for i, result := range results {
		entry := log.WithFields(logrus.Fields{
			"trip":        i,
			"origin":      result.Origin,
			"destination": result.Destination,
			"status":      result.Status,
		})
		if meters, ok := result.Meters(); ok && result.Duration != nil {
			entry = entry.WithFields(logrus.Fields{
				"meters":  meters,
				"seconds": *result.Duration,
			})
		}
		if result.Success {
			entry.Info("travel time collected")
		} else {
			entry.Warn("travel time lookup failed")
		}
	}
}

func buildClient(apiKey string, log *logrus.Logger) (*googlemaps.Client, error) {
	cfg := googlemaps.DefaultConfig(apiKey)
	cfg.Mode = domain.Mode(config.Get("MODE", string(cfg.Mode)))
	cfg.Language = config.Get("LANGUAGE", cfg.Language)
	cfg.Units = config.Get("UNITS", cfg.Units)
	cfg.Avoid = config.Get("AVOID", cfg.Avoid)
	cfg.TrafficModel = config.Get("TRAFFIC_MODEL", cfg.TrafficModel)
	cfg.TransitMode = config.Get("TRANSIT_MODE", cfg.TransitMode)
	cfg.TransitRoutingPreference = config.Get("TRANSIT_ROUTING_PREFERENCE", cfg.TransitRoutingPreference)

	fetcher := googlemaps.NewHTTPFetcher(config.Duration("HTTP_TIMEOUT", 0))
	return googlemaps.NewClient(cfg, fetcher, log)
}

// loadTrips reads the trips file: a JSON array of objects shaped like
// the API's trip requests (origin/destination as string or list of
// strings, optional departure_time or arrival_time).
func loadTrips(path string) ([]domain.Trip, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load trips: %w", err)
	}

	var entries []dto.TripRequest
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("load trips: parse %q: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("load trips: %q contains no trips", path)
	}

	trips := make([]domain.Trip, 0, len(entries))
	for i, entry := range entries {
		if entry.Origin.Value == nil || entry.Destination.Value == nil {
			return nil, fmt.Errorf("load trips: trip %d: origin and destination are required", i)
		}
		trips = append(trips, domain.Trip{
			Origin:        entry.Origin.Value,
			Destination:   entry.Destination.Value,
			DepartureTime: entry.DepartureTime,
			ArrivalTime:   entry.ArrivalTime,
		})
	}

	return trips, nil
}
