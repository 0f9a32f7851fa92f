package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"travel-time-service/internal/adapters/googlemaps"
	"travel-time-service/internal/adapters/livestore"
	"travel-time-service/internal/adapters/store"
	"travel-time-service/internal/api"
	"travel-time-service/internal/config"
	"travel-time-service/internal/domain"
	"travel-time-service/internal/platform/db"
	"travel-time-service/internal/platform/logging"
	"travel-time-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (Google Maps, Postgres, Redis) behind ports
// and starts the HTTP server.
func main() {
	dotenvErr := godotenv.Load()

	log := logging.New(config.Get("LOG_LEVEL", "info"), config.Get("LOG_FORMAT", "text"))
	if dotenvErr != nil {
		log.Info("no .env file found (using environment variables)")
	}

	apiKey := os.Getenv("API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Fatal("API_KEY is required")
	}

	client, err := buildClient(apiKey, log)
	if err != nil {
		log.WithError(err).Fatal("client construction failed")
	}

	// The archive and latest store are optional observation backends.
	// Without them the server still answers live queries.
	var archive ports.SampleArchive
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		sqlDB, err := db.Open(databaseURL)
		if err != nil {
			log.WithError(err).Fatal("database open failed")
		}
		defer sqlDB.Close()
		archive = store.NewPostgresSampleArchive(sqlDB, log)
	} else {
		log.Info("DATABASE_URL not set, sample archive disabled")
	}

	var latest ports.LatestStore
	if redisAddr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); redisAddr != "" {
		redisStore, err := livestore.NewRedisLatestStore(redisAddr, config.Duration("LATEST_TTL", 24*time.Hour))
		if err != nil {
			log.WithError(err).Fatal("redis connect failed")
		}
		defer redisStore.Close()
		latest = redisStore
	} else {
		log.Info("REDIS_ADDR not set, latest store disabled")
	}

	router := api.NewRouter(client, archive, latest, client.Mode(), log)

	port := config.Get("PORT", "8080")
	log.WithField("addr", ":"+port).Info("server listening")

	// Write timeout sized for a full batch fan-out against the remote API.
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
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
