package main

import (
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"travel-time-service/internal/adapters/store"
	"travel-time-service/internal/config"
	"travel-time-service/internal/platform/db"
	"travel-time-service/internal/platform/logging"
)

// dbtool initializes the sample archive schema. Run it once before
// pointing a server or collector at a fresh database.
func main() {
	dotenvErr := godotenv.Load()

	log := logging.New(config.Get("LOG_LEVEL", "info"), config.Get("LOG_FORMAT", "text"))
	if dotenvErr != nil {
		log.Info("no .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	sqlDB, err := db.Open(databaseURL)
	if err != nil {
		log.WithError(err).Fatal("database open failed")
	}
	defer sqlDB.Close()

	log.Info("initializing database schema")
	if err := store.InitSchema(sqlDB); err != nil {
		log.WithError(err).Fatal("schema initialization failed")
	}
	log.Info("schema ready")
}
