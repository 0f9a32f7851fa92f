package config

import (
	"os"
	"time"
)

// Get returns the environment variable's value, or fallback when it is
// unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Duration parses the environment variable as a time.Duration ("15s",
// "24h"). Unset or unparseable values yield fallback.
func Duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
