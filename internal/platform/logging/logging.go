package logging

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds the process logger. level takes logrus level names
// ("debug", "info", "warn", ...); format is "text" or "json". Unknown
// values fall back to info/text rather than failing startup.
func New(level, format string) *logrus.Logger {
	log := logrus.New()

	parsed, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	if strings.EqualFold(strings.TrimSpace(format), "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}
