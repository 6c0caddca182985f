package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger builds the service logger. JSON output in anything but
// development so log aggregation stays parseable.
func InitLogger(cfg *Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if cfg.Server.Env == "development" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.InfoLevel)
	}

	return log
}
