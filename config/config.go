package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

var ErrMissingRequiredEnv = errors.New("missing required environment variable")

type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	LogDir         string
	ConnectTimeout time.Duration
}

// Load reads the process configuration from the environment. MONGO_URI
// carries credentials and is never defaulted.
func Load() (Config, error) {
	uri, err := mustEnv("MONGO_URI")
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:           getEnv("PORT", "3000"),
		MongoURI:       uri,
		DBName:         getEnv("DB_NAME", "ats_db"),
		LogDir:         os.Getenv("LOG_DIR"),
		ConnectTimeout: getDurationEnv("MONGO_TIMEOUT", 5*time.Second),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
