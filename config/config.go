package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the service settings, sourced from the environment
type Config struct {
	Port          string
	CatalogURL    string
	DataDir       string
	ReplyDelay    time.Duration
	GracePeriod   time.Duration
	CheckInterval time.Duration
}

// Load reads .env when present and assembles the configuration with
// defaults for anything unset.
func Load() Config {
	// Missing .env is fine; the environment may already be populated
	_ = godotenv.Load()

	return Config{
		Port:          getenv("PORT", "8080"),
		CatalogURL:    os.Getenv("CATALOG_URL"),
		DataDir:       getenv("DATA_DIR", "data"),
		ReplyDelay:    getduration("MANAGER_REPLY_DELAY", 3*time.Second),
		GracePeriod:   getduration("REGISTRATION_GRACE", 5*time.Minute),
		CheckInterval: getduration("REGISTRATION_CHECK_INTERVAL", 5*time.Minute),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
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
