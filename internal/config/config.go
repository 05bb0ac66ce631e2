package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds runtime configuration loaded from the environment.
type AppConfig struct {
	// Upstream credentials. With neither key set the app still works:
	// forecasts come from 7Timer and geocoding from the bundled catalog.
	OpenWeatherAPIKey string
	GoogleAPIKey      string

	// DemoMode skips all upstreams and always serves synthetic data.
	DemoMode bool

	// HTTPTimeout bounds outbound provider calls.
	HTTPTimeout time.Duration

	// SuggestLimit is the default number of search suggestions.
	SuggestLimit int

	// Outbound geocoding rate limit (token bucket).
	GeocodeCallsPerSec float64
	GeocodeBurst       int

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
	cfg.DemoMode = getenvBool("DEMO_MODE", false)

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.SuggestLimit = getenvInt("SUGGEST_LIMIT", 8)
	if cfg.SuggestLimit < 1 || cfg.SuggestLimit > 20 {
		return nil, fmt.Errorf("SUGGEST_LIMIT must be between 1 and 20")
	}

	cfg.GeocodeCallsPerSec = getenvFloat("GEOCODE_CALLS_PER_SEC", 3)
	cfg.GeocodeBurst = getenvInt("GEOCODE_BURST", 5)

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
