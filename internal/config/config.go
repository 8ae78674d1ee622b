package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config is the process configuration shared by every cmd.
type Config struct {
	Port           string
	DataDir        string
	DriversCSV     string
	OrdersCSV      string
	RoutesCSV      string
	OutputCSV      string
	Source         string
	DatabaseURL    string
	RedisURL       string
	RunRatePerMin  int
	PlanningConfig string
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env when present and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	dataDir := Get("DATA_DIR", "data")

	cfg := Config{
		Port:           Get("PORT", "8080"),
		DataDir:        dataDir,
		DriversCSV:     Get("DRIVERS_CSV", filepath.Join(dataDir, "drivers.csv")),
		OrdersCSV:      Get("ORDERS_CSV", filepath.Join(dataDir, "orders.csv")),
		RoutesCSV:      Get("ROUTES_CSV", filepath.Join(dataDir, "routes.csv")),
		OutputCSV:      Get("OUTPUT_CSV", filepath.Join(dataDir, "assignments.csv")),
		Source:         strings.ToLower(strings.TrimSpace(Get("SOURCE", SourceCSV))),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisURL:       strings.TrimSpace(os.Getenv("REDIS_URL")),
		PlanningConfig: strings.TrimSpace(os.Getenv("PLANNING_CONFIG")),
	}

	rate, err := strconv.Atoi(Get("RUN_RATE_PER_MIN", "30"))
	if err != nil || rate <= 0 {
		return Config{}, fmt.Errorf("config: RUN_RATE_PER_MIN must be a positive integer, got %q", os.Getenv("RUN_RATE_PER_MIN"))
	}
	cfg.RunRatePerMin = rate

	switch cfg.Source {
	case SourceCSV:
	case SourcePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("config: DATABASE_URL is required when SOURCE=%s", SourcePostgres)
		}
	default:
		return Config{}, fmt.Errorf("config: unknown SOURCE %q (want %s or %s)", cfg.Source, SourceCSV, SourcePostgres)
	}

	return cfg, nil
}
