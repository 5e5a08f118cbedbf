// Package config builds the application configuration from the environment.
// The resulting Config is created once at startup and read-only thereafter.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jbllb61/GUI-Health-App/internal/domain"
)

// Storage drivers.
const (
	DriverJSON     = "json"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds the application configuration.
type Config struct {
	Addr          string
	StorageDriver string
	DataDir       string
	UsersFile     string
	DatabaseURL   string
	LogLevel      string
	Thresholds    domain.Thresholds
}

// Load reads configuration from environment variables, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("ADDR", ":8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", DriverJSON),
		DataDir:       getEnv("DATA_DIR", "user_data"),
		UsersFile:     getEnv("USERS_FILE", "users.json"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	switch cfg.StorageDriver {
	case DriverJSON, DriverPostgres, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	if cfg.StorageDriver == DriverPostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required with STORAGE_DRIVER=postgres")
	}

	t := domain.DefaultThresholds()
	var err error
	if t.UnderweightMax, err = getEnvFloat("BMI_UNDERWEIGHT_MAX", t.UnderweightMax); err != nil {
		return nil, err
	}
	if t.NormalMax, err = getEnvFloat("BMI_NORMAL_MAX", t.NormalMax); err != nil {
		return nil, err
	}
	if t.OverweightMax, err = getEnvFloat("BMI_OVERWEIGHT_MAX", t.OverweightMax); err != nil {
		return nil, err
	}
	if !(t.UnderweightMax < t.NormalMax && t.NormalMax < t.OverweightMax) {
		return nil, fmt.Errorf("BMI thresholds must be strictly increasing, got %+v", t)
	}
	cfg.Thresholds = t

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
