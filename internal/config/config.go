package config

import (
	"os"
	"strconv"

	"predmaint/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data     DataProcessingConfig
	Pipeline PipelineConfig
	Database DatabaseConfig
}

// DataProcessingConfig holds the paths the preprocessing pipeline consumes
type DataProcessingConfig struct {
	DataPath string // raw dataset, CSV or XLSX
	RootDir  string // directory the four artifacts are written into
}

// PipelineConfig holds the reproducibility settings
type PipelineConfig struct {
	Seed         int64
	TestFraction float64
}

// DatabaseConfig holds the optional run ledger connection. An empty URL
// disables the ledger.
type DatabaseConfig struct {
	URL string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data: DataProcessingConfig{
			DataPath: os.Getenv("DATA_PATH"),
			RootDir:  getEnvOrDefault("ROOT_DIR", "artifacts"),
		},
		Pipeline: PipelineConfig{
			Seed:         getEnvInt64OrDefault("SPLIT_SEED", 42),
			TestFraction: getEnvFloatOrDefault("TEST_FRACTION", 0.2),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.DataPath == "" {
		return errors.ConfigInvalid("DATA_PATH is required")
	}
	if config.Data.RootDir == "" {
		return errors.ConfigInvalid("ROOT_DIR is required")
	}
	if config.Pipeline.TestFraction <= 0 || config.Pipeline.TestFraction >= 1 {
		return errors.ConfigInvalid("TEST_FRACTION must be in (0, 1)")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
