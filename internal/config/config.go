package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the console. Everything has a
// default, so the program runs with no .env and no environment at all.
type Config struct {
	CurrencySymbol string
	LogLevel       string
	SeedSampleData bool
}

// Load reads an optional .env file from path and then the environment.
// A missing .env is not an error.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}

	cfg.CurrencySymbol = os.Getenv("CURRENCY_SYMBOL")
	if cfg.CurrencySymbol == "" {
		cfg.CurrencySymbol = "₹"
	}

	cfg.LogLevel = os.Getenv("LOG_LEVEL")
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if v := os.Getenv("SEED_SAMPLE_DATA"); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED_SAMPLE_DATA value %q: %w", v, err)
		}
		cfg.SeedSampleData = seed
	}

	return cfg, nil
}
