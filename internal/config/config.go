// Package config loads server settings from an optional YAML file with
// environment variable overrides. Environment values always win, so a
// deployment can run with no file at all.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Config holds the API server settings.
type Config struct {
	Addr           string   `yaml:"addr"`
	CacheCapacity  int      `yaml:"cache_capacity"`
	LogLevel       string   `yaml:"log_level"`
	CORSOrigins    []string `yaml:"cors_origins"`
	QuoteBaseURL   string   `yaml:"quote_base_url"`
	ChartBaseURL   string   `yaml:"chart_base_url"`
	RequestTimeout int      `yaml:"request_timeout_seconds"`
	Benchmark      string   `yaml:"benchmark_symbol"`
}

// Default returns the settings used when nothing is configured. Empty
// provider base URLs mean the client's built-in Yahoo endpoints.
func Default() Config {
	return Config{
		Addr:           ":8080",
		CacheCapacity:  256,
		LogLevel:       "info",
		CORSOrigins:    []string{"*"},
		RequestTimeout: 10,
		Benchmark:      "SPY",
	}
}

// Load reads the YAML file at path (skipped when path is empty or the file
// does not exist) and applies FINMETRICS_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if v := os.Getenv("FINMETRICS_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("FINMETRICS_CACHE_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid FINMETRICS_CACHE_CAPACITY: %w", err)
		}
		cfg.CacheCapacity = n
	}
	if v := os.Getenv("FINMETRICS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("FINMETRICS_BENCHMARK"); v != "" {
		cfg.Benchmark = v
	}

	return cfg, nil
}
