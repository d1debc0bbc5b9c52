// Package config loads service configuration from an optional YAML
// file with environment variable overrides.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/duynguyendang/stringlab/pkg/common/errors"
)

// Config holds the runtime settings for the service.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`
	// DatabasePath is the SQLite file path, or ":memory:" for the
	// in-process database.
	DatabasePath string `yaml:"database_path"`
	// LogJSON switches the logger to JSON structured output.
	LogJSON bool `yaml:"log_json"`
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() Config {
	return Config{
		Addr:         ":8080",
		DatabasePath: "./strings.db",
	}
}

// Load reads the YAML file at path (skipped when path is empty) and
// then applies environment overrides: PORT, DATABASE_PATH, LOG_JSON.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "failed to read config file")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrap(err, "failed to parse config file")
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if dbPath := os.Getenv("DATABASE_PATH"); dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	if os.Getenv("LOG_JSON") == "true" {
		cfg.LogJSON = true
	}

	return cfg, nil
}
