// Package config loads settings for both CLIs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds runtime settings. Values come from Default, then the YAML
// file, then environment variables.
type Config struct {
	LogLevel    string `yaml:"logLevel,omitempty" env:"LOG_LEVEL"`
	Storage     string `yaml:"storage,omitempty" env:"STORAGE_BACKEND"`
	UsersFile   string `yaml:"usersFile,omitempty" env:"USERS_FILE"`
	DBPath      string `yaml:"dbPath,omitempty" env:"DB_PATH"`
	HistoryFile string `yaml:"historyFile,omitempty" env:"HISTORY_FILE"`
	MetricsAddr string `yaml:"metricsAddr,omitempty" env:"METRICS_ADDR"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:  "info",
		Storage:   BackendJSON,
		UsersFile: "./data/users.json",
		DBPath:    "./data/users.db",
	}
}

// Load reads the YAML file at path (a missing file is not an error) and
// applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks settings that have a fixed set of values.
func (c Config) Validate() error {
	switch c.Storage {
	case BackendJSON, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q (want %q or %q)", c.Storage, BackendJSON, BackendSQLite)
	}
}
