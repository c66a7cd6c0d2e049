// Package config holds the service runtime configuration, layered from
// defaults, an optional YAML file, and environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime configuration of the service.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `yaml:"addr"`
	// LogLevel is the log level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// MaxUploadBytes caps the accepted request body size. Zero disables the
	// cap.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:     ":5000",
		LogLevel: "info",
	}
}

// Load builds the effective configuration: defaults, then the optional YAML
// file at path, then EXCELPARSE_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("EXCELPARSE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("EXCELPARSE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("EXCELPARSE_MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MaxUploadBytes = n
		}
	}
}
