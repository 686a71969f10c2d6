// Package config loads editorbot.yaml. Every field has a working default so
// a missing file means "run with the in-memory stack".
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	LogLevel string `yaml:"log_level"`

	// Store selects the record store backend: "memory" or "redis".
	Store string `yaml:"store"`

	Catalog CatalogConfig `yaml:"catalog"`
	Redis   RedisConfig   `yaml:"redis"`
	HTTP    HTTPConfig    `yaml:"http"`
}

// CatalogConfig points at the remote template catalog. An empty URL selects
// the built-in offline catalog.
type CatalogConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// RedisConfig configures the redis record store and locker.
type RedisConfig struct {
	Addr       string `yaml:"addr"`
	Password   string `yaml:"password"`
	DB         int    `yaml:"db"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

// HTTPConfig configures the serve command.
type HTTPConfig struct {
	Port string `yaml:"port"`
}

// Default returns the zero-dependency configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Store:    "memory",
		Catalog: CatalogConfig{
			TimeoutSeconds: 10,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		HTTP: HTTPConfig{
			Port: "8080",
		},
	}
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. The TEMPLATE_API_URL environment variable overrides the
// catalog URL either way.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if url := os.Getenv("TEMPLATE_API_URL"); url != "" {
		cfg.Catalog.URL = url
	}

	return cfg, nil
}
