// Package config loads storefront configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config carries everything the binaries need at startup.
type Config struct {
	// APIOrigin is the backend origin catalog and orders go to.
	APIOrigin string `yaml:"api_origin"`
	// CDNOrigin is prepended to catalog image paths.
	CDNOrigin string `yaml:"cdn_origin"`
	// Listen is the frontend listen address.
	Listen string `yaml:"listen"`
	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		APIOrigin: "http://localhost:8081",
		CDNOrigin: "http://localhost:8081/content/weblarek",
		Listen:    ":8080",
	}
}

// Load reads the config file at path (optional; pass "" for defaults)
// and applies LAREK_* environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	if cfg.APIOrigin == "" {
		return Config{}, fmt.Errorf("config: api_origin cannot be empty")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LAREK_API_ORIGIN"); v != "" {
		cfg.APIOrigin = v
	}
	if v := os.Getenv("LAREK_CDN_ORIGIN"); v != "" {
		cfg.CDNOrigin = v
	}
	if v := os.Getenv("LAREK_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("LAREK_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}
