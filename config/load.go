package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML configuration file, applies defaults, and
// validates the result.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FromEnv builds a Config from REDLOG_* environment variables. A .env
// file in the working directory is loaded first when present, so local
// development overrides work without exporting anything.
func FromEnv() Config {
	_ = godotenv.Load()

	cfg := Config{
		Level:           os.Getenv("REDLOG_LEVEL"),
		Theme:           os.Getenv("REDLOG_THEME"),
		Output:          os.Getenv("REDLOG_OUTPUT"),
		Format:          os.Getenv("REDLOG_FORMAT"),
		TimestampFormat: os.Getenv("REDLOG_TIMESTAMP_FORMAT"),
	}
	cfg.ApplyDefaults()
	return cfg
}
