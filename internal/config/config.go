// Package config provides configuration for the accounting service.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level accountsio.yaml configuration.
type Config struct {
	Server   ServerConfig `yaml:"server"`
	Currency string       `yaml:"currency"`
	Log      LogConfig    `yaml:"log"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level  string `yaml:"level"` // debug, info, warn, error
	Pretty bool   `yaml:"pretty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Currency: "₹",
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}

// Load reads accountsio.yaml from path, falling back to defaults when the
// file does not exist, then applies environment overrides. A .env file in
// the working directory is honored.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No config file is fine; env and defaults cover everything.
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	_ = godotenv.Load()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("ACCOUNTSIO_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("ACCOUNTSIO_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing ACCOUNTSIO_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("ACCOUNTSIO_CURRENCY"); v != "" {
		c.Currency = v
	}
	if v := os.Getenv("ACCOUNTSIO_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}
