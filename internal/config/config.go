// Package config loads the service configuration from YAML with environment
// overrides for secrets.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoDatasetArtifact = errors.New("config missing artifacts.dataset")
	ErrNoCatalogArtifact = errors.New("config missing artifacts.catalog")
	ErrNoSchemaArtifact  = errors.New("config missing artifacts.schema")
	ErrNoModelArtifact   = errors.New("config missing artifacts.model")
	ErrBadPort           = errors.New("config server.port out of range")
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		CORSOrigins     []string      `yaml:"cors_origins"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Artifacts struct {
		Dataset  string `yaml:"dataset"`
		Catalog  string `yaml:"catalog"`
		Schema   string `yaml:"schema"`
		Model    string `yaml:"model"`
		Scaler   string `yaml:"scaler"`
		Holidays string `yaml:"holidays"`
	} `yaml:"artifacts"`
	Supabase struct {
		URL     string        `yaml:"url"`
		APIKey  string        `yaml:"api_key"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"supabase"`
	Forecast struct {
		Tolerance float64 `yaml:"tolerance"`
	} `yaml:"forecast"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	if v := os.Getenv("STAYSYNC_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse STAYSYNC_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("SUPABASE_URL"); v != "" {
		c.Supabase.URL = v
	}
	if v := os.Getenv("SUPABASE_API_KEY"); v != "" {
		c.Supabase.APIKey = v
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 9000
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Supabase.Timeout == 0 {
		c.Supabase.Timeout = 10 * time.Second
	}
}

// Validate checks the required fields.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return ErrBadPort
	}
	if c.Artifacts.Dataset == "" {
		return ErrNoDatasetArtifact
	}
	if c.Artifacts.Catalog == "" {
		return ErrNoCatalogArtifact
	}
	if c.Artifacts.Schema == "" {
		return ErrNoSchemaArtifact
	}
	if c.Artifacts.Model == "" {
		return ErrNoModelArtifact
	}
	return nil
}

// SupabaseConfigured reports whether the remote profile source is usable.
func (c *Config) SupabaseConfigured() bool {
	return c.Supabase.URL != "" && c.Supabase.APIKey != ""
}
