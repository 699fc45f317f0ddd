// Package config provides environment-driven configuration for FrameFlow Core.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Backend names accepted for KV_BACKEND.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds runtime configuration. Environment variables are parsed
// from the FRAMEFLOW_ prefix, e.g. FRAMEFLOW_DATA_DIR.
type Config struct {
	// DataDir is where the sqlite-backed key-value store keeps its file.
	DataDir string `envconfig:"DATA_DIR" default:"./data"`

	// LogLevel follows logrus level names.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// KVBackend selects the persistence backend: sqlite, redis or memory.
	KVBackend string `envconfig:"KV_BACKEND" default:"sqlite"`

	// RedisAddr is used when KVBackend is redis.
	RedisAddr string `envconfig:"REDIS_ADDR" default:"localhost:6379"`

	// AllowEmptyOnCreate permits creating a collection with no photos,
	// leaving the user to add them in a follow-up step.
	AllowEmptyOnCreate bool `envconfig:"ALLOW_EMPTY_ON_CREATE" default:"false"`
}

// Load parses configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("frameflow", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.KVBackend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown KV backend %q", c.KVBackend)
	}
	if c.KVBackend == BackendSQLite && c.DataDir == "" {
		return fmt.Errorf("data dir is required for the sqlite backend")
	}
	if c.KVBackend == BackendRedis && c.RedisAddr == "" {
		return fmt.Errorf("redis address is required for the redis backend")
	}
	return nil
}
