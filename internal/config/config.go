package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Environment names
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Server holds the server process configuration, read from the environment
type Server struct {
	Env     string `env:"CLUBREG_ENV"`
	NodeEnv string `env:"NODE_ENV"`

	Host      string `env:"CLUBREG_HOST"`
	Port      int    `env:"CLUBREG_PORT" envDefault:"8000"`
	PublicURL string `env:"CLUBREG_PUBLIC_URL"`

	LogLevel string `env:"CLUBREG_LOG_LEVEL" envDefault:"info"`

	Storage  string `env:"CLUBREG_STORAGE" envDefault:"memory"`
	RedisURL string `env:"REDIS_URL"`

	ReadTimeout     time.Duration `env:"CLUBREG_READ_TIMEOUT"     envDefault:"15s"`
	WriteTimeout    time.Duration `env:"CLUBREG_WRITE_TIMEOUT"    envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"CLUBREG_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load parses the server configuration from the environment and validates it
func Load() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that the configuration is usable
func (c Server) Validate() error {
	switch c.Storage {
	case StorageMemory:
	case StorageRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL required when CLUBREG_STORAGE=%s", StorageRedis)
		}
	default:
		return fmt.Errorf("invalid CLUBREG_STORAGE %q: must be %q or %q", c.Storage, StorageMemory, StorageRedis)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid CLUBREG_PORT %d", c.Port)
	}
	return nil
}

// Environment returns CLUBREG_ENV, falling back to NODE_ENV, then development
func (c Server) Environment() string {
	switch {
	case c.Env != "":
		return c.Env
	case c.NodeEnv != "":
		return c.NodeEnv
	default:
		return EnvDevelopment
	}
}

// IsProduction reports whether the server runs in production mode
func (c Server) IsProduction() bool {
	return c.Environment() == EnvProduction
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info
func (c Server) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
