package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/clubregistry/internal/config"
	"github.com/mcoot/clubregistry/internal/dependencies/idgen"
	"github.com/mcoot/clubregistry/internal/model"
	"github.com/mcoot/clubregistry/internal/services/registry"
	"github.com/mcoot/clubregistry/internal/storage"
	"github.com/mcoot/clubregistry/internal/storage/memory"
	redisstorage "github.com/mcoot/clubregistry/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	IDs idgen.Generator

	// Services
	Registry *registry.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SkipFixtures leaves the registry empty instead of loading the fixture users
	SkipFixtures bool
}

// New creates a new application with all dependencies wired and fixtures seeded
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageMemory
	}

	switch storageType {
	case config.StorageMemory:
		store = memory.New()
	case config.StorageRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app := newWithDependencies(store, idgen.New(), logger)

	if !cfg.SkipFixtures {
		if err := app.Registry.Seed(ctx, model.FixtureUsers()...); err != nil {
			return nil, fmt.Errorf("seed fixtures: %w", err)
		}
	}

	logger.Info("application ready", slog.String("storage", storageType))
	return app, nil
}

// Close releases storage resources that need it
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, ids idgen.Generator, logger *slog.Logger) *App {
	return &App{
		Storage:  store,
		IDs:      ids,
		Registry: registry.New(store, ids, logger),
	}
}
