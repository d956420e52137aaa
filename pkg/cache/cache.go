// Package cache defines the persistent key-value contract shared by all
// stores and a factory that selects a driver from configuration.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/startrack-app/startrack/pkg/cache/inmemory"
	"github.com/startrack-app/startrack/pkg/cache/redis"
	"github.com/startrack-app/startrack/pkg/config"
)

// NoExpiration asks the driver to keep the entry until it is overwritten or
// deleted. All persistence keys use it; the stores own their lifecycles.
const NoExpiration time.Duration = 0

// Cache is an async durable mapping from string keys to serialized blobs.
type Cache interface {
	// Set stores a key-value pair. A ttl of NoExpiration never expires.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Get returns the value for key. The boolean reports whether the key
	// was present; an absent key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Disconnect releases the driver's resources.
	Disconnect() error
}

// New builds a Cache from the configured driver.
func New(cfg *config.CacheConfig) (Cache, error) {
	switch cfg.Driver {
	case "redis":
		return redis.NewCache(&redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Database: cfg.Redis.Database,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
		})
	case "memory", "":
		return inmemory.NewCache(&inmemory.Config{
			DefaultExpiration: cfg.InMemory.DefaultExpiration,
			CleanupInterval:   cfg.InMemory.CleanupInterval,
		})
	default:
		return nil, fmt.Errorf("unsupported cache driver: %q", cfg.Driver)
	}
}

// Compile-time driver compliance checks
var (
	_ Cache = (*redis.RedisCache)(nil)
	_ Cache = (*inmemory.InMemoryCache)(nil)
)
