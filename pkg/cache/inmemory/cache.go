package inmemory

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Config holds expiration settings for the in-memory driver, in seconds.
// A value of -1 disables expiration / cleanup.
type Config struct {
	DefaultExpiration int
	CleanupInterval   int
}

// InMemoryCache is a process-local cache driver backed by go-cache. Used in
// tests and single-instance deployments where redis is not available.
type InMemoryCache struct {
	client *gocache.Cache
}

// NewCache inits an InMemoryCache instance
func NewCache(config *Config) (*InMemoryCache, error) {
	if config == nil {
		return nil, fmt.Errorf("inmemory cache config is required")
	}

	defaultExpiration := gocache.NoExpiration
	if config.DefaultExpiration > 0 {
		defaultExpiration = time.Duration(config.DefaultExpiration) * time.Second
	}

	cleanupInterval := time.Duration(0)
	if config.CleanupInterval > 0 {
		cleanupInterval = time.Duration(config.CleanupInterval) * time.Second
	}

	return &InMemoryCache{
		client: gocache.New(defaultExpiration, cleanupInterval),
	}, nil
}

// Set - sets a key value pair in the cache
func (c *InMemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	if ttl == 0 {
		ttl = gocache.NoExpiration
	}
	c.client.Set(key, value, ttl)
	return nil
}

// Get - gets a value from the cache. The boolean reports key presence.
func (c *InMemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	val, found := c.client.Get(key)
	if !found {
		return "", false, nil
	}
	s, ok := val.(string)
	if !ok {
		return "", false, fmt.Errorf("unexpected value type %T for key %q", val, key)
	}
	return s, true, nil
}

// Delete - deletes a key from the cache
func (c *InMemoryCache) Delete(_ context.Context, key string) error {
	c.client.Delete(key)
	return nil
}

// Disconnect is a no-op for the in-memory driver.
func (c *InMemoryCache) Disconnect() error {
	c.client.Flush()
	return nil
}
