package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
)

// Config holds all required info for initializing redis driver
type Config struct {
	Host     string
	Port     string
	Database int32
	Username string
	Password string
}

// RedisCache holds the handler for the redisclient and auxiliary info
type RedisCache struct {
	client redis.UniversalClient
}

// NewCache inits a RedisCache instance
func NewCache(config *Config) (*RedisCache, error) {
	if config == nil {
		config = getDefaultConfig()
	}

	addr := fmt.Sprintf("%s:%s", config.Host, config.Port)
	options := &redis.UniversalOptions{
		Addrs:    []string{addr},
		Username: config.Username,
		Password: config.Password,
		DB:       int(config.Database),
	}

	redisClient := redis.NewUniversalClient(options)

	// Enable OpenTelemetry instrumentation
	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		return nil, fmt.Errorf("failed to instrument redis: %w", err)
	}
	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		return nil, fmt.Errorf("failed to instrument redis metrics: %w", err)
	}

	rc := RedisCache{
		client: redisClient,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := rc.client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("ping failed: %w", err)
	}

	return &rc, nil
}

// NewCacheWithClient wraps an existing client. Used by tests that run
// against an embedded redis server.
func NewCacheWithClient(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

func getDefaultConfig() *Config {
	return &Config{
		Username: "",
		Host:     "localhost",
		Port:     "6379",
		Database: 0,
		Password: "",
	}
}

// Set - sets a key value pair in redis
func (rc *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return rc.client.Set(ctx, key, value, ttl).Err()
}

// Get - gets a value from redis. The boolean reports key presence.
func (rc *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := rc.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

// Delete - deletes a key from redis
func (rc *RedisCache) Delete(ctx context.Context, key string) error {
	return rc.client.Del(ctx, key).Err()
}

// Disconnect ... disconnects from the redis server
func (rc *RedisCache) Disconnect() error {
	err := rc.client.Close()
	if err != nil {
		return err
	}
	return nil
}
