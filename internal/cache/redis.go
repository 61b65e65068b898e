package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis stores entries in a Redis server with a TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedis connects to the server described by cfg and verifies it with a
// ping.
func NewRedis(ctx context.Context, cfg RedisConfig, ttl time.Duration, logger *zap.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	r := NewRedisFromClient(client, ttl, logger)
	r.logger.Info("connected to redis recommendation cache",
		zap.String("op", "cache.NewRedis"),
		zap.String("address", cfg.Address),
		zap.Int("db", cfg.DB),
	)
	return r, nil
}

// NewRedisFromClient wraps an existing client.
func NewRedisFromClient(client *redis.Client, ttl time.Duration, logger *zap.Logger) *Redis {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Redis{client: client, ttl: ttl, logger: logger}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
