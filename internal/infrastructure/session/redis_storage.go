package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultSessionKey = "session:current"
	connectTimeout    = 5 * time.Second
)

// RedisConfig captures the settings for establishing a Redis connection.
type RedisConfig struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = connectTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisStorage persists the session record under a single Redis key, for
// deployments where the dashboard state must outlive the host.
type RedisStorage struct {
	client *redis.Client
	key    string
}

func NewRedisStorage(client *redis.Client, key string) *RedisStorage {
	if key == "" {
		key = defaultSessionKey
	}
	return &RedisStorage{client: client, key: key}
}

func (r *RedisStorage) Read(ctx context.Context) ([]byte, error) {
	payload, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session redis read: %w", err)
	}
	return payload, nil
}

func (r *RedisStorage) Write(ctx context.Context, payload []byte) error {
	// No TTL: the session lives until logout clears it.
	if err := r.client.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("session redis write: %w", err)
	}
	return nil
}

func (r *RedisStorage) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("session redis delete: %w", err)
	}
	return nil
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
