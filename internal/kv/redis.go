package kv

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "portfolio:"

// Redis stores values under the portfolio: prefix. Keys never expire,
// like the sqlite and memory backends.
type Redis struct {
	client *redis.Client
}

// OpenRedis connects to addr (localhost:6379 when empty) and pings it.
func OpenRedis(ctx context.Context, addr, password string, db int) (*Redis, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("kv: ping redis %s failed: %w", addr, err)
	}

	log.Printf("[kv] redis store ready at %s", addr)
	return NewRedis(client), nil
}

// NewRedis wraps an existing client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv: get %s: %w", key, err)
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("kv: set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
