// Package kv provides the small string key-value stores the portfolio
// persists view preferences in.
package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownBackend = errors.New("kv: unknown store backend")

// Store is a string key-value store. Get reports a missing key with
// ok == false and a nil error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}

type Options struct {
	Backend       string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Open builds the store selected by opts.Backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "memory", "mem":
		return NewMemory(), nil
	case "sqlite", "sqlite3", "":
		return OpenSQLite(ctx, opts.SQLitePath)
	case "redis":
		return OpenRedis(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, opts.Backend)
	}
}
