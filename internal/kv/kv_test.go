package kv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	require.NoError(t, client.Ping(context.Background()).Err())

	store := NewRedis(client)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func setupTestSQLite(t *testing.T) *SQLite {
	store, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "nested", "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, store Store) {
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "portfolio-theme")
	require.NoError(t, err)
	assert.False(t, ok, "missing key should report ok=false")

	require.NoError(t, store.Set(ctx, "portfolio-theme", "light"))
	v, ok, err := store.Get(ctx, "portfolio-theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)

	require.NoError(t, store.Set(ctx, "portfolio-theme", "dark"))
	v, _, err = store.Get(ctx, "portfolio-theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	assert.NoError(t, store.Ping(ctx))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestSQLiteStore(t *testing.T) {
	exerciseStore(t, setupTestSQLite(t))
}

func TestSQLiteStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	store, err := OpenSQLite(context.Background(), filepath.Join(dir, "kv.db"))
	require.NoError(t, err)
	defer store.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	first, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "portfolio-theme", "light"))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer second.Close()

	v, ok, err := second.Get(ctx, "portfolio-theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestRedisStore(t *testing.T) {
	store, mr := setupTestRedis(t)
	exerciseStore(t, store)

	assert.True(t, mr.Exists("portfolio:portfolio-theme"))
	assert.Zero(t, mr.TTL("portfolio:portfolio-theme"))
}

func TestRedisStore_ValuesDoNotExpire(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "portfolio-theme", "light"))

	mr.FastForward(2 * 365 * 24 * time.Hour)

	v, ok, err := store.Get(ctx, "portfolio-theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestRedisStore_Unavailable(t *testing.T) {
	store, mr := setupTestRedis(t)
	mr.Close()

	_, _, err := store.Get(context.Background(), "portfolio-theme")
	assert.Error(t, err)
}

func TestOpenRedis_PingFailure(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = OpenRedis(context.Background(), addr, "", 0)
	assert.Error(t, err)
}

func TestScopedStore_IsolatesScopes(t *testing.T) {
	ctx := context.Background()
	parent := NewMemory()
	a := NewScoped(parent, "a")
	b := NewScoped(parent, "b")

	require.NoError(t, a.Set(ctx, "portfolio-theme", "light"))

	_, ok, err := b.Get(ctx, "portfolio-theme")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err := parent.Get(ctx, "session:a:portfolio-theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)

	require.NoError(t, a.Close())
	assert.NoError(t, parent.Ping(ctx))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	mem, err := Open(ctx, Options{Backend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, mem)

	lite, err := Open(ctx, Options{Backend: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "kv.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, lite)
	require.NoError(t, lite.Close())

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rs, err := Open(ctx, Options{Backend: "redis", RedisAddr: mr.Addr()})
	require.NoError(t, err)
	assert.IsType(t, &Redis{}, rs)
	require.NoError(t, rs.Close())

	_, err = Open(ctx, Options{Backend: "etcd"})
	assert.True(t, errors.Is(err, ErrUnknownBackend))
}
