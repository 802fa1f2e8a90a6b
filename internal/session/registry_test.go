package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerwa11/portfolio/internal/portfolio"
)

func TestRegistry_MountGet(t *testing.T) {
	r := NewRegistry(time.Minute, time.Minute)
	id := NewID()

	_, ok := r.Get(id)
	assert.False(t, ok)

	v := portfolio.New(context.Background(), portfolio.Options{})
	r.Mount(id, v)

	got, ok := r.Get(id)
	require.True(t, ok)
	assert.Same(t, v, got)
	assert.Equal(t, 1, r.Len())

	replacement := portfolio.New(context.Background(), portfolio.Options{})
	r.Mount(id, replacement)
	got, _ = r.Get(id)
	assert.Same(t, replacement, got)

	r.Delete(id)
	_, ok = r.Get(id)
	assert.False(t, ok)
}

func TestRegistry_Expiry(t *testing.T) {
	r := NewRegistry(20*time.Millisecond, time.Hour)
	id := NewID()
	r.Mount(id, portfolio.New(context.Background(), portfolio.Options{}))

	time.Sleep(40 * time.Millisecond)
	_, ok := r.Get(id)
	assert.False(t, ok)
}

func TestRegistry_Defaults(t *testing.T) {
	r := NewRegistry(0, 0)
	assert.Equal(t, DefaultTTL, r.ttl)
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID(NewID()))
	assert.False(t, ValidID("not-a-session"))
	assert.False(t, ValidID(""))
}
