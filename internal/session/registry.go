// Package session maps visitor session ids to their mounted portfolio
// view.
package session

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/rogerwa11/portfolio/internal/portfolio"
)

const (
	DefaultTTL             = 24 * time.Hour
	DefaultCleanupInterval = time.Hour
)

// Registry holds one view per session. Entries expire after ttl without
// access.
type Registry struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func NewRegistry(ttl, cleanupInterval time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}
	return &Registry{cache: gocache.New(ttl, cleanupInterval), ttl: ttl}
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like one NewID would return.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Get returns the view for id and extends its lifetime.
func (r *Registry) Get(id string) (*portfolio.View, bool) {
	value, found := r.cache.Get(id)
	if !found {
		return nil, false
	}
	v, ok := value.(*portfolio.View)
	if !ok {
		return nil, false
	}
	r.cache.Set(id, v, r.ttl)
	return v, true
}

// Mount stores v as the view for id, replacing any earlier one.
func (r *Registry) Mount(id string, v *portfolio.View) {
	r.cache.Set(id, v, r.ttl)
}

func (r *Registry) Delete(id string) {
	r.cache.Delete(id)
}

func (r *Registry) Len() int {
	return r.cache.ItemCount()
}
