package kv

import "context"

// Scoped namespaces every key of an underlying store, so one visitor's
// preferences never leak into another's. Closing a Scoped store does not
// close the parent.
type Scoped struct {
	parent Store
	prefix string
}

func NewScoped(parent Store, scope string) *Scoped {
	return &Scoped{parent: parent, prefix: "session:" + scope + ":"}
}

func (s *Scoped) Get(ctx context.Context, key string) (string, bool, error) {
	return s.parent.Get(ctx, s.prefix+key)
}

func (s *Scoped) Set(ctx context.Context, key, value string) error {
	return s.parent.Set(ctx, s.prefix+key, value)
}

func (s *Scoped) Ping(ctx context.Context) error {
	return s.parent.Ping(ctx)
}

func (s *Scoped) Close() error { return nil }
