package portfolio

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/rogerwa11/portfolio/internal/kv"
)

type failingStore struct {
	sets int
}

func (f *failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("store offline")
}

func (f *failingStore) Set(context.Context, string, string) error {
	f.sets++
	return errors.New("store offline")
}

// countingStore records writes so tests can check Load never writes.
type countingStore struct {
	*kv.Memory
	writes int
}

func (c *countingStore) Set(ctx context.Context, key, value string) error {
	c.writes++
	return c.Memory.Set(ctx, key, value)
}

func TestThemeController_LoadDefaultsToDark(t *testing.T) {
	store := &countingStore{Memory: kv.NewMemory()}
	theme := NewThemeController(store).Load(context.Background())

	assert.True(t, theme.IsDark)
	assert.Zero(t, store.writes, "load must not write")
}

func TestThemeController_LoadPersistedWins(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		stored string
		isDark bool
	}{
		{"dark", true},
		{"light", false},
		{"sepia", false},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.stored, func(t *testing.T) {
			store := kv.NewMemory()
			require.NoError(t, store.Set(ctx, ThemeKey, tt.stored))
			assert.Equal(t, tt.isDark, NewThemeController(store).Load(ctx).IsDark)
		})
	}
}

func TestThemeController_StoreUnavailable(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{}
	c := NewThemeController(store)

	assert.Equal(t, DefaultTheme, c.Load(ctx))

	next := c.Toggle(ctx, DefaultTheme)
	assert.False(t, next.IsDark, "toggle still applies when the write fails")
	assert.Equal(t, 1, store.sets)
}

func TestThemeController_NilStore(t *testing.T) {
	c := NewThemeController(nil)
	assert.Equal(t, DefaultTheme, c.Load(context.Background()))
	assert.Equal(t, Theme{IsDark: false}, c.Toggle(context.Background(), DefaultTheme))
}

func TestThemeController_ToggleRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		store := kv.NewMemory()
		c := NewThemeController(store)

		b := rapid.Bool().Draw(rt, "isDark")
		next := c.Toggle(ctx, Theme{IsDark: b})
		if next.IsDark == b {
			rt.Fatalf("toggle(%v) = %v", b, next.IsDark)
		}
		if loaded := c.Load(ctx); loaded != next {
			rt.Fatalf("load after toggle = %v, want %v", loaded, next)
		}
		saved, _, _ := store.Get(ctx, ThemeKey)
		if saved != next.String() {
			rt.Fatalf("stored %q, want %q", saved, next.String())
		}
	})
}

func TestAttributes_BothBranchesPopulated(t *testing.T) {
	for _, isDark := range []bool{true, false} {
		attrs := Attributes(isDark)
		v := reflect.ValueOf(attrs)
		for i := 0; i < v.NumField(); i++ {
			assert.NotEmpty(t, v.Field(i).String(), "isDark=%v field %s", isDark, v.Type().Field(i).Name)
		}
	}
}

func TestAttributes_Values(t *testing.T) {
	dark := Attributes(true)
	assert.Equal(t, "bg-black", dark.Background)
	assert.Equal(t, "bg-white", dark.AccentFill)
	assert.Equal(t, "sun", dark.ToggleIcon)

	light := Attributes(false)
	assert.Equal(t, "bg-gray-100", light.Background)
	assert.Equal(t, "bg-gray-900", light.AccentFill)
	assert.Equal(t, "bg-gray-50", light.Card)
	assert.Equal(t, "moon", light.ToggleIcon)
	assert.NotEqual(t, dark, light)
}
