// Package portfolio is the view-state model behind the portfolio page:
// theme preference, project modal selection, contact draft and the
// decorative background field.
package portfolio

import (
	"context"
	"log"
	"time"
)

// ThemeKey is the store key the theme preference is persisted under.
const ThemeKey = "portfolio-theme"

const (
	themeDark  = "dark"
	themeLight = "light"
)

const storeTimeout = 2 * time.Second

// Store is the persisted key-value store the theme is read from and
// written to.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type Theme struct {
	IsDark bool `json:"is_dark"`
}

var DefaultTheme = Theme{IsDark: true}

func (t Theme) String() string {
	if t.IsDark {
		return themeDark
	}
	return themeLight
}

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	return Theme{IsDark: !t.IsDark}
}

type ThemeController struct {
	store Store
}

func NewThemeController(store Store) *ThemeController {
	return &ThemeController{store: store}
}

// Load reads the persisted preference. A missing key, an empty value or an
// unavailable store all fall back to DefaultTheme. Load never writes.
func (c *ThemeController) Load(ctx context.Context) Theme {
	if c.store == nil {
		return DefaultTheme
	}
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	saved, ok, err := c.store.Get(ctx, ThemeKey)
	if err != nil {
		log.Printf("[theme] store unavailable, using default: %v", err)
		return DefaultTheme
	}
	if !ok || saved == "" {
		return DefaultTheme
	}
	return Theme{IsDark: saved == themeDark}
}

// Toggle flips current and writes the result back before returning. A
// failed write is logged; the returned theme still reflects the request.
func (c *ThemeController) Toggle(ctx context.Context, current Theme) Theme {
	next := current.Toggled()
	if c.store == nil {
		return next
	}
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if err := c.store.Set(ctx, ThemeKey, next.String()); err != nil {
		log.Printf("[theme] persist %s failed: %v", next, err)
	}
	return next
}
