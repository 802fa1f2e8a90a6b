package portfolio

import (
	"context"
	"sync"

	"github.com/rogerwa11/portfolio/internal/content"
)

// Options configures a View. Store may be nil, in which case the theme is
// never persisted.
type Options struct {
	Content      *content.Content
	Store        Store
	Acknowledger Acknowledger
	Generator    *DecorationGenerator
}

// View is one mounted portfolio page. It is constructed without any
// randomness; Activate runs the decoration generator once the page is
// known to be interactive.
type View struct {
	mu sync.Mutex

	content  *content.Content
	themes   *ThemeController
	theme    Theme
	selector *ProjectSelector
	contact  *ContactDraftController

	generator   *DecorationGenerator
	decorations []DecorationToken
	activated   bool
}

// New mounts a view: the theme is loaded here, before first paint.
func New(ctx context.Context, opts Options) *View {
	c := opts.Content
	if c == nil {
		c = &content.Content{}
	}
	gen := opts.Generator
	if gen == nil {
		gen = NewDecorationGenerator(nil)
	}

	themes := NewThemeController(opts.Store)
	return &View{
		content:   c,
		themes:    themes,
		theme:     themes.Load(ctx),
		selector:  NewProjectSelector(c.Catalog()),
		contact:   NewContactDraftController(opts.Acknowledger),
		generator: gen,
	}
}

func (v *View) Content() *content.Content { return v.content }

func (v *View) Theme() Theme {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.theme
}

func (v *View) ToggleTheme(ctx context.Context) Theme {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.theme = v.themes.Toggle(ctx, v.theme)
	return v.theme
}

func (v *View) SelectProject(id int) Selection {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selector.Select(id)
}

func (v *View) DismissProject() Selection {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selector.Dismiss()
}

func (v *View) Selection() Selection {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selector.Selection()
}

func (v *View) ExpandedProject() (content.Project, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selector.Expanded()
}

func (v *View) UpdateContactField(field Field, value string) (ContactDraft, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.contact.UpdateField(field, value)
}

func (v *View) ContactDraft() ContactDraft {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.contact.Draft()
}

func (v *View) SubmitContact() SubmissionResult {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.contact.Submit()
}

// Activate generates the decoration field on the first call. Later calls
// return the same tokens.
func (v *View) Activate() []DecorationToken {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.activated {
		v.decorations = v.generator.Generate(DefaultDecorationCount)
		v.activated = true
	}
	return append([]DecorationToken(nil), v.decorations...)
}

func (v *View) Activated() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.activated
}

// Snapshot is a consistent copy of the view state for rendering.
type Snapshot struct {
	Theme       Theme             `json:"theme"`
	Attributes  AttributeSet      `json:"attributes"`
	SelectedID  *int              `json:"selected_id"`
	Expanded    *content.Project  `json:"expanded,omitempty"`
	Draft       ContactDraft      `json:"draft"`
	Activated   bool              `json:"activated"`
	Decorations []DecorationToken `json:"decorations"`
}

// ModalOpen reports whether the modal should be rendered, even if its
// selection resolves to nothing.
func (s Snapshot) ModalOpen() bool { return s.SelectedID != nil }

func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := Snapshot{
		Theme:       v.theme,
		Attributes:  Attributes(v.theme.IsDark),
		Draft:       v.contact.Draft(),
		Activated:   v.activated,
		Decorations: append([]DecorationToken(nil), v.decorations...),
	}
	if id, open := v.selector.Selection().ID(); open {
		s.SelectedID = &id
		if p, ok := v.selector.Expanded(); ok {
			s.Expanded = &p
		}
	}
	return s
}
