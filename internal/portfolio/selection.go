package portfolio

import "github.com/rogerwa11/portfolio/internal/content"

// Selection is the expanded-project state: Closed, or Open on an id.
type Selection struct {
	id   int
	open bool
}

func (s Selection) ID() (int, bool) {
	return s.id, s.open
}

func (s Selection) IsOpen() bool { return s.open }

// ProjectSelector owns the modal selection over a read-only catalog.
type ProjectSelector struct {
	catalog  *content.Catalog
	selected Selection
}

func NewProjectSelector(catalog *content.Catalog) *ProjectSelector {
	return &ProjectSelector{catalog: catalog}
}

// Select opens id without checking it exists.
func (p *ProjectSelector) Select(id int) Selection {
	p.selected = Selection{id: id, open: true}
	return p.selected
}

// Dismiss closes the modal whatever its state.
func (p *ProjectSelector) Dismiss() Selection {
	p.selected = Selection{}
	return p.selected
}

func (p *ProjectSelector) Selection() Selection {
	return p.selected
}

func (p *ProjectSelector) Resolve(id int) (content.Project, bool) {
	return p.catalog.Resolve(id)
}

// Expanded resolves the current selection. It reports false when closed
// or when the selected id is not in the catalog.
func (p *ProjectSelector) Expanded() (content.Project, bool) {
	id, open := p.selected.ID()
	if !open {
		return content.Project{}, false
	}
	return p.catalog.Resolve(id)
}
