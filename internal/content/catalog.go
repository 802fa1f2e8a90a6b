package content

import "fmt"

// Catalog is an ordered, read-only list of projects indexed by id.
type Catalog struct {
	projects []Project
	byID     map[int]int
}

// NewCatalog copies projects and indexes them. Ids must be unique.
func NewCatalog(projects []Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]Project, 0, len(projects)),
		byID:     make(map[int]int, len(projects)),
	}
	for _, p := range projects {
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		p.Tech = append([]string(nil), p.Tech...)
		c.byID[p.ID] = len(c.projects)
		c.projects = append(c.projects, p)
	}
	return c, nil
}

// Resolve looks a project up by id. A miss is a normal outcome.
func (c *Catalog) Resolve(id int) (Project, bool) {
	if c == nil {
		return Project{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return Project{}, false
	}
	return clone(c.projects[i]), true
}

// All returns the projects in catalog order.
func (c *Catalog) All() []Project {
	if c == nil {
		return nil
	}
	out := make([]Project, len(c.projects))
	for i, p := range c.projects {
		out[i] = clone(p)
	}
	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.projects)
}

func clone(p Project) Project {
	p.Tech = append([]string(nil), p.Tech...)
	return p
}
