package web

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rogerwa11/portfolio/internal/content"
	"github.com/rogerwa11/portfolio/internal/kv"
	"github.com/rogerwa11/portfolio/internal/portfolio"
)

// pageData is what every template renders from.
type pageData struct {
	Profile    content.Profile
	Projects   []content.Project
	Skills     []string
	FooterName string
	A          portfolio.AttributeSet
	Snap       portfolio.Snapshot
	Ack        string
}

// mount builds a fresh view for the visitor, as a page load does.
func (s *Server) mount(c *gin.Context) *portfolio.View {
	sid := sessionID(c)

	var store portfolio.Store
	if s.store != nil {
		store = kv.NewScoped(s.store, sid)
	}
	var gen *portfolio.DecorationGenerator
	if s.opts.NewGenerator != nil {
		gen = s.opts.NewGenerator()
	}

	v := portfolio.New(c.Request.Context(), portfolio.Options{
		Content:      s.content,
		Store:        store,
		Acknowledger: s.opts.Acknowledger,
		Generator:    gen,
	})
	s.registry.Mount(sid, v)
	return v
}

// view returns the mounted view, mounting one if the session has none.
func (s *Server) view(c *gin.Context) *portfolio.View {
	if v, ok := s.registry.Get(sessionID(c)); ok {
		return v
	}
	return s.mount(c)
}

func (s *Server) data(v *portfolio.View) pageData {
	snap := v.Snapshot()
	return pageData{
		Profile:    s.content.Profile,
		Projects:   s.content.Projects,
		Skills:     s.content.Skills,
		FooterName: footerName(s.content.Profile),
		A:          snap.Attributes,
		Snap:       snap,
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	v := s.mount(c)
	c.HTML(http.StatusOK, "index", s.data(v))
}

func (s *Server) handleActivate(c *gin.Context) {
	v := s.view(c)
	v.Activate()
	c.HTML(http.StatusOK, "decorations", s.data(v))
}

func (s *Server) handleToggleTheme(c *gin.Context) {
	v := s.view(c)
	theme := v.ToggleTheme(c.Request.Context())
	log.Printf("[theme] req=%s session=%s theme=%s", c.GetString(requestIDKey), sessionID(c), theme)
	c.HTML(http.StatusOK, "portfolio", s.data(v))
}

func (s *Server) handleSelectProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid project id")
		return
	}
	v := s.view(c)
	v.SelectProject(id)
	c.HTML(http.StatusOK, "modal", s.data(v))
}

func (s *Server) handleDismissProject(c *gin.Context) {
	v := s.view(c)
	v.DismissProject()
	c.HTML(http.StatusOK, "modal", s.data(v))
}

func (s *Server) handleUpdateContact(c *gin.Context) {
	field, err := portfolio.ParseField(c.Param("field"))
	if err != nil {
		c.String(http.StatusBadRequest, "unknown contact field")
		return
	}
	if _, err := s.view(c).UpdateContactField(field, c.PostForm(string(field))); err != nil {
		c.String(http.StatusBadRequest, "unknown contact field")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleSubmitContact(c *gin.Context) {
	v := s.view(c)
	// the posted form wins over edits still in flight
	for _, field := range []portfolio.Field{portfolio.FieldName, portfolio.FieldEmail} {
		if value, ok := c.GetPostForm(string(field)); ok {
			if _, err := v.UpdateContactField(field, value); err != nil {
				c.String(http.StatusBadRequest, "unknown contact field")
				return
			}
		}
	}
	res := v.SubmitContact()
	d := s.data(v)
	d.Ack = res.Message
	c.HTML(http.StatusOK, "contact", d)
}

type stateResponse struct {
	SessionID string             `json:"session_id"`
	State     portfolio.Snapshot `json:"state"`
}

func (s *Server) handleState(c *gin.Context) {
	v := s.view(c)
	c.JSON(http.StatusOK, stateResponse{SessionID: sessionID(c), State: v.Snapshot()})
}

func (s *Server) handleProjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"projects": s.content.Catalog().All()})
}
