package web

import (
	"embed"
	"html/template"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rogerwa11/portfolio/internal/content"
	"github.com/rogerwa11/portfolio/internal/kv"
	"github.com/rogerwa11/portfolio/internal/portfolio"
	"github.com/rogerwa11/portfolio/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Options configures the HTTP host.
type Options struct {
	Content      *content.Content
	Store        kv.Store
	Registry     *session.Registry
	Acknowledger portfolio.Acknowledger
	// NewGenerator supplies the decoration generator for each mounted
	// view. Nil means the unseeded default.
	NewGenerator func() *portfolio.DecorationGenerator

	StaticDir     string
	CORSOrigins   []string
	SecureCookies bool
	ServiceName   string
	Version       string
}

// Server serves the portfolio page and its fragment endpoints.
type Server struct {
	opts     Options
	content  *content.Content
	store    kv.Store
	registry *session.Registry
}

func NewServer(opts Options) *Server {
	if opts.Registry == nil {
		opts.Registry = session.NewRegistry(session.DefaultTTL, session.DefaultCleanupInterval)
	}
	if opts.Content == nil {
		opts.Content = &content.Content{}
	}
	if opts.Acknowledger == nil {
		opts.Acknowledger = portfolio.LogAcknowledger{}
	}
	if opts.ServiceName == "" {
		opts.ServiceName = "portfolio"
	}
	return &Server{
		opts:     opts,
		content:  opts.Content,
		store:    opts.Store,
		registry: opts.Registry,
	}
}

func loadTemplates() *template.Template {
	return template.Must(template.New("").
		Funcs(template.FuncMap{"cssNumber": cssNumber}).
		ParseFS(templatesFS, "templates/*.html"))
}

// cssNumber prints v in plain decimal with every significant digit, so a
// value below a bound never renders as the bound.
func cssNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Engine builds a gin engine with every route registered.
func (s *Server) Engine() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(loadTemplates())
	r.Use(RequestIDMiddleware())

	if dir := s.opts.StaticDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			r.Static("/static", dir)
		}
	}

	NewHealthHandler(s.opts.ServiceName, s.opts.Version, s.store).RegisterRoutes(r)

	page := r.Group("/")
	page.Use(SessionMiddleware(s.opts.SecureCookies))
	page.GET("/", s.handleIndex)
	page.POST("/activate", s.handleActivate)
	page.POST("/theme/toggle", s.handleToggleTheme)
	page.POST("/projects/:id", s.handleSelectProject)
	page.DELETE("/projects/selected", s.handleDismissProject)
	page.PUT("/contact/:field", s.handleUpdateContact)
	page.POST("/contact", s.handleSubmitContact)

	api := r.Group("/api")
	if len(s.opts.CORSOrigins) > 0 {
		api.Use(cors.New(cors.Config{
			AllowOrigins:     s.opts.CORSOrigins,
			AllowMethods:     []string{"GET"},
			AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	api.Use(SessionMiddleware(s.opts.SecureCookies))
	api.GET("/state", s.handleState)
	api.GET("/projects", s.handleProjects)

	return r
}

func footerName(p content.Profile) string {
	return strings.ToUpper(strings.TrimSpace(p.FirstName) + "_" + strings.TrimSpace(p.LastName))
}
