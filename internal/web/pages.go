// Package web server-renders the public site. Pages are cached whole with a
// short TTL and invalidated by content writers, so anonymous traffic mostly
// serves from memory while admin edits still show up immediately.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/MarloFC/ArchProj/pkg/database"
	"github.com/MarloFC/ArchProj/pkg/logger"
	"github.com/MarloFC/ArchProj/pkg/pagecache"
	"github.com/MarloFC/ArchProj/prometheus"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Pages renders and caches the public site.
type Pages struct {
	cache *pagecache.Cache
	tpl   *template.Template
}

// New parses the embedded templates and wires the rendered-page cache.
func New(cache *pagecache.Cache) (*Pages, error) {
	funcs := template.FuncMap{
		// Inline SVG stored by the admin panel is producer-trusted markup.
		"svg": func(s string) template.HTML { return template.HTML(s) },
	}
	tpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Pages{cache: cache, tpl: tpl}, nil
}

// Register mounts the public routes.
func (p *Pages) Register(e *echo.Echo) {
	e.GET("/", p.Home)
	e.GET("/team", p.Team)
	e.GET("/projects", p.Projects)
	e.GET("/project/:id", p.ProjectDetail)
}

// serve renders the named template for path, using the cache when fresh.
// Rendering failures degrade to a plain error page; internals never leak.
func (p *Pages) serve(c echo.Context, path, page, tplName string, data interface{}) error {
	if body, ok := p.cache.Get(path); ok {
		prometheus.RecordCache(page, "hit")
		return c.HTMLBlob(http.StatusOK, body)
	}
	prometheus.RecordCache(page, "miss")

	var buf bytes.Buffer
	if err := p.tpl.ExecuteTemplate(&buf, tplName, data); err != nil {
		logger.FromEcho(c).Error("Failed to render page",
			zap.String("page", page),
			zap.Error(err))
		return c.HTML(http.StatusInternalServerError, "<!doctype html><title>Error</title><p>Something went wrong.</p>")
	}

	p.cache.Set(path, buf.Bytes())
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// Home renders the main landing page.
func (p *Pages) Home(c echo.Context) error {
	view := buildHomeView(database.GetDB())
	return p.serve(c, "/", "home", "home.html", view)
}

// Team renders the team page.
func (p *Pages) Team(c echo.Context) error {
	view := buildTeamView(database.GetDB())
	return p.serve(c, "/team", "team", "team.html", view)
}

// Projects renders the portfolio index.
func (p *Pages) Projects(c echo.Context) error {
	view := buildProjectsView(database.GetDB())
	return p.serve(c, "/projects", "projects", "projects.html", view)
}

// ProjectDetail renders a single portfolio entry with its gallery.
func (p *Pages) ProjectDetail(c echo.Context) error {
	id := c.Param("id")
	path := "/project/" + id

	if body, ok := p.cache.Get(path); ok {
		prometheus.RecordCache("project", "hit")
		return c.HTMLBlob(http.StatusOK, body)
	}
	prometheus.RecordCache("project", "miss")

	view, err := buildProjectDetailView(database.GetDB(), id)
	if err != nil {
		return c.HTML(http.StatusNotFound, "<!doctype html><title>Not found</title><p>Project not found.</p>")
	}

	var buf bytes.Buffer
	if err := p.tpl.ExecuteTemplate(&buf, "project.html", view); err != nil {
		logger.FromEcho(c).Error("Failed to render page",
			zap.String("page", "project"),
			zap.Error(err))
		return c.HTML(http.StatusInternalServerError, "<!doctype html><title>Error</title><p>Something went wrong.</p>")
	}

	p.cache.Set(path, buf.Bytes())
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
