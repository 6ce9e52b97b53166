package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/MarloFC/ArchProj/internal/model"
	"github.com/MarloFC/ArchProj/pkg/database"
	"github.com/MarloFC/ArchProj/pkg/pagecache"
)

func setupPages(t *testing.T) (*Pages, *pagecache.Cache) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	database.DB = db

	cache := pagecache.New(time.Minute)
	pages, err := New(cache)
	require.NoError(t, err)
	return pages, cache
}

func get(t *testing.T, handler echo.HandlerFunc, target string, params ...string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	require.NoError(t, handler(c))
	return rec
}

func TestHomeRendersDefaultsOnEmptyDatabase(t *testing.T) {
	pages, _ := setupPages(t)

	rec := get(t, pages.Home, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Architectural Excellence")
	assert.Contains(t, body, "Our Services")
	assert.Contains(t, body, "#6366f1")
}

func TestHomeRendersStoredContent(t *testing.T) {
	pages, _ := setupPages(t)

	title := "Atelier Moderno"
	require.NoError(t, database.GetDB().Create(&model.SiteConfig{
		ID:        model.SiteConfigID,
		HeroTitle: &title,
	}).Error)

	svcTitle := "Interior Design"
	svg := `<svg viewBox="0 0 1 1"></svg>`
	require.NoError(t, database.GetDB().Create(&model.Service{
		Title:   &svcTitle,
		Icon:    "paintbrush",
		IconSvg: &svg,
	}).Error)

	rec := get(t, pages.Home, "/")
	body := rec.Body.String()
	assert.Contains(t, body, "Atelier Moderno")
	assert.Contains(t, body, "Interior Design")

	// Inline icon SVG renders unescaped.
	assert.Contains(t, body, svg)
}

func TestHomeServedFromCacheUntilInvalidated(t *testing.T) {
	pages, cache := setupPages(t)

	first := get(t, pages.Home, "/").Body.String()
	assert.Contains(t, first, "Architectural Excellence")

	title := "Atelier Moderno"
	require.NoError(t, database.GetDB().Create(&model.SiteConfig{
		ID:        model.SiteConfigID,
		HeroTitle: &title,
	}).Error)

	// Still the cached body.
	stale := get(t, pages.Home, "/").Body.String()
	assert.Equal(t, first, stale)

	cache.Flush()

	fresh := get(t, pages.Home, "/").Body.String()
	assert.Contains(t, fresh, "Atelier Moderno")
}

func TestHomeShowsOnlyFeaturedProjects(t *testing.T) {
	pages, _ := setupPages(t)

	require.NoError(t, database.GetDB().Create(&model.Project{Title: "Featured House", Featured: true}).Error)
	require.NoError(t, database.GetDB().Create(&model.Project{Title: "Hidden House"}).Error)

	body := get(t, pages.Home, "/").Body.String()
	assert.Contains(t, body, "Featured House")
	assert.NotContains(t, body, "Hidden House")
}

func TestProjectsListsEverything(t *testing.T) {
	pages, _ := setupPages(t)

	require.NoError(t, database.GetDB().Create(&model.Project{Title: "Featured House", Featured: true}).Error)
	require.NoError(t, database.GetDB().Create(&model.Project{Title: "Hidden House"}).Error)

	body := get(t, pages.Projects, "/projects").Body.String()
	assert.Contains(t, body, "Featured House")
	assert.Contains(t, body, "Hidden House")
}

func TestTeamRendersMembers(t *testing.T) {
	pages, _ := setupPages(t)

	require.NoError(t, database.GetDB().Create(&model.TeamMember{
		Name: "Ana Souza",
		Role: "Lead Architect",
	}).Error)

	body := get(t, pages.Team, "/team").Body.String()
	assert.Contains(t, body, "Ana Souza")
	assert.Contains(t, body, "Lead Architect")
}

func TestProjectDetail(t *testing.T) {
	pages, _ := setupPages(t)

	desc := "<p>Waterfront home</p>"
	require.NoError(t, database.GetDB().Create(&model.Project{
		Title:       "Lakeside House",
		Description: &desc,
		Images:      model.StringList{"/a.jpg", "/b.jpg"},
	}).Error)

	rec := get(t, pages.ProjectDetail, "/project/1", "id", "1")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Lakeside House")
	assert.Contains(t, body, "/a.jpg")
	assert.Contains(t, body, "/b.jpg")

	// Rich project copy is producer-trusted and renders unescaped.
	assert.Contains(t, body, desc)
}

func TestProjectDetailNotFound(t *testing.T) {
	pages, cache := setupPages(t)

	rec := get(t, pages.ProjectDetail, "/project/99", "id", "99")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Misses are not cached.
	_, ok := cache.Get("/project/99")
	assert.False(t, ok)
}
