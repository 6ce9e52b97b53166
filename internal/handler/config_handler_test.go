package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MarloFC/ArchProj/internal/model"
	"github.com/MarloFC/ArchProj/pkg/database"
)

func TestGetConfigReturnsDefaultsWhenEmpty(t *testing.T) {
	setupTest(t)

	c, rec := request(t, http.MethodGet, "/api/config", nil)
	require.NoError(t, GetConfig(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, model.SiteConfigID, body["id"])
	require.Equal(t, "Architectural Excellence", body["heroTitle"])
	require.Equal(t, "#6366f1", body["accentColor"])

	// Defaults are served, never persisted.
	var count int64
	require.NoError(t, database.GetDB().Model(&model.SiteConfig{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestSaveConfigCreatesSingleRow(t *testing.T) {
	setupTest(t)

	for _, title := range []string{"First", "Second"} {
		c, rec := request(t, http.MethodPost, "/api/config", map[string]interface{}{
			"type": "content",
			"data": map[string]interface{}{"heroTitle": title},
		})
		require.NoError(t, SaveConfig(c))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	var count int64
	require.NoError(t, database.GetDB().Model(&model.SiteConfig{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	var cfg model.SiteConfig
	require.NoError(t, database.GetDB().Where("id = ?", model.SiteConfigID).First(&cfg).Error)
	require.NotNil(t, cfg.HeroTitle)
	require.Equal(t, "Second", *cfg.HeroTitle)
}

func TestSaveConfigNullClearsAbsentKeeps(t *testing.T) {
	setupTest(t)

	c, rec := request(t, http.MethodPost, "/api/config", map[string]interface{}{
		"type": "content",
		"data": map[string]interface{}{
			"heroTitle":       "Studio",
			"heroSubtitle":    "Spaces that endure",
			"heroDescription": "Full service design",
		},
	})
	require.NoError(t, SaveConfig(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// heroTitle overridden, heroSubtitle cleared, heroDescription untouched.
	c, rec = request(t, http.MethodPost, "/api/config", map[string]interface{}{
		"type": "content",
		"data": map[string]interface{}{
			"heroTitle":    "Atelier",
			"heroSubtitle": nil,
		},
	})
	require.NoError(t, SaveConfig(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var cfg model.SiteConfig
	require.NoError(t, database.GetDB().Where("id = ?", model.SiteConfigID).First(&cfg).Error)
	require.Equal(t, "Atelier", *cfg.HeroTitle)
	require.Nil(t, cfg.HeroSubtitle)
	require.Equal(t, "Full service design", *cfg.HeroDescription)
}

func TestSaveConfigTypesAreDisjoint(t *testing.T) {
	setupTest(t)

	c, rec := request(t, http.MethodPost, "/api/config", map[string]interface{}{
		"type": "content",
		"data": map[string]interface{}{"heroTitle": "Studio", "logoWidth": 12},
	})
	require.NoError(t, SaveConfig(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// A colors write carrying content keys must not touch content columns.
	c, rec = request(t, http.MethodPost, "/api/config", map[string]interface{}{
		"type": "colors",
		"data": map[string]interface{}{
			"primary":   "#111111",
			"accent":    "#222222",
			"heroTitle": "Hijacked",
		},
	})
	require.NoError(t, SaveConfig(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var cfg model.SiteConfig
	require.NoError(t, database.GetDB().Where("id = ?", model.SiteConfigID).First(&cfg).Error)
	require.Equal(t, "Studio", *cfg.HeroTitle)
	require.Equal(t, 12, *cfg.LogoWidth)
	require.Equal(t, "#111111", *cfg.PrimaryColor)
	require.Equal(t, "#222222", *cfg.AccentColor)
}

func TestSaveConfigRejectsUnknownType(t *testing.T) {
	setupTest(t)

	c, rec := request(t, http.MethodPost, "/api/config", map[string]interface{}{
		"type": "layout",
		"data": map[string]interface{}{},
	})
	require.NoError(t, SaveConfig(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveConfigRejectsWrongValueType(t *testing.T) {
	setupTest(t)

	c, rec := request(t, http.MethodPost, "/api/config", map[string]interface{}{
		"type": "content",
		"data": map[string]interface{}{"logoWidth": "wide"},
	})
	require.NoError(t, SaveConfig(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "logoWidth", decodeBody(t, rec)["field"])
}

func TestSaveConfigFlushesPageCache(t *testing.T) {
	cache := setupTest(t)
	cache.Set("/", []byte("stale home"))
	cache.Set("/team", []byte("stale team"))

	c, rec := request(t, http.MethodPost, "/api/config", map[string]interface{}{
		"type": "colors",
		"data": map[string]interface{}{"primary": "#333333"},
	})
	require.NoError(t, SaveConfig(c))
	require.Equal(t, http.StatusOK, rec.Code)

	_, ok := cache.Get("/")
	require.False(t, ok)
	_, ok = cache.Get("/team")
	require.False(t, ok)
}
