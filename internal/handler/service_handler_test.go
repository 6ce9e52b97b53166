package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/MarloFC/ArchProj/internal/model"
	"github.com/MarloFC/ArchProj/pkg/database"
)

func createService(t *testing.T, body map[string]interface{}) model.Service {
	t.Helper()

	c, rec := request(t, http.MethodPost, "/api/services", body)
	require.NoError(t, CreateService(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var svc model.Service
	require.NoError(t, database.GetDB().Last(&svc).Error)
	return svc
}

func withID(c echo.Context, id uint) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprintf("%d", id))
	return c
}

func TestCreateServiceAppendsToEnd(t *testing.T) {
	setupTest(t)

	first := createService(t, map[string]interface{}{"title": "Design"})
	require.Equal(t, 0, first.Order)

	second := createService(t, map[string]interface{}{"title": "Renovation"})
	require.Equal(t, 1, second.Order)

	// Deleting the head must not make the next creation collide with the
	// surviving row.
	c, rec := request(t, http.MethodDelete, "/api/services/1", nil)
	require.NoError(t, DeleteService(withID(c, first.ID)))
	require.Equal(t, http.StatusOK, rec.Code)

	third := createService(t, map[string]interface{}{"title": "Consulting"})
	require.Equal(t, 2, third.Order)
}

func TestCreateServiceDefaultsIcon(t *testing.T) {
	setupTest(t)

	svc := createService(t, map[string]interface{}{"title": "Design"})
	require.Equal(t, model.DefaultIconName, svc.Icon)

	svc = createService(t, map[string]interface{}{"title": "Interiors", "icon": "paintbrush"})
	require.Equal(t, "paintbrush", svc.Icon)
}

func TestCreateServiceHonorsExplicitOrder(t *testing.T) {
	setupTest(t)

	svc := createService(t, map[string]interface{}{"title": "Design", "order": 7})
	require.Equal(t, 7, svc.Order)

	// Appends continue after the explicit position.
	next := createService(t, map[string]interface{}{"title": "Renovation"})
	require.Equal(t, 8, next.Order)
}

func TestListServicesOrdered(t *testing.T) {
	setupTest(t)

	createService(t, map[string]interface{}{"title": "B", "order": 5})
	createService(t, map[string]interface{}{"title": "A", "order": 1})

	c, rec := request(t, http.MethodGet, "/api/services", nil)
	require.NoError(t, ListServices(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var services []model.Service
	require.NoError(t, decodeInto(rec.Body.Bytes(), &services))
	require.Len(t, services, 2)
	require.Equal(t, "A", *services[0].Title)
	require.Equal(t, "B", *services[1].Title)
}

func TestUpdateServiceReplacesFullFieldSet(t *testing.T) {
	setupTest(t)

	svc := createService(t, map[string]interface{}{
		"title":               "Design",
		"detailedDescription": "<p>Long form</p>",
		"iconSvg":             "<svg></svg>",
		"order":               3,
	})

	c, rec := request(t, http.MethodPut, "/api/services/1", map[string]interface{}{
		"title": "Architecture",
	})
	require.NoError(t, UpdateService(withID(c, svc.ID)))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated model.Service
	require.NoError(t, database.GetDB().First(&updated, svc.ID).Error)
	require.Equal(t, "Architecture", *updated.Title)
	require.Nil(t, updated.DetailedDescription)
	require.Nil(t, updated.IconSvg)
	require.Equal(t, model.DefaultIconName, updated.Icon)
	require.Equal(t, 0, updated.Order)
}

func TestUpdateServiceNotFound(t *testing.T) {
	setupTest(t)

	c, rec := request(t, http.MethodPut, "/api/services/99", map[string]interface{}{"title": "X"})
	require.NoError(t, UpdateService(withID(c, 99)))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteServiceNotFound(t *testing.T) {
	setupTest(t)

	c, rec := request(t, http.MethodDelete, "/api/services/99", nil)
	require.NoError(t, DeleteService(withID(c, 99)))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServiceWritesInvalidateHomePages(t *testing.T) {
	cache := setupTest(t)
	cache.Set("/", []byte("home"))
	cache.Set("/projects", []byte("projects"))
	cache.Set("/team", []byte("team"))

	createService(t, map[string]interface{}{"title": "Design"})

	_, ok := cache.Get("/")
	require.False(t, ok)
	_, ok = cache.Get("/projects")
	require.False(t, ok)

	// Team page does not render services.
	_, ok = cache.Get("/team")
	require.True(t, ok)
}
