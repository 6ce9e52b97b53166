package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarloFC/ArchProj/pkg/config"
	"github.com/MarloFC/ArchProj/pkg/jwtutil"
)

func runAdminRequired(t *testing.T, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/services", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	reached := false
	handler := AdminRequired(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, reached
}

func TestAdminRequiredRejectsMissingHeader(t *testing.T) {
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "test-secret", ExpirationHours: 1})

	rec, reached := runAdminRequired(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAdminRequiredRejectsMalformedHeader(t *testing.T) {
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "test-secret", ExpirationHours: 1})

	rec, reached := runAdminRequired(t, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAdminRequiredRejectsInvalidToken(t *testing.T) {
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "test-secret", ExpirationHours: 1})

	rec, reached := runAdminRequired(t, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAdminRequiredAcceptsValidToken(t *testing.T) {
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "test-secret", ExpirationHours: 1})

	token, err := jwtutil.GenerateToken("admin@example.com", 1)
	require.NoError(t, err)

	rec, reached := runAdminRequired(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}
