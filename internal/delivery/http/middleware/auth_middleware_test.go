package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireRoleContext(t *testing.T, sess *entity.Session) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess != nil {
		deliverycontext.SetSession(c, sess)
	}

	return c, rec
}

func TestAuthMiddleware_RequireRole_AdminPasses(t *testing.T) {
	m := NewAuthMiddleware(nil, nil)
	handler := m.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	c, rec := requireRoleContext(t, &entity.Session{
		UserID:      uuid.New(),
		Roles:       entity.Roles{entity.RoleAdmin},
		AccessToken: "token",
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole_RejectsMissingRole(t *testing.T) {
	m := NewAuthMiddleware(nil, nil)
	handler := m.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	c, rec := requireRoleContext(t, &entity.Session{
		UserID:      uuid.New(),
		Roles:       entity.Roles{entity.RoleOperator},
		AccessToken: "token",
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireRole_RejectsMissingSession(t *testing.T) {
	m := NewAuthMiddleware(nil, nil)
	handler := m.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	c, rec := requireRoleContext(t, nil)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
