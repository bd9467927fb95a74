package context

import (
	"backoffice/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeySession is the key for storing the authenticated session in echo.Context.
const KeySession ContextKey = "session"

// SetSession stores the authenticated session on the echo context.
func SetSession(c echo.Context, sess *entity.Session) {
	c.Set(string(KeySession), sess)
}

// GetSession extracts the authenticated session from the echo context.
// Returns nil if no session has been set.
func GetSession(c echo.Context) *entity.Session {
	if sess, ok := c.Get(string(KeySession)).(*entity.Session); ok {
		return sess
	}

	return nil
}
