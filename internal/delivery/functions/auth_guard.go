package functions

import (
	"net/http"
	"strings"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// authGuard rejects every request that does not carry a valid administrator
// access token. Unlike the console middleware it speaks the functions wire
// format: a bare {"error": ...} object.
type authGuard struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

func newAuthGuard(tokenSvc service.TokenService, cfg *config.Config) *authGuard {
	return &authGuard{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the bearer token and requires the admin role.
func (g *authGuard) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token format, must be Bearer token"})
		}

		token, err := g.tokenSvc.ValidateToken(tokenString, g.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Failed to parse token claims"})
		}

		if tokenType, _ := claims["type"].(string); tokenType != "access" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Token is not an access token"})
		}

		rolesClaim, _ := claims["roles"].([]any)
		isAdmin := false
		for _, r := range rolesClaim {
			if roleStr, ok := r.(string); ok && roleStr == entity.RoleAdmin.String() {
				isAdmin = true

				break
			}
		}
		if !isAdmin {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "Permission denied: require 'admin' role"})
		}

		return next(c)
	}
}
