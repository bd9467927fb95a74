// Package middleware contains echo middleware for the console HTTP delivery.
package middleware

import (
	"net/http"
	"strings"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the JWT access token and builds the session that
// handlers pass into usecases.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Failed to parse token claims")
		}

		if tokenType, _ := claims["type"].(string); tokenType != "access" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Token is not an access token")
		}

		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return response.Unauthorized(c, "UNAUTHENTICATED", "User ID missing from token")
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID format in token")
		}

		rolesClaim, _ := claims["roles"].([]any)
		roles := make([]string, 0, len(rolesClaim))
		for _, r := range rolesClaim {
			if roleStr, ok := r.(string); ok {
				roles = append(roles, roleStr)
			}
		}

		deliverycontext.SetSession(c, &entity.Session{
			UserID:      userID,
			Roles:       entity.RolesFromStrings(roles),
			AccessToken: tokenString,
		})

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the session has a
// specific role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := deliverycontext.GetSession(c)
			if sess == nil {
				return response.Error(c, http.StatusForbidden, "FORBIDDEN", "Permission denied: role information missing", "")
			}

			if !sess.Roles.Contains(requiredRole) {
				return response.Error(c, http.StatusForbidden, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role", "")
			}

			return next(c)
		}
	}
}
