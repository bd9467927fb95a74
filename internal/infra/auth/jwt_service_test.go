package auth

import (
	"testing"

	"backoffice/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"

	_, err := NewJWTService(cfg)

	require.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID, []string{"admin"})
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)

	parsed, err := svc.ValidateToken(accessToken, "access-secret")
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "access", claims["type"])

	roles, ok := claims["roles"].([]any)
	require.True(t, ok)
	assert.Equal(t, "admin", roles[0])
}

func TestJWTService_RefreshTokenCarriesNoRoles(t *testing.T) {
	svc := newTestJWTService(t)

	_, refreshToken, err := svc.GenerateTokens(uuid.New(), []string{"admin"})
	require.NoError(t, err)

	parsed, err := svc.ValidateToken(refreshToken, "refresh-secret")
	require.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "refresh", claims["type"])
	assert.NotContains(t, claims, "roles")
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	svc := newTestJWTService(t)

	accessToken, _, err := svc.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	// An access token must never validate against the refresh secret.
	_, err = svc.ValidateToken(accessToken, "refresh-secret")

	require.Error(t, err)
}

func TestJWTService_GarbageTokenRejected(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateToken("not-a-token", "access-secret")

	require.Error(t, err)
}
