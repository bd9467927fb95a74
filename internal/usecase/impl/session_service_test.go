package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	mockRepo "backoffice/internal/mocks/repository"
	mockSvc "backoffice/internal/mocks/service"
	"backoffice/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRefreshSecret = "refresh-secret"

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service      usecase.SessionUsecase
	identityRepo *mockRepo.MockIdentityRepository
	userRoleRepo *mockRepo.MockUserRoleRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	userRoleRepo := mockRepo.NewMockUserRoleRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewSessionUsecase(
		identityRepo,
		userRoleRepo,
		hasher,
		tokenService,
		testRefreshSecret,
		newDiscardLogger(),
	)

	return sessionServiceFixtures{
		service:      svc,
		identityRepo: identityRepo,
		userRoleRepo: userRoleRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestSessionService_Login_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	identity := &entity.Identity{ID: uuid.New(), Email: "admin@example.com", PasswordHash: "hashed"}

	fx.identityRepo.On("FindByEmail", ctx, "admin@example.com").Return(identity, nil)
	fx.hasher.On("Check", "secret", "hashed").Return(true)
	fx.userRoleRepo.On("FindByUserID", ctx, identity.ID).Return(entity.Roles{entity.RoleAdmin}, nil)
	fx.tokenService.On("GenerateTokens", identity.ID, []string{"admin"}).Return("access", "refresh", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "admin@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, identity.ID, output.Session.UserID)
	assert.True(t, output.Session.Capabilities().CanCreate)
}

func TestSessionService_Login_UnknownEmail(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	fx.identityRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrIdentityNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "secret"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	identity := &entity.Identity{ID: uuid.New(), Email: "admin@example.com", PasswordHash: "hashed"}
	fx.identityRepo.On("FindByEmail", ctx, "admin@example.com").Return(identity, nil)
	fx.hasher.On("Check", "wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "admin@example.com", Password: "wrong"})

	// Wrong password and unknown email look identical to the caller.
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Refresh_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	identity := &entity.Identity{ID: uuid.New(), Email: "admin@example.com"}
	token := &jwt.Token{
		Valid:  true,
		Claims: jwt.MapClaims{"sub": identity.ID.String(), "type": "refresh"},
	}

	fx.tokenService.On("ValidateToken", "refresh-token", testRefreshSecret).Return(token, nil)
	fx.identityRepo.On("FindByID", ctx, identity.ID).Return(identity, nil)
	fx.userRoleRepo.On("FindByUserID", ctx, identity.ID).Return(entity.Roles{entity.RoleAdmin}, nil)
	fx.tokenService.On("GenerateTokens", identity.ID, []string{"admin"}).Return("new-access", "new-refresh", nil)

	output, err := fx.service.Refresh(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestSessionService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestSessionService(t)

	fx.tokenService.On("ValidateToken", "garbage", testRefreshSecret).
		Return(nil, errors.New("token is malformed"))

	_, err := fx.service.Refresh(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})

	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestSessionService_Logout(t *testing.T) {
	fx := createTestSessionService(t)

	require.NoError(t, fx.service.Logout(context.Background(), adminSession()))
	require.ErrorIs(t, fx.service.Logout(context.Background(), &entity.Session{}), domainerrors.ErrUnauthenticated)
}

func TestSessionService_Refresh_IdentityGone(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	token := &jwt.Token{
		Valid:  true,
		Claims: jwt.MapClaims{"sub": userID.String(), "type": "refresh"},
	}

	fx.tokenService.On("ValidateToken", "refresh-token", testRefreshSecret).Return(token, nil)
	fx.identityRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrIdentityNotFound)

	_, err := fx.service.Refresh(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
