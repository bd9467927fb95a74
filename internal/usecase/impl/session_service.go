package impl

import (
	"context"
	"log/slog"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	identityRepo  repository.IdentityRepository
	userRoleRepo  repository.UserRoleRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	refreshSecret string
	logger        *slog.Logger
}

// NewSessionUsecase is the constructor for sessionService.
func NewSessionUsecase(
	identityRepo repository.IdentityRepository,
	userRoleRepo repository.UserRoleRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	refreshSecret string,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		identityRepo:  identityRepo,
		userRoleRepo:  userRoleRepo,
		hasher:        hasher,
		tokenService:  tokenService,
		refreshSecret: refreshSecret,
		logger:        logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Login verifies the email and password and issues a token pair. Invalid
// email and wrong password are indistinguishable to the caller.
func (s *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	identity, err := s.identityRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("invalid email or password")
		}

		return nil, errors.Wrap(err, "failed to look up identity")
	}

	if !s.hasher.Check(input.Password, identity.PasswordHash) {
		s.log(ctx).Warn("Rejected login with wrong password", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("invalid email or password")
	}

	return s.issue(ctx, identity)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *sessionService) Refresh(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.LoginOutput, error) {
	token, err := s.tokenService.ValidateToken(input.RefreshToken, s.refreshSecret)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("invalid refresh token claims")
	}
	subject, err := claims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("refresh token has no subject")
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("refresh token subject is not an identity")
	}

	identity, err := s.identityRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrUnauthenticated.WrapMessage("identity no longer exists")
		}

		return nil, errors.Wrap(err, "failed to look up identity")
	}

	return s.issue(ctx, identity)
}

// Logout records the sign-out. Access and refresh tokens expire on their own.
func (s *sessionService) Logout(ctx context.Context, sess *entity.Session) error {
	if !sess.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated.WrapMessage("logout requires an authenticated session")
	}

	s.log(ctx).Info("Session signed out", slog.Any("userID", sess.UserID))

	return nil
}

func (s *sessionService) issue(ctx context.Context, identity *entity.Identity) (*usecase.LoginOutput, error) {
	roles, err := s.userRoleRepo.FindByUserID(ctx, identity.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load roles")
	}

	accessToken, refreshToken, err := s.tokenService.GenerateTokens(identity.ID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	s.log(ctx).Info("Issued session", slog.Any("userID", identity.ID))

	return &usecase.LoginOutput{
		Session: &entity.Session{
			UserID:      identity.ID,
			Email:       identity.Email,
			Roles:       roles,
			AccessToken: accessToken,
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
