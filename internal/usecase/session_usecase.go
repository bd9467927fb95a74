package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// LoginInput carries a login request.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the issued session.
type LoginOutput struct {
	Session      *entity.Session `json:"session"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
}

// RefreshTokenInput carries a token refresh request.
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SessionUsecase manages administrative sessions.
type SessionUsecase interface {
	// Login verifies credentials against the identity store and issues a
	// token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, input *RefreshTokenInput) (*LoginOutput, error)

	// Logout ends the session. Tokens are stateless, so this only records the
	// sign-out; the caller discards its token pair.
	Logout(ctx context.Context, sess *entity.Session) error
}
