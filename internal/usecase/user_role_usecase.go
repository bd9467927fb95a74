package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRoleUsecase manages role assignments across all identities.
// Administrator-only surface.
type UserRoleUsecase interface {
	// ListUsers returns every identity with its assigned roles.
	ListUsers(ctx context.Context, sess *entity.Session) ([]*entity.UserAccount, error)

	// AssignRole grants a role to an identity.
	AssignRole(ctx context.Context, sess *entity.Session, userID uuid.UUID, role entity.Role) error

	// RemoveRole revokes a role from an identity.
	RemoveRole(ctx context.Context, sess *entity.Session, userID uuid.UUID, role entity.Role) error
}
