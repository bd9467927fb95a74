package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

// ErrRoleNotAssigned is returned when removing a role the identity does not hold.
var ErrRoleNotAssigned = errors.New("role not assigned")

// UserRoleRepository defines operations on role assignments.
type UserRoleRepository interface {
	// Assign persists a role assignment for an identity.
	Assign(ctx context.Context, userRole *entity.UserRole) error

	// FindAll retrieves every role assignment in the system.
	FindAll(ctx context.Context) ([]*entity.UserRole, error)

	// FindByUserID retrieves all roles assigned to an identity.
	FindByUserID(ctx context.Context, userID uuid.UUID) (entity.Roles, error)

	// Remove deletes one role assignment. Returns ErrRoleNotAssigned when the
	// identity does not hold the role.
	Remove(ctx context.Context, userID uuid.UUID, role entity.Role) error

	// DeleteByUserID removes every role assignment for an identity.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
