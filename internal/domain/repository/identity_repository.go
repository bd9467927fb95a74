package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for identity persistence.
var (
	// ErrIdentityNotFound is returned when an identity is not found.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrIdentityExists is returned when the email is already registered.
	ErrIdentityExists = errors.New("identity already exists for this email")
)

// IdentityRepository defines operations on email/password accounts. Only the
// privileged functions service writes identities.
type IdentityRepository interface {
	// Create persists a new identity. Returns ErrIdentityExists when the
	// email is already registered.
	Create(ctx context.Context, identity *entity.Identity) error

	// FindAll retrieves all identities ordered by email.
	FindAll(ctx context.Context) ([]*entity.Identity, error)

	// FindByID retrieves an identity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByEmail retrieves an identity by its email.
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// Delete removes an identity, revoking login. Irreversible.
	Delete(ctx context.Context, id uuid.UUID) error
}
