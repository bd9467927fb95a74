package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

// ErrOperatorNotFound is returned when an operator is not found.
var ErrOperatorNotFound = errors.New("operator not found")

// OperatorRepository defines operator profile persistence.
type OperatorRepository interface {
	// FindAll retrieves all operators with their addresses preloaded.
	FindAll(ctx context.Context) ([]*entity.Operator, error)

	// FindByID retrieves a single operator by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error)

	// Create persists a new operator profile row.
	Create(ctx context.Context, operator *entity.Operator) error

	// Update modifies the mutable profile fields of an existing operator.
	Update(ctx context.Context, operator *entity.Operator) error

	// Delete removes an operator profile row.
	Delete(ctx context.Context, id uuid.UUID) error
}
