package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

// ErrFieldOperatorNotFound is returned when a field operator is not found.
var ErrFieldOperatorNotFound = errors.New("field operator not found")

// FieldOperatorRepository defines field operator profile persistence.
type FieldOperatorRepository interface {
	// FindAll retrieves all field operators with their addresses preloaded.
	FindAll(ctx context.Context) ([]*entity.FieldOperator, error)

	// FindByID retrieves a single field operator by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FieldOperator, error)

	// Create persists a new field operator profile row.
	Create(ctx context.Context, fieldOperator *entity.FieldOperator) error

	// Update modifies the mutable profile fields of an existing field operator.
	Update(ctx context.Context, fieldOperator *entity.FieldOperator) error

	// Delete removes a field operator profile row.
	Delete(ctx context.Context, id uuid.UUID) error
}
