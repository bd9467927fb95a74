package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase/listing"

	"github.com/google/uuid"
)

// OperatorSubmitInput carries one operator create or update submission.
// A nil ID means create; a set ID means update.
type OperatorSubmitInput struct {
	ID       *uuid.UUID            `json:"id"`
	Email    string                `json:"email"`
	Password string                `json:"password"`
	Profile  service.OperatorFields `json:"profile"`
	Address  AddressInput          `json:"address"`
}

// OperatorUsecase manages operator profiles.
type OperatorUsecase interface {
	// List returns one page of operators after filter/sort/paginate.
	List(ctx context.Context, opts ListOptions) (*listing.Page[*entity.Operator], error)

	// Get retrieves a single operator.
	Get(ctx context.Context, id uuid.UUID) (*entity.Operator, error)

	// Submit runs the create-or-update saga: resolve the address, invoke the
	// privileged mutator, and compensate a newly created address on failure.
	Submit(ctx context.Context, sess *entity.Session, input *OperatorSubmitInput) (*entity.Operator, error)

	// Delete removes the operator through the privileged mutator.
	Delete(ctx context.Context, sess *entity.Session, id uuid.UUID) error
}
