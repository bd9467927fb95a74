package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase/listing"

	"github.com/google/uuid"
)

// FieldOperatorSubmitInput carries one field operator create or update
// submission. A nil ID means create; a set ID means update.
type FieldOperatorSubmitInput struct {
	ID       *uuid.UUID                  `json:"id"`
	Email    string                      `json:"email"`
	Password string                      `json:"password"`
	Profile  service.FieldOperatorFields `json:"profile"`
	Address  AddressInput                `json:"address"`
}

// FieldOperatorUsecase manages field operator profiles.
type FieldOperatorUsecase interface {
	List(ctx context.Context, opts ListOptions) (*listing.Page[*entity.FieldOperator], error)
	Get(ctx context.Context, id uuid.UUID) (*entity.FieldOperator, error)
	Submit(ctx context.Context, sess *entity.Session, input *FieldOperatorSubmitInput) (*entity.FieldOperator, error)
	Delete(ctx context.Context, sess *entity.Session, id uuid.UUID) error
}
