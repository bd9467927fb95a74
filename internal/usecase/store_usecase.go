package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase/listing"

	"github.com/google/uuid"
)

// StoreSubmitInput carries one store create or update submission.
// A nil ID means create; a set ID means update.
type StoreSubmitInput struct {
	ID       *uuid.UUID          `json:"id"`
	Email    string              `json:"email"`
	Password string              `json:"password"`
	Profile  service.StoreFields `json:"profile"`
	Address  AddressInput        `json:"address"`
}

// StoreUsecase manages store profiles.
type StoreUsecase interface {
	List(ctx context.Context, opts ListOptions) (*listing.Page[*entity.Store], error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	Submit(ctx context.Context, sess *entity.Session, input *StoreSubmitInput) (*entity.Store, error)
	Delete(ctx context.Context, sess *entity.Session, id uuid.UUID) error
}
