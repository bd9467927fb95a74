package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase/listing"

	"github.com/google/uuid"
)

// ProviderSubmitInput carries one service provider create or update
// submission. A nil ID means create; a set ID means update.
type ProviderSubmitInput struct {
	ID       *uuid.UUID                    `json:"id"`
	Email    string                        `json:"email"`
	Password string                        `json:"password"`
	Profile  service.ServiceProviderFields `json:"profile"`
	Address  AddressInput                  `json:"address"`
}

// ProviderUsecase manages service provider profiles.
type ProviderUsecase interface {
	List(ctx context.Context, opts ListOptions) (*listing.Page[*entity.ServiceProvider], error)
	Get(ctx context.Context, id uuid.UUID) (*entity.ServiceProvider, error)
	Submit(ctx context.Context, sess *entity.Session, input *ProviderSubmitInput) (*entity.ServiceProvider, error)
	Delete(ctx context.Context, sess *entity.Session, id uuid.UUID) error

	// FindCovering returns active providers whose geocoded address lies
	// within their own working area diameter of the given point.
	FindCovering(ctx context.Context, lat, lng float64) ([]*entity.ServiceProvider, error)
}
