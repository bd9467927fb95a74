package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"

	"github.com/google/uuid"
)

// MutatorUsecase is the functions-service side of the privileged entity
// mutations. Each operation performs its full multi-row write sequence
// (identity, role, profile row, join rows) inside one database transaction;
// delete unwinds in strict dependency order with the identity last.
type MutatorUsecase interface {
	CreateOperator(ctx context.Context, payload *service.CreateOperatorPayload) (*entity.Operator, error)
	UpdateOperator(ctx context.Context, payload *service.UpdateOperatorPayload) (*entity.Operator, error)
	DeleteOperator(ctx context.Context, id uuid.UUID) error

	CreateFieldOperator(ctx context.Context, payload *service.CreateFieldOperatorPayload) (*entity.FieldOperator, error)
	UpdateFieldOperator(ctx context.Context, payload *service.UpdateFieldOperatorPayload) (*entity.FieldOperator, error)
	DeleteFieldOperator(ctx context.Context, id uuid.UUID) error

	CreateServiceProvider(ctx context.Context, payload *service.CreateServiceProviderPayload) (*entity.ServiceProvider, error)
	UpdateServiceProvider(ctx context.Context, payload *service.UpdateServiceProviderPayload) (*entity.ServiceProvider, error)
	DeleteServiceProvider(ctx context.Context, id uuid.UUID) error

	CreateStore(ctx context.Context, payload *service.CreateStorePayload) (*entity.Store, error)
	UpdateStore(ctx context.Context, payload *service.UpdateStorePayload) (*entity.Store, error)
	DeleteStore(ctx context.Context, id uuid.UUID) error
}
