package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

// ErrServiceProviderNotFound is returned when a service provider is not found.
var ErrServiceProviderNotFound = errors.New("service provider not found")

// ServiceProviderRepository defines service provider profile persistence,
// including the provider's many-to-many join sets.
type ServiceProviderRepository interface {
	// FindAll retrieves all providers with addresses, working areas and join
	// sets preloaded.
	FindAll(ctx context.Context) ([]*entity.ServiceProvider, error)

	// FindByID retrieves a single provider by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceProvider, error)

	// Create persists a new provider profile row.
	Create(ctx context.Context, provider *entity.ServiceProvider) error

	// Update modifies the mutable profile fields of an existing provider.
	Update(ctx context.Context, provider *entity.ServiceProvider) error

	// Delete removes a provider profile row.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceServiceTypes overwrites the provider's service type join set:
	// all existing rows are deleted, then the given set is inserted. An empty
	// set leaves zero rows.
	ReplaceServiceTypes(ctx context.Context, providerID uuid.UUID, serviceTypeIDs []uuid.UUID, actorID uuid.UUID) error

	// ReplaceWorkingAreas overwrites the provider's working area join set with
	// the same full-replace semantics as ReplaceServiceTypes.
	ReplaceWorkingAreas(ctx context.Context, providerID uuid.UUID, workingAreaIDs []uuid.UUID, actorID uuid.UUID) error

	// DeleteServiceTypes removes all service type join rows for a provider.
	DeleteServiceTypes(ctx context.Context, providerID uuid.UUID) error

	// DeleteWorkingAreas removes all working area join rows for a provider.
	DeleteWorkingAreas(ctx context.Context, providerID uuid.UUID) error
}
