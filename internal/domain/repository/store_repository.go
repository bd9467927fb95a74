package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

// ErrStoreNotFound is returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines store profile persistence.
type StoreRepository interface {
	// FindAll retrieves all stores with addresses and categories preloaded.
	FindAll(ctx context.Context) ([]*entity.Store, error)

	// FindByID retrieves a single store by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// Create persists a new store profile row.
	Create(ctx context.Context, store *entity.Store) error

	// Update modifies the mutable profile fields of an existing store.
	Update(ctx context.Context, store *entity.Store) error

	// Delete removes a store profile row.
	Delete(ctx context.Context, id uuid.UUID) error
}
