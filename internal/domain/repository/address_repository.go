// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and
// the infrastructure layer.
package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines address-related database operations. Addresses are
// written by the console before the owning entity write, and deleted as a
// compensating action when that write fails.
type AddressRepository interface {
	// Create persists a new address and fills in generated fields.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// Update updates an existing address record in place.
	Update(ctx context.Context, address *entity.Address) error

	// Delete removes an address by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
