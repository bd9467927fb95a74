package repository

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// CountryRepository defines country reference data persistence.
type CountryRepository interface {
	// FindAll retrieves all countries ordered by name.
	FindAll(ctx context.Context) ([]*entity.Country, error)

	// Create persists a new country.
	Create(ctx context.Context, country *entity.Country) error

	// Update changes a country's name, code or phone code.
	Update(ctx context.Context, country *entity.Country) error

	// Delete removes a country.
	Delete(ctx context.Context, id uuid.UUID) error
}
