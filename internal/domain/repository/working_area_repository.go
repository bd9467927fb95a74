package repository

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// WorkingAreaRepository defines working area reference data persistence.
type WorkingAreaRepository interface {
	// FindAll retrieves all working areas ordered by name.
	FindAll(ctx context.Context) ([]*entity.WorkingArea, error)

	// Create persists a new working area.
	Create(ctx context.Context, area *entity.WorkingArea) error

	// Update renames a working area.
	Update(ctx context.Context, area *entity.WorkingArea) error

	// Delete removes a working area.
	Delete(ctx context.Context, id uuid.UUID) error
}
