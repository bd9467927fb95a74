package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

// ErrTaxonomyNotFound is returned when a taxonomy row is not found.
var ErrTaxonomyNotFound = errors.New("taxonomy entry not found")

// TaxonomyRepository defines CRUD over the three-level service taxonomy and
// store categories. Pure reference data; no orchestration contract.
type TaxonomyRepository interface {
	// FindCategories retrieves the full taxonomy tree (categories with
	// subcategories and service types preloaded).
	FindCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateCategory persists a new top-level category.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// UpdateCategory renames a category.
	UpdateCategory(ctx context.Context, category *entity.Category) error

	// DeleteCategory removes a category and cascades to its children.
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// CreateSubcategory persists a new subcategory under a category.
	CreateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error

	// UpdateSubcategory renames a subcategory.
	UpdateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error

	// DeleteSubcategory removes a subcategory and cascades to its service types.
	DeleteSubcategory(ctx context.Context, id uuid.UUID) error

	// CreateServiceType persists a new service type under a subcategory.
	CreateServiceType(ctx context.Context, serviceType *entity.ServiceType) error

	// UpdateServiceType renames a service type.
	UpdateServiceType(ctx context.Context, serviceType *entity.ServiceType) error

	// DeleteServiceType removes a service type.
	DeleteServiceType(ctx context.Context, id uuid.UUID) error

	// FindStoreCategories retrieves all store categories.
	FindStoreCategories(ctx context.Context) ([]*entity.StoreCategory, error)

	// CreateStoreCategory persists a new store category.
	CreateStoreCategory(ctx context.Context, category *entity.StoreCategory) error

	// UpdateStoreCategory renames a store category.
	UpdateStoreCategory(ctx context.Context, category *entity.StoreCategory) error

	// DeleteStoreCategory removes a store category.
	DeleteStoreCategory(ctx context.Context, id uuid.UUID) error
}
