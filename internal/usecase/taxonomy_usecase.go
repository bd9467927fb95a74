package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// TaxonomyUsecase manages the service taxonomy and related reference data.
// Plain administrative CRUD; no orchestration contract.
type TaxonomyUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, sess *entity.Session, name string) (*entity.Category, error)
	RenameCategory(ctx context.Context, sess *entity.Session, id uuid.UUID, name string) error
	DeleteCategory(ctx context.Context, sess *entity.Session, id uuid.UUID) error

	CreateSubcategory(ctx context.Context, sess *entity.Session, categoryID uuid.UUID, name string) (*entity.Subcategory, error)
	RenameSubcategory(ctx context.Context, sess *entity.Session, id uuid.UUID, name string) error
	DeleteSubcategory(ctx context.Context, sess *entity.Session, id uuid.UUID) error

	CreateServiceType(ctx context.Context, sess *entity.Session, subcategoryID uuid.UUID, name string) (*entity.ServiceType, error)
	RenameServiceType(ctx context.Context, sess *entity.Session, id uuid.UUID, name string) error
	DeleteServiceType(ctx context.Context, sess *entity.Session, id uuid.UUID) error

	ListStoreCategories(ctx context.Context) ([]*entity.StoreCategory, error)
	CreateStoreCategory(ctx context.Context, sess *entity.Session, name string) (*entity.StoreCategory, error)
	RenameStoreCategory(ctx context.Context, sess *entity.Session, id uuid.UUID, name string) error
	DeleteStoreCategory(ctx context.Context, sess *entity.Session, id uuid.UUID) error

	ListWorkingAreas(ctx context.Context) ([]*entity.WorkingArea, error)
	CreateWorkingArea(ctx context.Context, sess *entity.Session, name string) (*entity.WorkingArea, error)
	RenameWorkingArea(ctx context.Context, sess *entity.Session, id uuid.UUID, name string) error
	DeleteWorkingArea(ctx context.Context, sess *entity.Session, id uuid.UUID) error

	ListCountries(ctx context.Context) ([]*entity.Country, error)
	CreateCountry(ctx context.Context, sess *entity.Session, input *CountryInput) (*entity.Country, error)
	UpdateCountry(ctx context.Context, sess *entity.Session, id uuid.UUID, input *CountryInput) error
	DeleteCountry(ctx context.Context, sess *entity.Session, id uuid.UUID) error
}

// CountryInput carries the editable country fields. The ISO code is stored
// uppercased.
type CountryInput struct {
	Name      string
	Code      string
	PhoneCode string
}
