package impl

import (
	"context"
	"log/slog"
	"strings"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
)

// taxonomyService implements the TaxonomyUsecase interface.
type taxonomyService struct {
	taxonomyRepo    repository.TaxonomyRepository
	workingAreaRepo repository.WorkingAreaRepository
	countryRepo     repository.CountryRepository
	logger          *slog.Logger
}

// NewTaxonomyUsecase is the constructor for taxonomyService.
func NewTaxonomyUsecase(
	taxonomyRepo repository.TaxonomyRepository,
	workingAreaRepo repository.WorkingAreaRepository,
	countryRepo repository.CountryRepository,
	logger *slog.Logger,
) usecase.TaxonomyUsecase {
	return &taxonomyService{
		taxonomyRepo:    taxonomyRepo,
		workingAreaRepo: workingAreaRepo,
		countryRepo:     countryRepo,
		logger:          logger,
	}
}

// guard rejects taxonomy mutations from non-administrators. Reads are open to
// every authenticated session.
func (s *taxonomyService) guard(sess *entity.Session) error {
	if !sess.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated.WrapMessage("taxonomy mutation requires an authenticated session")
	}
	if !sess.Capabilities().CanCreate {
		return domainerrors.ErrForbidden.WrapMessage("only administrators can modify the taxonomy")
	}

	return nil
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("name must not be empty")
	}

	return trimmed, nil
}

// ListCategories returns the full taxonomy tree.
func (s *taxonomyService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.taxonomyRepo.FindCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CreateCategory adds a new top-level category.
func (s *taxonomyService) CreateCategory(ctx context.Context, sess *entity.Session, name string) (*entity.Category, error) {
	if err := s.guard(sess); err != nil {
		return nil, err
	}
	trimmed, err := validateName(name)
	if err != nil {
		return nil, err
	}

	category := &entity.Category{ID: uuid.New(), Name: trimmed}
	if err := s.taxonomyRepo.CreateCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// RenameCategory changes a category's name.
func (s *taxonomyService) RenameCategory(ctx context.Context, sess *entity.Session, id uuid.UUID, name string) error {
	if err := s.guard(sess); err != nil {
		return err
	}
	trimmed, err := validateName(name)
	if err != nil {
		return err
	}

	if err := s.taxonomyRepo.UpdateCategory(ctx, &entity.Category{ID: id, Name: trimmed}); err != nil {
		if errors.Is(err, repository.ErrTaxonomyNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("category not found")
		}

		return errors.Wrap(err, "failed to rename category")
	}

	return nil
}

// DeleteCategory removes a category; subcategories and service types cascade.
func (s *taxonomyService) DeleteCategory(ctx context.Context, sess *entity.Session, id uuid.UUID) error {
	if err := s.guard(sess); err != nil {
		return err
	}

	if err := s.taxonomyRepo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaxonomyNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("category not found")
		}

		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}

// CreateSubcategory adds a new subcategory under a category.
func (s *taxonomyService) CreateSubcategory(ctx context.Context, sess *entity.Session, categoryID uuid.UUID, name string) (*entity.Subcategory, error) {
	if err := s.guard(sess); err != nil {
		return nil, err
	}
	trimmed, err := validateName(name)
	if err != nil {
		return nil, err
	}

	subcategory := &entity.Subcategory{ID: uuid.New(), CategoryID: categoryID, Name: trimmed}
	if err := s.taxonomyRepo.CreateSubcategory(ctx, subcategory); err != nil {
		return nil, errors.Wrap(err, "failed to create subcategory")
	}

	return subcategory, nil
}

// RenameSubcategory changes a subcategory's name.
func (s *taxonomyService) RenameSubcategory(ctx context.Context, sess *entity.Session, id uuid.UUID, name string) error {
	if err := s.guard(sess); err != nil {
		return err
	}
	trimmed, err := validateName(name)
	if err != nil {
		return err
	}

	if err := s.taxonomyRepo.UpdateSubcategory(ctx, &entity.Subcategory{ID: id, Name: trimmed}); err != nil {
		if errors.Is(err, repository.ErrTaxonomyNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("subcategory not found")
		}

		return errors.Wrap(err, "failed to rename subcategory")
	}

	return nil
}

// DeleteSubcategory removes a subcategory; service types cascade.
func (s *taxonomyService) DeleteSubcategory(ctx context.Context, sess *entity.Session, id uuid.UUID) error {
	if err := s.guard(sess); err != nil {
		return err
	}

	if err := s.taxonomyRepo.DeleteSubcategory(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaxonomyNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("subcategory not found")
		}

		return errors.Wrap(err, "failed to delete subcategory")
	}

	return nil
}

// CreateServiceType adds a new service type under a subcategory.
func (s *taxonomyService) CreateServiceType(ctx context.Context, sess *entity.Session, subcategoryID uuid.UUID, name string) (*entity.ServiceType, error) {
	if err := s.guard(sess); err != nil {
		return nil, err
	}
	trimmed, err := validateName(name)
	if err != nil {
		return nil, err
	}

	serviceType := &entity.ServiceType{ID: uuid.New(), SubcategoryID: subcategoryID, Name: trimmed}
	if err := s.taxonomyRepo.CreateServiceType(ctx, serviceType); err != nil {
		return nil, errors.Wrap(err, "failed to create service type")
	}

	return serviceType, nil
}

// RenameServiceType changes a service type's name.
func (s *taxonomyService) RenameServiceType(ctx context.Context, sess *entity.Session, id uuid.UUID, name string) error {
	if err := s.guard(sess); err != nil {
		return err
	}
	trimmed, err := validateName(name)
	if err != nil {
		return err
	}

	if err := s.taxonomyRepo.UpdateServiceType(ctx, &entity.ServiceType{ID: id, Name: trimmed}); err != nil {
		if errors.Is(err, repository.ErrTaxonomyNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("service type not found")
		}

		return errors.Wrap(err, "failed to rename service type")
	}

	return nil
}

// DeleteServiceType removes a service type.
func (s *taxonomyService) DeleteServiceType(ctx context.Context, sess *entity.Session, id uuid.UUID) error {
	if err := s.guard(sess); err != nil {
		return err
	}

	if err := s.taxonomyRepo.DeleteServiceType(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaxonomyNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("service type not found")
		}

		return errors.Wrap(err, "failed to delete service type")
	}

	return nil
}

// ListStoreCategories returns all store categories.
func (s *taxonomyService) ListStoreCategories(ctx context.Context) ([]*entity.StoreCategory, error) {
	categories, err := s.taxonomyRepo.FindStoreCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store categories")
	}

	return categories, nil
}

// CreateStoreCategory adds a new store category.
func (s *taxonomyService) CreateStoreCategory(ctx context.Context, sess *entity.Session, name string) (*entity.StoreCategory, error) {
	if err := s.guard(sess); err != nil {
		return nil, err
	}
	trimmed, err := validateName(name)
	if err != nil {
		return nil, err
	}

	category := &entity.StoreCategory{ID: uuid.New(), Name: trimmed}
	if err := s.taxonomyRepo.CreateStoreCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create store category")
	}

	return category, nil
}

// RenameStoreCategory changes a store category's name.
func (s *taxonomyService) RenameStoreCategory(ctx context.Context, sess *entity.Session, id uuid.UUID, name string) error {
	if err := s.guard(sess); err != nil {
		return err
	}
	trimmed, err := validateName(name)
	if err != nil {
		return err
	}

	if err := s.taxonomyRepo.UpdateStoreCategory(ctx, &entity.StoreCategory{ID: id, Name: trimmed}); err != nil {
		if errors.Is(err, repository.ErrTaxonomyNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("store category not found")
		}

		return errors.Wrap(err, "failed to rename store category")
	}

	return nil
}

// DeleteStoreCategory removes a store category.
func (s *taxonomyService) DeleteStoreCategory(ctx context.Context, sess *entity.Session, id uuid.UUID) error {
	if err := s.guard(sess); err != nil {
		return err
	}

	if err := s.taxonomyRepo.DeleteStoreCategory(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaxonomyNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("store category not found")
		}

		return errors.Wrap(err, "failed to delete store category")
	}

	return nil
}

// ListWorkingAreas returns all working areas.
func (s *taxonomyService) ListWorkingAreas(ctx context.Context) ([]*entity.WorkingArea, error) {
	areas, err := s.workingAreaRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list working areas")
	}

	return areas, nil
}

// CreateWorkingArea adds a new working area.
func (s *taxonomyService) CreateWorkingArea(ctx context.Context, sess *entity.Session, name string) (*entity.WorkingArea, error) {
	if err := s.guard(sess); err != nil {
		return nil, err
	}
	trimmed, err := validateName(name)
	if err != nil {
		return nil, err
	}

	area := &entity.WorkingArea{ID: uuid.New(), Name: trimmed}
	if err := s.workingAreaRepo.Create(ctx, area); err != nil {
		return nil, errors.Wrap(err, "failed to create working area")
	}

	return area, nil
}

// RenameWorkingArea changes a working area's name.
func (s *taxonomyService) RenameWorkingArea(ctx context.Context, sess *entity.Session, id uuid.UUID, name string) error {
	if err := s.guard(sess); err != nil {
		return err
	}
	trimmed, err := validateName(name)
	if err != nil {
		return err
	}

	if err := s.workingAreaRepo.Update(ctx, &entity.WorkingArea{ID: id, Name: trimmed}); err != nil {
		if errors.Is(err, repository.ErrTaxonomyNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("working area not found")
		}

		return errors.Wrap(err, "failed to rename working area")
	}

	return nil
}

// DeleteWorkingArea removes a working area.
func (s *taxonomyService) DeleteWorkingArea(ctx context.Context, sess *entity.Session, id uuid.UUID) error {
	if err := s.guard(sess); err != nil {
		return err
	}

	if err := s.workingAreaRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaxonomyNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("working area not found")
		}

		return errors.Wrap(err, "failed to delete working area")
	}

	return nil
}

// ListCountries returns all countries.
func (s *taxonomyService) ListCountries(ctx context.Context) ([]*entity.Country, error) {
	countries, err := s.countryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	return countries, nil
}

// validateCountry normalizes a country input. The ISO code is uppercased so
// lookups stay case-insensitive.
func validateCountry(input *usecase.CountryInput) (*entity.Country, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("country code must not be empty")
	}

	return &entity.Country{
		Name:      name,
		Code:      code,
		PhoneCode: strings.TrimSpace(input.PhoneCode),
	}, nil
}

// CreateCountry adds a new country.
func (s *taxonomyService) CreateCountry(ctx context.Context, sess *entity.Session, input *usecase.CountryInput) (*entity.Country, error) {
	if err := s.guard(sess); err != nil {
		return nil, err
	}
	country, err := validateCountry(input)
	if err != nil {
		return nil, err
	}

	country.ID = uuid.New()
	if err := s.countryRepo.Create(ctx, country); err != nil {
		return nil, errors.Wrap(err, "failed to create country")
	}

	return country, nil
}

// UpdateCountry changes a country's name, code or phone code.
func (s *taxonomyService) UpdateCountry(ctx context.Context, sess *entity.Session, id uuid.UUID, input *usecase.CountryInput) error {
	if err := s.guard(sess); err != nil {
		return err
	}
	country, err := validateCountry(input)
	if err != nil {
		return err
	}

	country.ID = id
	if err := s.countryRepo.Update(ctx, country); err != nil {
		if errors.Is(err, repository.ErrTaxonomyNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("country not found")
		}

		return errors.Wrap(err, "failed to update country")
	}

	return nil
}

// DeleteCountry removes a country.
func (s *taxonomyService) DeleteCountry(ctx context.Context, sess *entity.Session, id uuid.UUID) error {
	if err := s.guard(sess); err != nil {
		return err
	}

	if err := s.countryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaxonomyNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("country not found")
		}

		return errors.Wrap(err, "failed to delete country")
	}

	return nil
}
