package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// workingAreaRepository implements the domain.WorkingAreaRepository interface.
type workingAreaRepository struct {
	db *gorm.DB
}

// NewWorkingAreaRepository is the constructor for workingAreaRepository.
func NewWorkingAreaRepository(db *gorm.DB) repository.WorkingAreaRepository {
	return &workingAreaRepository{db: db}
}

// FindAll retrieves all working areas.
func (repo *workingAreaRepository) FindAll(ctx context.Context) ([]*entity.WorkingArea, error) {
	var areaModels []model.WorkingAreaModel
	err := repo.db.WithContext(ctx).Order("name asc").Find(&areaModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find working areas")
	}

	areas := make([]*entity.WorkingArea, 0, len(areaModels))
	for _, areaM := range areaModels {
		areas = append(areas, &entity.WorkingArea{ID: areaM.ID, Name: areaM.Name})
	}

	return areas, nil
}

// Create persists a new working area.
func (repo *workingAreaRepository) Create(ctx context.Context, area *entity.WorkingArea) error {
	areaM := &model.WorkingAreaModel{ID: area.ID, Name: area.Name}
	if areaM.ID == uuid.Nil {
		areaM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(areaM).Error; err != nil {
		return domainerrors.NewDatastoreExecuteError(err, "failed to create working area")
	}

	area.ID = areaM.ID

	return nil
}

// Update renames a working area.
func (repo *workingAreaRepository) Update(ctx context.Context, area *entity.WorkingArea) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WorkingAreaModel{}).
		Where("id = ?", area.ID).
		Update("name", area.Name)
	if result.Error != nil {
		return domainerrors.NewDatastoreExecuteError(result.Error, "failed to rename working area")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaxonomyNotFound
	}

	return nil
}

// Delete removes a working area.
func (repo *workingAreaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.WorkingAreaModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete working area")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaxonomyNotFound
	}

	return nil
}

// countryRepository implements the domain.CountryRepository interface.
type countryRepository struct {
	db *gorm.DB
}

// NewCountryRepository is the constructor for countryRepository.
func NewCountryRepository(db *gorm.DB) repository.CountryRepository {
	return &countryRepository{db: db}
}

// FindAll retrieves all countries.
func (repo *countryRepository) FindAll(ctx context.Context) ([]*entity.Country, error) {
	var countryModels []model.CountryModel
	err := repo.db.WithContext(ctx).Order("name asc").Find(&countryModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find countries")
	}

	countries := make([]*entity.Country, 0, len(countryModels))
	for i := range countryModels {
		countries = append(countries, toCountryDomain(&countryModels[i]))
	}

	return countries, nil
}

// Create persists a new country.
func (repo *countryRepository) Create(ctx context.Context, country *entity.Country) error {
	countryM := &model.CountryModel{
		ID:        country.ID,
		Name:      country.Name,
		Code:      country.Code,
		PhoneCode: country.PhoneCode,
	}
	if countryM.ID == uuid.Nil {
		countryM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(countryM).Error; err != nil {
		return domainerrors.NewDatastoreExecuteError(err, "failed to create country")
	}

	country.ID = countryM.ID

	return nil
}

// Update changes a country's name, code or phone code.
func (repo *countryRepository) Update(ctx context.Context, country *entity.Country) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CountryModel{}).
		Where("id = ?", country.ID).
		Updates(map[string]any{
			"name":       country.Name,
			"code":       country.Code,
			"phone_code": country.PhoneCode,
		})
	if result.Error != nil {
		return domainerrors.NewDatastoreExecuteError(result.Error, "failed to update country")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaxonomyNotFound
	}

	return nil
}

// Delete removes a country.
func (repo *countryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.CountryModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete country")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaxonomyNotFound
	}

	return nil
}

// toCountryDomain converts a GORM CountryModel to a domain Country entity.
func toCountryDomain(data *model.CountryModel) *entity.Country {
	if data == nil {
		return nil
	}

	return &entity.Country{
		ID:        data.ID,
		Name:      data.Name,
		Code:      data.Code,
		PhoneCode: data.PhoneCode,
	}
}
