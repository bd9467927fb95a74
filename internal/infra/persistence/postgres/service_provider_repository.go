package postgres

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// serviceProviderRepository implements the domain.ServiceProviderRepository interface.
type serviceProviderRepository struct {
	db *gorm.DB
}

// NewServiceProviderRepository is the constructor for serviceProviderRepository.
func NewServiceProviderRepository(db *gorm.DB) repository.ServiceProviderRepository {
	return &serviceProviderRepository{db: db}
}

// FindAll retrieves all providers with addresses, working areas and join sets
// preloaded.
func (repo *serviceProviderRepository) FindAll(ctx context.Context) ([]*entity.ServiceProvider, error) {
	var providerModels []model.ServiceProviderModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Preload("Address.Country").
		Preload("ServiceTypes").
		Preload("WorkingAreas").
		Preload("WorkingAreas.WorkingArea").
		Find(&providerModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service providers")
	}

	providers := make([]*entity.ServiceProvider, 0, len(providerModels))
	for i := range providerModels {
		providers = append(providers, toServiceProviderDomain(&providerModels[i]))
	}

	return providers, nil
}

// FindByID retrieves a single provider by its unique ID.
func (repo *serviceProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceProvider, error) {
	var providerM model.ServiceProviderModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Preload("Address.Country").
		Preload("ServiceTypes").
		Preload("WorkingAreas").
		Preload("WorkingAreas.WorkingArea").
		First(&providerM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find service provider by ID")
	}

	return toServiceProviderDomain(&providerM), nil
}

// Create persists a new provider profile row. Join sets are written
// separately through ReplaceServiceTypes and ReplaceWorkingAreas.
func (repo *serviceProviderRepository) Create(ctx context.Context, provider *entity.ServiceProvider) error {
	providerM := fromServiceProviderDomain(provider)
	if providerM.ID == uuid.Nil {
		providerM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Omit("ServiceTypes", "WorkingAreas").Create(providerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("service provider profile already exists for this identity")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid identity or address reference")
		}

		return domainerrors.NewDatastoreExecuteError(err, "failed to create service provider")
	}

	provider.ID = providerM.ID
	provider.CreatedAt = providerM.CreatedAt
	provider.UpdatedAt = providerM.UpdatedAt

	return nil
}

// Update modifies the mutable profile fields of an existing provider.
func (repo *serviceProviderRepository) Update(ctx context.Context, provider *entity.ServiceProvider) error {
	providerM := fromServiceProviderDomain(provider)

	result := repo.db.WithContext(ctx).
		Model(&model.ServiceProviderModel{}).
		Where("id = ?", providerM.ID).
		Updates(map[string]any{
			"first_name":            providerM.FirstName,
			"last_name":             providerM.LastName,
			"phone_number":          providerM.PhoneNumber,
			"working_area_diameter": providerM.WorkingAreaDiameter,
			"date_of_birth":         providerM.DateOfBirth,
			"description":           providerM.Description,
			"referenced_by":         providerM.ReferencedBy,
			"is_company":            providerM.IsCompany,
			"number_of_employees":   providerM.NumberOfEmployees,
			"status":                providerM.Status,
			"address_id":            providerM.AddressID,
			"file_url":              providerM.FileURL,
			"updated_by":            providerM.UpdatedBy,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid address reference")
		}

		return domainerrors.NewDatastoreExecuteError(result.Error, "failed to update service provider")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceProviderNotFound
	}

	return nil
}

// Delete removes a provider profile row.
func (repo *serviceProviderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ServiceProviderModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete service provider")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceProviderNotFound
	}

	return nil
}

// ReplaceServiceTypes overwrites the provider's service type join set.
// Delete-then-insert keeps the replace idempotent; an empty set leaves zero rows.
func (repo *serviceProviderRepository) ReplaceServiceTypes(ctx context.Context, providerID uuid.UUID, serviceTypeIDs []uuid.UUID, actorID uuid.UUID) error {
	if err := repo.DeleteServiceTypes(ctx, providerID); err != nil {
		return err
	}
	if len(serviceTypeIDs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]model.ProviderServiceTypeModel, 0, len(serviceTypeIDs))
	for _, serviceTypeID := range serviceTypeIDs {
		rows = append(rows, model.ProviderServiceTypeModel{
			ProviderID:    providerID,
			ServiceTypeID: serviceTypeID,
			CreatedBy:     actorID,
			CreatedAt:     now,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid service type reference")
		}

		return domainerrors.NewDatastoreExecuteError(err, "failed to insert service type associations")
	}

	return nil
}

// ReplaceWorkingAreas overwrites the provider's working area join set with the
// same full-replace semantics as ReplaceServiceTypes.
func (repo *serviceProviderRepository) ReplaceWorkingAreas(ctx context.Context, providerID uuid.UUID, workingAreaIDs []uuid.UUID, actorID uuid.UUID) error {
	if err := repo.DeleteWorkingAreas(ctx, providerID); err != nil {
		return err
	}
	if len(workingAreaIDs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]model.ProviderWorkingAreaModel, 0, len(workingAreaIDs))
	for _, workingAreaID := range workingAreaIDs {
		rows = append(rows, model.ProviderWorkingAreaModel{
			ProviderID:    providerID,
			WorkingAreaID: workingAreaID,
			CreatedBy:     actorID,
			CreatedAt:     now,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid working area reference")
		}

		return domainerrors.NewDatastoreExecuteError(err, "failed to insert working area associations")
	}

	return nil
}

// DeleteServiceTypes removes all service type join rows for a provider.
func (repo *serviceProviderRepository) DeleteServiceTypes(ctx context.Context, providerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Delete(&model.ProviderServiceTypeModel{}, "provider_id = ?", providerID).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete service type associations")
	}

	return nil
}

// DeleteWorkingAreas removes all working area join rows for a provider.
func (repo *serviceProviderRepository) DeleteWorkingAreas(ctx context.Context, providerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Delete(&model.ProviderWorkingAreaModel{}, "provider_id = ?", providerID).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete working area associations")
	}

	return nil
}

// --- Mapper Functions ---

// toServiceProviderDomain converts a GORM ServiceProviderModel to a domain ServiceProvider entity.
func toServiceProviderDomain(data *model.ServiceProviderModel) *entity.ServiceProvider {
	if data == nil {
		return nil
	}

	serviceTypeIDs := make([]uuid.UUID, 0, len(data.ServiceTypes))
	for _, join := range data.ServiceTypes {
		serviceTypeIDs = append(serviceTypeIDs, join.ServiceTypeID)
	}

	workingAreaIDs := make([]uuid.UUID, 0, len(data.WorkingAreas))
	workingAreas := make([]entity.WorkingArea, 0, len(data.WorkingAreas))
	for _, join := range data.WorkingAreas {
		workingAreaIDs = append(workingAreaIDs, join.WorkingAreaID)
		if join.WorkingArea != nil {
			workingAreas = append(workingAreas, entity.WorkingArea{
				ID:   join.WorkingArea.ID,
				Name: join.WorkingArea.Name,
			})
		}
	}

	return &entity.ServiceProvider{
		ID:                  data.ID,
		UserID:              data.UserID,
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		PhoneNumber:         data.PhoneNumber,
		WorkingAreaDiameter: data.WorkingAreaDiameter,
		DateOfBirth:         data.DateOfBirth,
		Description:         data.Description,
		ReferencedBy:        data.ReferencedBy,
		IsCompany:           data.IsCompany,
		NumberOfEmployees:   data.NumberOfEmployees,
		Status:              entity.ProviderStatus(data.Status),
		AddressID:           data.AddressID,
		FileURL:             data.FileURL,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
		CreatedBy:           data.CreatedBy,
		UpdatedBy:           data.UpdatedBy,
		ServiceTypeIDs:      serviceTypeIDs,
		WorkingAreaIDs:      workingAreaIDs,
		Address:             toAddressDomain(data.Address),
		WorkingAreas:        workingAreas,
	}
}

// fromServiceProviderDomain converts a domain ServiceProvider entity to a GORM ServiceProviderModel.
func fromServiceProviderDomain(data *entity.ServiceProvider) *model.ServiceProviderModel {
	if data == nil {
		return nil
	}

	return &model.ServiceProviderModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		PhoneNumber:         data.PhoneNumber,
		WorkingAreaDiameter: data.WorkingAreaDiameter,
		DateOfBirth:         data.DateOfBirth,
		Description:         data.Description,
		ReferencedBy:        data.ReferencedBy,
		IsCompany:           data.IsCompany,
		NumberOfEmployees:   data.NumberOfEmployees,
		Status:              data.Status.String(),
		AddressID:           data.AddressID,
		FileURL:             data.FileURL,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
		CreatedBy:           data.CreatedBy,
		UpdatedBy:           data.UpdatedBy,
	}
}
