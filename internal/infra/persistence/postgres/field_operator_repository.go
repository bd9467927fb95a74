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

// fieldOperatorRepository implements the domain.FieldOperatorRepository interface.
type fieldOperatorRepository struct {
	db *gorm.DB
}

// NewFieldOperatorRepository is the constructor for fieldOperatorRepository.
func NewFieldOperatorRepository(db *gorm.DB) repository.FieldOperatorRepository {
	return &fieldOperatorRepository{db: db}
}

// FindAll retrieves all field operators with their addresses preloaded.
func (repo *fieldOperatorRepository) FindAll(ctx context.Context) ([]*entity.FieldOperator, error) {
	var fieldOperatorModels []model.FieldOperatorModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Preload("Address.Country").
		Find(&fieldOperatorModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find field operators")
	}

	fieldOperators := make([]*entity.FieldOperator, 0, len(fieldOperatorModels))
	for i := range fieldOperatorModels {
		fieldOperators = append(fieldOperators, toFieldOperatorDomain(&fieldOperatorModels[i]))
	}

	return fieldOperators, nil
}

// FindByID retrieves a single field operator by its unique ID.
func (repo *fieldOperatorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FieldOperator, error) {
	var fieldOperatorM model.FieldOperatorModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Preload("Address.Country").
		First(&fieldOperatorM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFieldOperatorNotFound
		}

		return nil, errors.Wrap(err, "failed to find field operator by ID")
	}

	return toFieldOperatorDomain(&fieldOperatorM), nil
}

// Create persists a new field operator profile row.
func (repo *fieldOperatorRepository) Create(ctx context.Context, fieldOperator *entity.FieldOperator) error {
	fieldOperatorM := fromFieldOperatorDomain(fieldOperator)
	if fieldOperatorM.ID == uuid.Nil {
		fieldOperatorM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(fieldOperatorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("field operator profile already exists for this identity")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid identity or address reference")
		}

		return domainerrors.NewDatastoreExecuteError(err, "failed to create field operator")
	}

	fieldOperator.ID = fieldOperatorM.ID
	fieldOperator.CreatedAt = fieldOperatorM.CreatedAt
	fieldOperator.UpdatedAt = fieldOperatorM.UpdatedAt

	return nil
}

// Update modifies the mutable profile fields of an existing field operator.
func (repo *fieldOperatorRepository) Update(ctx context.Context, fieldOperator *entity.FieldOperator) error {
	fieldOperatorM := fromFieldOperatorDomain(fieldOperator)

	result := repo.db.WithContext(ctx).
		Model(&model.FieldOperatorModel{}).
		Where("id = ?", fieldOperatorM.ID).
		Updates(map[string]any{
			"first_name":    fieldOperatorM.FirstName,
			"last_name":     fieldOperatorM.LastName,
			"phone_number":  fieldOperatorM.PhoneNumber,
			"working_area":  fieldOperatorM.WorkingArea,
			"date_of_birth": fieldOperatorM.DateOfBirth,
			"description":   fieldOperatorM.Description,
			"referenced_by": fieldOperatorM.ReferencedBy,
			"domain":        fieldOperatorM.Domain,
			"address_id":    fieldOperatorM.AddressID,
			"updated_by":    fieldOperatorM.UpdatedBy,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid address reference")
		}

		return domainerrors.NewDatastoreExecuteError(result.Error, "failed to update field operator")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFieldOperatorNotFound
	}

	return nil
}

// Delete removes a field operator profile row.
func (repo *fieldOperatorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.FieldOperatorModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete field operator")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFieldOperatorNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFieldOperatorDomain converts a GORM FieldOperatorModel to a domain FieldOperator entity.
func toFieldOperatorDomain(data *model.FieldOperatorModel) *entity.FieldOperator {
	if data == nil {
		return nil
	}

	return &entity.FieldOperator{
		ID:           data.ID,
		UserID:       data.UserID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PhoneNumber:  data.PhoneNumber,
		WorkingArea:  data.WorkingArea,
		DateOfBirth:  data.DateOfBirth,
		Description:  data.Description,
		ReferencedBy: data.ReferencedBy,
		Domain:       data.Domain,
		AddressID:    data.AddressID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		CreatedBy:    data.CreatedBy,
		UpdatedBy:    data.UpdatedBy,
		Address:      toAddressDomain(data.Address),
	}
}

// fromFieldOperatorDomain converts a domain FieldOperator entity to a GORM FieldOperatorModel.
func fromFieldOperatorDomain(data *entity.FieldOperator) *model.FieldOperatorModel {
	if data == nil {
		return nil
	}

	return &model.FieldOperatorModel{
		ID:           data.ID,
		UserID:       data.UserID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PhoneNumber:  data.PhoneNumber,
		WorkingArea:  data.WorkingArea,
		DateOfBirth:  data.DateOfBirth,
		Description:  data.Description,
		ReferencedBy: data.ReferencedBy,
		Domain:       data.Domain,
		AddressID:    data.AddressID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		CreatedBy:    data.CreatedBy,
		UpdatedBy:    data.UpdatedBy,
	}
}
