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

// operatorRepository implements the domain.OperatorRepository interface.
type operatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository is the constructor for operatorRepository.
func NewOperatorRepository(db *gorm.DB) repository.OperatorRepository {
	return &operatorRepository{db: db}
}

// FindAll retrieves all operators with their addresses preloaded.
func (repo *operatorRepository) FindAll(ctx context.Context) ([]*entity.Operator, error) {
	var operatorModels []model.OperatorModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Preload("Address.Country").
		Find(&operatorModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find operators")
	}

	operators := make([]*entity.Operator, 0, len(operatorModels))
	for i := range operatorModels {
		operators = append(operators, toOperatorDomain(&operatorModels[i]))
	}

	return operators, nil
}

// FindByID retrieves a single operator by its unique ID.
func (repo *operatorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	var operatorM model.OperatorModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Preload("Address.Country").
		First(&operatorM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOperatorNotFound
		}

		return nil, errors.Wrap(err, "failed to find operator by ID")
	}

	return toOperatorDomain(&operatorM), nil
}

// Create persists a new operator profile row.
func (repo *operatorRepository) Create(ctx context.Context, operator *entity.Operator) error {
	operatorM := fromOperatorDomain(operator)
	if operatorM.ID == uuid.Nil {
		operatorM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(operatorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("operator profile already exists for this identity")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid identity or address reference")
		}

		return domainerrors.NewDatastoreExecuteError(err, "failed to create operator")
	}

	operator.ID = operatorM.ID
	operator.CreatedAt = operatorM.CreatedAt
	operator.UpdatedAt = operatorM.UpdatedAt

	return nil
}

// Update modifies the mutable profile fields of an existing operator.
func (repo *operatorRepository) Update(ctx context.Context, operator *entity.Operator) error {
	operatorM := fromOperatorDomain(operator)

	result := repo.db.WithContext(ctx).
		Model(&model.OperatorModel{}).
		Where("id = ?", operatorM.ID).
		Updates(map[string]any{
			"first_name":    operatorM.FirstName,
			"last_name":     operatorM.LastName,
			"phone_number":  operatorM.PhoneNumber,
			"working_area":  operatorM.WorkingArea,
			"date_of_birth": operatorM.DateOfBirth,
			"description":   operatorM.Description,
			"address_id":    operatorM.AddressID,
			"updated_by":    operatorM.UpdatedBy,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid address reference")
		}

		return domainerrors.NewDatastoreExecuteError(result.Error, "failed to update operator")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOperatorNotFound
	}

	return nil
}

// Delete removes an operator profile row.
func (repo *operatorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.OperatorModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete operator")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOperatorNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOperatorDomain converts a GORM OperatorModel to a domain Operator entity.
func toOperatorDomain(data *model.OperatorModel) *entity.Operator {
	if data == nil {
		return nil
	}

	return &entity.Operator{
		ID:          data.ID,
		UserID:      data.UserID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		PhoneNumber: data.PhoneNumber,
		WorkingArea: data.WorkingArea,
		DateOfBirth: data.DateOfBirth,
		Description: data.Description,
		AddressID:   data.AddressID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		CreatedBy:   data.CreatedBy,
		UpdatedBy:   data.UpdatedBy,
		Address:     toAddressDomain(data.Address),
	}
}

// fromOperatorDomain converts a domain Operator entity to a GORM OperatorModel.
func fromOperatorDomain(data *entity.Operator) *model.OperatorModel {
	if data == nil {
		return nil
	}

	return &model.OperatorModel{
		ID:          data.ID,
		UserID:      data.UserID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		PhoneNumber: data.PhoneNumber,
		WorkingArea: data.WorkingArea,
		DateOfBirth: data.DateOfBirth,
		Description: data.Description,
		AddressID:   data.AddressID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		CreatedBy:   data.CreatedBy,
		UpdatedBy:   data.UpdatedBy,
	}
}
