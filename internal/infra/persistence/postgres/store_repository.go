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

// storeRepository implements the domain.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// FindAll retrieves all stores with their addresses and categories preloaded.
func (repo *storeRepository) FindAll(ctx context.Context) ([]*entity.Store, error) {
	var storeModels []model.StoreModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Preload("Address.Country").
		Preload("Category").
		Find(&storeModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stores")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for i := range storeModels {
		stores = append(stores, toStoreDomain(&storeModels[i]))
	}

	return stores, nil
}

// FindByID retrieves a single store by its unique ID.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Preload("Address.Country").
		Preload("Category").
		First(&storeM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM), nil
}

// Create persists a new store profile row.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)
	if storeM.ID == uuid.Nil {
		storeM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("store profile already exists for this identity")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid identity, category or address reference")
		}

		return domainerrors.NewDatastoreExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// Update modifies the mutable profile fields of an existing store.
func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", storeM.ID).
		Updates(map[string]any{
			"name":             storeM.Name,
			"owner_first_name": storeM.OwnerFirstName,
			"owner_last_name":  storeM.OwnerLastName,
			"category_id":      storeM.CategoryID,
			"phone_number":     storeM.PhoneNumber,
			"description":      storeM.Description,
			"address_id":       storeM.AddressID,
			"updated_by":       storeM.UpdatedBy,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category or address reference")
		}

		return domainerrors.NewDatastoreExecuteError(result.Error, "failed to update store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// Delete removes a store profile row.
func (repo *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.StoreModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	var category *entity.StoreCategory
	if data.Category != nil {
		category = &entity.StoreCategory{
			ID:   data.Category.ID,
			Name: data.Category.Name,
		}
	}

	return &entity.Store{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		OwnerFirstName: data.OwnerFirstName,
		OwnerLastName:  data.OwnerLastName,
		CategoryID:     data.CategoryID,
		PhoneNumber:    data.PhoneNumber,
		Description:    data.Description,
		AddressID:      data.AddressID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		CreatedBy:      data.CreatedBy,
		UpdatedBy:      data.UpdatedBy,
		Address:        toAddressDomain(data.Address),
		Category:       category,
	}
}

// fromStoreDomain converts a domain Store entity to a GORM StoreModel.
func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		OwnerFirstName: data.OwnerFirstName,
		OwnerLastName:  data.OwnerLastName,
		CategoryID:     data.CategoryID,
		PhoneNumber:    data.PhoneNumber,
		Description:    data.Description,
		AddressID:      data.AddressID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		CreatedBy:      data.CreatedBy,
		UpdatedBy:      data.UpdatedBy,
	}
}
