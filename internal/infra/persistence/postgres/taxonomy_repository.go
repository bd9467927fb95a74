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

// taxonomyRepository implements the domain.TaxonomyRepository interface.
type taxonomyRepository struct {
	db *gorm.DB
}

// NewTaxonomyRepository is the constructor for taxonomyRepository.
func NewTaxonomyRepository(db *gorm.DB) repository.TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

// FindCategories retrieves the full taxonomy tree.
func (repo *taxonomyRepository) FindCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	err := repo.db.WithContext(ctx).
		Preload("Subcategories").
		Preload("Subcategories.ServiceTypes").
		Order("name asc").
		Find(&categoryModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, toCategoryDomain(&categoryModels[i]))
	}

	return categories, nil
}

// CreateCategory persists a new top-level category.
func (repo *taxonomyRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	categoryM := &model.CategoryModel{ID: category.ID, Name: category.Name}
	if categoryM.ID == uuid.Nil {
		categoryM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return domainerrors.NewDatastoreExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt

	return nil
}

// UpdateCategory renames a category.
func (repo *taxonomyRepository) UpdateCategory(ctx context.Context, category *entity.Category) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Update("name", category.Name)
	if result.Error != nil {
		return domainerrors.NewDatastoreExecuteError(result.Error, "failed to rename category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaxonomyNotFound
	}

	return nil
}

// DeleteCategory removes a category and cascades to its children.
func (repo *taxonomyRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaxonomyNotFound
	}

	return nil
}

// CreateSubcategory persists a new subcategory under a category.
func (repo *taxonomyRepository) CreateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error {
	subcategoryM := &model.SubcategoryModel{
		ID:         subcategory.ID,
		CategoryID: subcategory.CategoryID,
		Name:       subcategory.Name,
	}
	if subcategoryM.ID == uuid.Nil {
		subcategoryM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(subcategoryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category reference")
		}

		return domainerrors.NewDatastoreExecuteError(err, "failed to create subcategory")
	}

	subcategory.ID = subcategoryM.ID
	subcategory.CreatedAt = subcategoryM.CreatedAt

	return nil
}

// UpdateSubcategory renames a subcategory.
func (repo *taxonomyRepository) UpdateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubcategoryModel{}).
		Where("id = ?", subcategory.ID).
		Update("name", subcategory.Name)
	if result.Error != nil {
		return domainerrors.NewDatastoreExecuteError(result.Error, "failed to rename subcategory")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaxonomyNotFound
	}

	return nil
}

// DeleteSubcategory removes a subcategory and cascades to its service types.
func (repo *taxonomyRepository) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.SubcategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subcategory")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaxonomyNotFound
	}

	return nil
}

// CreateServiceType persists a new service type under a subcategory.
func (repo *taxonomyRepository) CreateServiceType(ctx context.Context, serviceType *entity.ServiceType) error {
	serviceTypeM := &model.ServiceTypeModel{
		ID:            serviceType.ID,
		SubcategoryID: serviceType.SubcategoryID,
		Name:          serviceType.Name,
	}
	if serviceTypeM.ID == uuid.Nil {
		serviceTypeM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(serviceTypeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid subcategory reference")
		}

		return domainerrors.NewDatastoreExecuteError(err, "failed to create service type")
	}

	serviceType.ID = serviceTypeM.ID
	serviceType.CreatedAt = serviceTypeM.CreatedAt

	return nil
}

// UpdateServiceType renames a service type.
func (repo *taxonomyRepository) UpdateServiceType(ctx context.Context, serviceType *entity.ServiceType) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceTypeModel{}).
		Where("id = ?", serviceType.ID).
		Update("name", serviceType.Name)
	if result.Error != nil {
		return domainerrors.NewDatastoreExecuteError(result.Error, "failed to rename service type")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaxonomyNotFound
	}

	return nil
}

// DeleteServiceType removes a service type.
func (repo *taxonomyRepository) DeleteServiceType(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ServiceTypeModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete service type")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaxonomyNotFound
	}

	return nil
}

// FindStoreCategories retrieves all store categories.
func (repo *taxonomyRepository) FindStoreCategories(ctx context.Context) ([]*entity.StoreCategory, error) {
	var categoryModels []model.StoreCategoryModel
	err := repo.db.WithContext(ctx).Order("name asc").Find(&categoryModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find store categories")
	}

	categories := make([]*entity.StoreCategory, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, &entity.StoreCategory{ID: categoryM.ID, Name: categoryM.Name})
	}

	return categories, nil
}

// CreateStoreCategory persists a new store category.
func (repo *taxonomyRepository) CreateStoreCategory(ctx context.Context, category *entity.StoreCategory) error {
	categoryM := &model.StoreCategoryModel{ID: category.ID, Name: category.Name}
	if categoryM.ID == uuid.Nil {
		categoryM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return domainerrors.NewDatastoreExecuteError(err, "failed to create store category")
	}

	category.ID = categoryM.ID

	return nil
}

// UpdateStoreCategory renames a store category.
func (repo *taxonomyRepository) UpdateStoreCategory(ctx context.Context, category *entity.StoreCategory) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreCategoryModel{}).
		Where("id = ?", category.ID).
		Update("name", category.Name)
	if result.Error != nil {
		return domainerrors.NewDatastoreExecuteError(result.Error, "failed to rename store category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaxonomyNotFound
	}

	return nil
}

// DeleteStoreCategory removes a store category.
func (repo *taxonomyRepository) DeleteStoreCategory(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.StoreCategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete store category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaxonomyNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	subcategories := make([]entity.Subcategory, 0, len(data.Subcategories))
	for _, subcategoryM := range data.Subcategories {
		serviceTypes := make([]entity.ServiceType, 0, len(subcategoryM.ServiceTypes))
		for _, serviceTypeM := range subcategoryM.ServiceTypes {
			serviceTypes = append(serviceTypes, entity.ServiceType{
				ID:            serviceTypeM.ID,
				SubcategoryID: serviceTypeM.SubcategoryID,
				Name:          serviceTypeM.Name,
				CreatedAt:     serviceTypeM.CreatedAt,
			})
		}

		subcategories = append(subcategories, entity.Subcategory{
			ID:           subcategoryM.ID,
			CategoryID:   subcategoryM.CategoryID,
			Name:         subcategoryM.Name,
			CreatedAt:    subcategoryM.CreatedAt,
			ServiceTypes: serviceTypes,
		})
	}

	return &entity.Category{
		ID:            data.ID,
		Name:          data.Name,
		CreatedAt:     data.CreatedAt,
		Subcategories: subcategories,
	}
}
