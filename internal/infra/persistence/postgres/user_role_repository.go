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

// userRoleRepository implements the domain.UserRoleRepository interface.
type userRoleRepository struct {
	db *gorm.DB
}

// NewUserRoleRepository is the constructor for userRoleRepository.
func NewUserRoleRepository(db *gorm.DB) repository.UserRoleRepository {
	return &userRoleRepository{db: db}
}

// Assign persists a role assignment for an identity.
func (repo *userRoleRepository) Assign(ctx context.Context, userRole *entity.UserRole) error {
	userRoleM := &model.UserRoleModel{
		UserID:     userRole.UserID,
		Role:       userRole.Role.String(),
		AssignedBy: userRole.AssignedBy,
		AssignedAt: userRole.AssignedAt,
	}

	if err := repo.db.WithContext(ctx).Create(userRoleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("role already assigned")
		}

		return domainerrors.NewDatastoreExecuteError(err, "failed to assign role")
	}

	return nil
}

// FindAll retrieves every role assignment in the system.
func (repo *userRoleRepository) FindAll(ctx context.Context) ([]*entity.UserRole, error) {
	var userRoleModels []model.UserRoleModel
	err := repo.db.WithContext(ctx).Find(&userRoleModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find role assignments")
	}

	userRoles := make([]*entity.UserRole, 0, len(userRoleModels))
	for _, userRoleM := range userRoleModels {
		userRoles = append(userRoles, &entity.UserRole{
			UserID:     userRoleM.UserID,
			Role:       entity.Role(userRoleM.Role),
			AssignedBy: userRoleM.AssignedBy,
			AssignedAt: userRoleM.AssignedAt,
		})
	}

	return userRoles, nil
}

// FindByUserID retrieves all roles assigned to an identity.
func (repo *userRoleRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (entity.Roles, error) {
	var userRoleModels []model.UserRoleModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&userRoleModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find roles by user ID")
	}

	roleStrings := make([]string, 0, len(userRoleModels))
	for _, userRoleM := range userRoleModels {
		roleStrings = append(roleStrings, userRoleM.Role)
	}

	return entity.RolesFromStrings(roleStrings), nil
}

// Remove deletes one role assignment.
func (repo *userRoleRepository) Remove(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	result := repo.db.WithContext(ctx).
		Delete(&model.UserRoleModel{}, "user_id = ? AND role = ?", userID, role.String())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove role assignment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoleNotAssigned
	}

	return nil
}

// DeleteByUserID removes every role assignment for an identity.
func (repo *userRoleRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Delete(&model.UserRoleModel{}, "user_id = ?", userID).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete roles by user ID")
	}

	return nil
}
