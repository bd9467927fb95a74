package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	mockRepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userRoleServiceFixtures holds all test dependencies for role management tests.
type userRoleServiceFixtures struct {
	service      usecase.UserRoleUsecase
	identityRepo *mockRepo.MockIdentityRepository
	userRoleRepo *mockRepo.MockUserRoleRepository
}

func createTestUserRoleService(t *testing.T) userRoleServiceFixtures {
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	userRoleRepo := mockRepo.NewMockUserRoleRepository(t)

	svc := NewUserRoleUsecase(identityRepo, userRoleRepo, newDiscardLogger())

	return userRoleServiceFixtures{
		service:      svc,
		identityRepo: identityRepo,
		userRoleRepo: userRoleRepo,
	}
}

func TestUserRoleService_ListUsers_JoinsRoles(t *testing.T) {
	fx := createTestUserRoleService(t)

	ctx := context.Background()
	alice := &entity.Identity{ID: uuid.New(), Email: "alice@example.com"}
	bob := &entity.Identity{ID: uuid.New(), Email: "bob@example.com"}

	fx.identityRepo.On("FindAll", ctx).Return([]*entity.Identity{alice, bob}, nil)
	fx.userRoleRepo.On("FindAll", ctx).Return([]*entity.UserRole{
		{UserID: alice.ID, Role: entity.RoleAdmin},
		{UserID: alice.ID, Role: entity.RoleOperator},
	}, nil)

	accounts, err := fx.service.ListUsers(ctx, adminSession())

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "alice@example.com", accounts[0].Email)
	assert.Equal(t, entity.Roles{entity.RoleAdmin, entity.RoleOperator}, accounts[0].Roles)
	// Identities without assignments still appear, with an empty role set.
	assert.Equal(t, entity.Roles{}, accounts[1].Roles)
}

func TestUserRoleService_ListUsers_ForbiddenForNonAdmin(t *testing.T) {
	fx := createTestUserRoleService(t)

	_, err := fx.service.ListUsers(context.Background(), operatorSession())

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserRoleService_AssignRole_Success(t *testing.T) {
	fx := createTestUserRoleService(t)

	ctx := context.Background()
	sess := adminSession()
	identity := &entity.Identity{ID: uuid.New(), Email: "bob@example.com"}

	fx.identityRepo.On("FindByID", ctx, identity.ID).Return(identity, nil)
	fx.userRoleRepo.On("Assign", ctx, mock.MatchedBy(func(userRole *entity.UserRole) bool {
		return userRole.UserID == identity.ID &&
			userRole.Role == entity.RoleOperator &&
			userRole.AssignedBy == sess.UserID
	})).Return(nil)

	require.NoError(t, fx.service.AssignRole(ctx, sess, identity.ID, entity.RoleOperator))
}

func TestUserRoleService_AssignRole_UnknownRole(t *testing.T) {
	fx := createTestUserRoleService(t)

	err := fx.service.AssignRole(context.Background(), adminSession(), uuid.New(), entity.Role("superuser"))

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserRoleService_AssignRole_IdentityGone(t *testing.T) {
	fx := createTestUserRoleService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.identityRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrIdentityNotFound)

	err := fx.service.AssignRole(ctx, adminSession(), userID, entity.RoleOperator)

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRoleService_RemoveRole_Success(t *testing.T) {
	fx := createTestUserRoleService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.userRoleRepo.On("Remove", ctx, userID, entity.RoleOperator).Return(nil)

	require.NoError(t, fx.service.RemoveRole(ctx, adminSession(), userID, entity.RoleOperator))
}

func TestUserRoleService_RemoveRole_NotAssigned(t *testing.T) {
	fx := createTestUserRoleService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.userRoleRepo.On("Remove", ctx, userID, entity.RoleAdmin).Return(repository.ErrRoleNotAssigned)

	err := fx.service.RemoveRole(ctx, adminSession(), userID, entity.RoleAdmin)

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
