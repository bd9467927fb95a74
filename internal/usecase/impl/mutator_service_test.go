package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	mockRepo "backoffice/internal/mocks/repository"
	mockSvc "backoffice/internal/mocks/service"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mutatorServiceFixtures holds all test dependencies for mutator service tests.
type mutatorServiceFixtures struct {
	service      usecase.MutatorUsecase
	factory      *mockRepo.MockRepositoryFactory
	identityRepo *mockRepo.MockIdentityRepository
	userRoleRepo *mockRepo.MockUserRoleRepository
	hasher       *mockSvc.MockPasswordHasher
}

func createTestMutatorService(t *testing.T) mutatorServiceFixtures {
	factory := mockRepo.NewMockRepositoryFactory(t)
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	userRoleRepo := mockRepo.NewMockUserRoleRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	svc := NewMutatorUsecase(
		&mockRepo.PassthroughTransactionManager{Factory: factory},
		hasher,
		newDiscardLogger(),
	)

	return mutatorServiceFixtures{
		service:      svc,
		factory:      factory,
		identityRepo: identityRepo,
		userRoleRepo: userRoleRepo,
		hasher:       hasher,
	}
}

func TestMutatorService_CreateOperator_Success(t *testing.T) {
	fx := createTestMutatorService(t)
	operatorRepo := mockRepo.NewMockOperatorRepository(t)

	ctx := context.Background()
	fx.factory.On("IdentityRepo").Return(fx.identityRepo)
	fx.factory.On("UserRoleRepo").Return(fx.userRoleRepo)
	fx.factory.On("OperatorRepo").Return(operatorRepo)

	fx.hasher.On("Hash", "secret").Return("hashed", nil)

	var identityID uuid.UUID
	fx.identityRepo.On("Create", ctx, mock.MatchedBy(func(identity *entity.Identity) bool {
		identityID = identity.ID

		return identity.Email == "ana@example.com" && identity.PasswordHash == "hashed"
	})).Return(nil)

	fx.userRoleRepo.On("Assign", ctx, mock.MatchedBy(func(userRole *entity.UserRole) bool {
		// Provisioning marks the assignment as self-assigned.
		return userRole.Role == entity.RoleOperator && userRole.AssignedBy == userRole.UserID
	})).Return(nil)

	operatorRepo.On("Create", ctx, mock.MatchedBy(func(operator *entity.Operator) bool {
		return operator.UserID == identityID &&
			operator.CreatedBy == identityID &&
			operator.FirstName == "Ana"
	})).Return(nil)

	created, err := fx.service.CreateOperator(ctx, &service.CreateOperatorPayload{
		Email:          "ana@example.com",
		Password:       "secret",
		OperatorFields: service.OperatorFields{FirstName: "Ana", LastName: "Gomes"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana", created.FirstName)
}

func TestMutatorService_CreateOperator_DuplicateEmail(t *testing.T) {
	fx := createTestMutatorService(t)

	ctx := context.Background()
	fx.factory.On("IdentityRepo").Return(fx.identityRepo)
	fx.hasher.On("Hash", "secret").Return("hashed", nil)
	fx.identityRepo.On("Create", ctx, mock.Anything).Return(repository.ErrIdentityExists)

	_, err := fx.service.CreateOperator(ctx, &service.CreateOperatorPayload{
		Email:          "dup@example.com",
		Password:       "secret",
		OperatorFields: service.OperatorFields{FirstName: "Ana", LastName: "Gomes"},
	})

	require.ErrorIs(t, err, domainerrors.ErrIdentityConflict)
}

func TestMutatorService_CreateServiceProvider_WritesJoinSets(t *testing.T) {
	fx := createTestMutatorService(t)
	providerRepo := mockRepo.NewMockServiceProviderRepository(t)

	ctx := context.Background()
	serviceTypeIDs := []uuid.UUID{uuid.New(), uuid.New()}
	workingAreaIDs := []uuid.UUID{uuid.New()}

	fx.factory.On("IdentityRepo").Return(fx.identityRepo)
	fx.factory.On("UserRoleRepo").Return(fx.userRoleRepo)
	fx.factory.On("ProviderRepo").Return(providerRepo)

	fx.hasher.On("Hash", "secret").Return("hashed", nil)
	fx.identityRepo.On("Create", ctx, mock.Anything).Return(nil)
	fx.userRoleRepo.On("Assign", ctx, mock.MatchedBy(func(userRole *entity.UserRole) bool {
		return userRole.Role == entity.RoleServiceProvider
	})).Return(nil)

	providerRepo.On("Create", ctx, mock.AnythingOfType("*entity.ServiceProvider")).Return(nil)
	providerRepo.On("ReplaceServiceTypes", ctx, mock.AnythingOfType("uuid.UUID"), serviceTypeIDs, mock.AnythingOfType("uuid.UUID")).Return(nil)
	providerRepo.On("ReplaceWorkingAreas", ctx, mock.AnythingOfType("uuid.UUID"), workingAreaIDs, mock.AnythingOfType("uuid.UUID")).Return(nil)

	created, err := fx.service.CreateServiceProvider(ctx, &service.CreateServiceProviderPayload{
		Email:    "provider@example.com",
		Password: "secret",
		ServiceProviderFields: service.ServiceProviderFields{
			FirstName:      "Rui",
			LastName:       "Costa",
			Status:         entity.ProviderStatusActive,
			ServiceTypeIDs: serviceTypeIDs,
			WorkingAreaIDs: workingAreaIDs,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, serviceTypeIDs, created.ServiceTypeIDs)
}

func TestMutatorService_UpdateServiceProvider_ReplacesJoinSetsWithEmpty(t *testing.T) {
	fx := createTestMutatorService(t)
	providerRepo := mockRepo.NewMockServiceProviderRepository(t)

	ctx := context.Background()
	providerID := uuid.New()
	userID := uuid.New()
	current := &entity.ServiceProvider{ID: providerID, UserID: userID, Status: entity.ProviderStatusActive}

	fx.factory.On("ProviderRepo").Return(providerRepo)
	providerRepo.On("FindByID", ctx, providerID).Return(current, nil)
	providerRepo.On("Update", ctx, mock.AnythingOfType("*entity.ServiceProvider")).Return(nil)
	// An empty payload set clears every association.
	providerRepo.On("ReplaceServiceTypes", ctx, providerID, []uuid.UUID(nil), userID).Return(nil)
	providerRepo.On("ReplaceWorkingAreas", ctx, providerID, []uuid.UUID(nil), userID).Return(nil)

	updated, err := fx.service.UpdateServiceProvider(ctx, &service.UpdateServiceProviderPayload{
		ID: providerID,
		ServiceProviderFields: service.ServiceProviderFields{
			FirstName: "Rui",
			LastName:  "Costa",
			Status:    entity.ProviderStatusPaused,
		},
	})

	require.NoError(t, err)
	assert.Empty(t, updated.ServiceTypeIDs)
	assert.Equal(t, entity.ProviderStatusPaused, updated.Status)
}

func TestMutatorService_DeleteServiceProvider_UnwindsInOrder(t *testing.T) {
	fx := createTestMutatorService(t)
	providerRepo := mockRepo.NewMockServiceProviderRepository(t)

	ctx := context.Background()
	providerID := uuid.New()
	userID := uuid.New()
	current := &entity.ServiceProvider{ID: providerID, UserID: userID}

	var order []string
	record := func(step string) func(mock.Arguments) {
		return func(mock.Arguments) { order = append(order, step) }
	}

	fx.factory.On("ProviderRepo").Return(providerRepo)
	fx.factory.On("UserRoleRepo").Return(fx.userRoleRepo)
	fx.factory.On("IdentityRepo").Return(fx.identityRepo)

	providerRepo.On("FindByID", ctx, providerID).Return(current, nil)
	providerRepo.On("DeleteServiceTypes", ctx, providerID).Run(record("service_types")).Return(nil)
	providerRepo.On("DeleteWorkingAreas", ctx, providerID).Run(record("working_areas")).Return(nil)
	providerRepo.On("Delete", ctx, providerID).Run(record("profile")).Return(nil)
	fx.userRoleRepo.On("DeleteByUserID", ctx, userID).Run(record("roles")).Return(nil)
	fx.identityRepo.On("Delete", ctx, userID).Run(record("identity")).Return(nil)

	require.NoError(t, fx.service.DeleteServiceProvider(ctx, providerID))
	// Dependents go first; the identity is always last.
	assert.Equal(t, []string{"service_types", "working_areas", "profile", "roles", "identity"}, order)
}

func TestMutatorService_UpdateStore_NotFound(t *testing.T) {
	fx := createTestMutatorService(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)

	ctx := context.Background()
	id := uuid.New()
	fx.factory.On("StoreRepo").Return(storeRepo)
	storeRepo.On("FindByID", ctx, id).Return(nil, repository.ErrStoreNotFound)

	_, err := fx.service.UpdateStore(ctx, &service.UpdateStorePayload{
		ID:          id,
		StoreFields: service.StoreFields{Name: "Corner Shop", CategoryID: uuid.New()},
	})

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMutatorService_DeleteOperator_IdentityGoesLast(t *testing.T) {
	fx := createTestMutatorService(t)
	operatorRepo := mockRepo.NewMockOperatorRepository(t)

	ctx := context.Background()
	operatorID := uuid.New()
	userID := uuid.New()

	var order []string
	record := func(step string) func(mock.Arguments) {
		return func(mock.Arguments) { order = append(order, step) }
	}

	fx.factory.On("OperatorRepo").Return(operatorRepo)
	fx.factory.On("UserRoleRepo").Return(fx.userRoleRepo)
	fx.factory.On("IdentityRepo").Return(fx.identityRepo)

	operatorRepo.On("FindByID", ctx, operatorID).Return(&entity.Operator{ID: operatorID, UserID: userID}, nil)
	operatorRepo.On("Delete", ctx, operatorID).Run(record("profile")).Return(nil)
	fx.userRoleRepo.On("DeleteByUserID", ctx, userID).Run(record("roles")).Return(nil)
	fx.identityRepo.On("Delete", ctx, userID).Run(record("identity")).Return(nil)

	require.NoError(t, fx.service.DeleteOperator(ctx, operatorID))
	assert.Equal(t, []string{"profile", "roles", "identity"}, order)
}
