package impl

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	mockRepo "backoffice/internal/mocks/repository"
	mockSvc "backoffice/internal/mocks/service"
	"backoffice/internal/usecase"
	"backoffice/internal/usecase/listing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// operatorServiceFixtures holds all test dependencies for operator service tests.
type operatorServiceFixtures struct {
	service      usecase.OperatorUsecase
	addressRepo  *mockRepo.MockAddressRepository
	operatorRepo *mockRepo.MockOperatorRepository
	mutator      *mockSvc.MockEntityMutator
	publisher    *mockSvc.MockEventPublisher
}

func createTestOperatorService(t *testing.T) operatorServiceFixtures {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	operatorRepo := mockRepo.NewMockOperatorRepository(t)
	mutator := mockSvc.NewMockEntityMutator(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := newDiscardLogger()

	svc := NewOperatorUsecase(
		NewAddressResolver(addressRepo, logger),
		addressRepo,
		operatorRepo,
		mutator,
		publisher,
		10,
		logger,
	)

	return operatorServiceFixtures{
		service:      svc,
		addressRepo:  addressRepo,
		operatorRepo: operatorRepo,
		mutator:      mutator,
		publisher:    publisher,
	}
}

func TestOperatorService_List_FiltersAndSorts(t *testing.T) {
	fx := createTestOperatorService(t)

	ctx := context.Background()
	rows := []*entity.Operator{
		{ID: uuid.New(), FirstName: "Zoe", LastName: "Nunes"},
		{ID: uuid.New(), FirstName: "Alexandra", LastName: "Pires"},
		{ID: uuid.New(), FirstName: "Bruno", LastName: "Alexio"},
	}
	fx.operatorRepo.On("FindAll", ctx).Return(rows, nil)

	page, err := fx.service.List(ctx, usecase.ListOptions{
		Term:      "alex",
		SortField: "first_name",
		Direction: listing.Ascending,
		Page:      1,
	})

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Alexandra", page.Items[0].FirstName)
	assert.Equal(t, "Bruno", page.Items[1].FirstName)
	assert.Equal(t, 2, page.TotalItems)
}

func TestOperatorService_List_SortsByCreatedAtDescending(t *testing.T) {
	fx := createTestOperatorService(t)

	ctx := context.Background()
	older := &entity.Operator{ID: uuid.New(), FirstName: "Old", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := &entity.Operator{ID: uuid.New(), FirstName: "New", CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
	fx.operatorRepo.On("FindAll", ctx).Return([]*entity.Operator{older, newer}, nil)

	page, err := fx.service.List(ctx, usecase.ListOptions{
		SortField: "created_at",
		Direction: listing.Descending,
		Page:      1,
	})

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "New", page.Items[0].FirstName)
}

func TestOperatorService_Get_NotFound(t *testing.T) {
	fx := createTestOperatorService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.operatorRepo.On("FindByID", ctx, id).Return(nil, repository.ErrOperatorNotFound)

	_, err := fx.service.Get(ctx, id)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestOperatorService_Submit_CreateSuccess(t *testing.T) {
	fx := createTestOperatorService(t)

	ctx := context.Background()
	sess := adminSession()
	mintedAddress := uuid.New()
	created := &entity.Operator{ID: uuid.New(), FirstName: "Ana"}

	fx.addressRepo.On("Create", ctx, mock.AnythingOfType("*entity.Address")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Address).ID = mintedAddress
		}).
		Return(nil)

	fx.mutator.On("CreateOperator", ctx, sess.AccessToken, mock.MatchedBy(func(payload *service.CreateOperatorPayload) bool {
		return payload.Email == "ana@example.com" &&
			payload.AddressID != nil && *payload.AddressID == mintedAddress
	})).Return(created, nil)

	fx.publisher.On("PublishAuditEvent", ctx, mock.MatchedBy(func(event *service.AuditEvent) bool {
		return event.EntityType == "operator" &&
			event.Action == service.AuditActionCreated &&
			event.EntityID == created.ID.String()
	})).Return(nil)

	result, err := fx.service.Submit(ctx, sess, &usecase.OperatorSubmitInput{
		Email:    "ana@example.com",
		Password: "secret",
		Profile:  service.OperatorFields{FirstName: "Ana", LastName: "Gomes"},
		Address:  usecase.AddressInput{CountryID: uuid.New()},
	})

	require.NoError(t, err)
	assert.Equal(t, created, result)
}

func TestOperatorService_Submit_CreateForbiddenForNonAdmin(t *testing.T) {
	fx := createTestOperatorService(t)

	_, err := fx.service.Submit(context.Background(), operatorSession(), &usecase.OperatorSubmitInput{
		Email:   "ana@example.com",
		Profile: service.OperatorFields{FirstName: "Ana", LastName: "Gomes"},
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestOperatorService_Submit_MutatorFailureRollsBackCreatedAddress(t *testing.T) {
	fx := createTestOperatorService(t)

	ctx := context.Background()
	sess := adminSession()
	mintedAddress := uuid.New()
	mutatorErr := domainerrors.ErrIdentityConflict.WrapMessage("email is already registered")

	fx.addressRepo.On("Create", ctx, mock.AnythingOfType("*entity.Address")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Address).ID = mintedAddress
		}).
		Return(nil)
	fx.mutator.On("CreateOperator", ctx, sess.AccessToken, mock.Anything).Return(nil, mutatorErr)
	fx.addressRepo.On("Delete", ctx, mintedAddress).Return(nil)

	_, err := fx.service.Submit(ctx, sess, &usecase.OperatorSubmitInput{
		Email:    "dup@example.com",
		Password: "secret",
		Profile:  service.OperatorFields{FirstName: "Ana", LastName: "Gomes"},
		Address:  usecase.AddressInput{CountryID: uuid.New()},
	})

	// The caller sees the mutator failure, not a rollback artifact.
	require.ErrorIs(t, err, domainerrors.ErrIdentityConflict)
	fx.addressRepo.AssertCalled(t, "Delete", ctx, mintedAddress)
}

func TestOperatorService_Submit_UpdateFailureLeavesAddressAlone(t *testing.T) {
	fx := createTestOperatorService(t)

	ctx := context.Background()
	sess := adminSession()
	operatorID := uuid.New()
	addressID := uuid.New()
	current := &entity.Operator{ID: operatorID, AddressID: &addressID}

	fx.operatorRepo.On("FindByID", ctx, operatorID).Return(current, nil)
	fx.addressRepo.On("Update", ctx, mock.AnythingOfType("*entity.Address")).Return(nil)
	fx.mutator.On("UpdateOperator", ctx, sess.AccessToken, mock.Anything).
		Return(nil, errors.New("functions service unavailable"))

	_, err := fx.service.Submit(ctx, sess, &usecase.OperatorSubmitInput{
		ID:      &operatorID,
		Profile: service.OperatorFields{FirstName: "Ana", LastName: "Gomes"},
		Address: usecase.AddressInput{CountryID: uuid.New()},
	})

	require.Error(t, err)
	// An updated-in-place address is never compensated.
	fx.addressRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestOperatorService_Submit_RequiresAuthenticatedSession(t *testing.T) {
	fx := createTestOperatorService(t)

	operatorID := uuid.New()
	current := &entity.Operator{ID: operatorID}
	fx.operatorRepo.On("FindByID", mock.Anything, operatorID).Return(current, nil)

	_, err := fx.service.Submit(context.Background(), &entity.Session{}, &usecase.OperatorSubmitInput{
		ID:      &operatorID,
		Profile: service.OperatorFields{FirstName: "Ana", LastName: "Gomes"},
	})

	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestOperatorService_Delete_Success(t *testing.T) {
	fx := createTestOperatorService(t)

	ctx := context.Background()
	sess := adminSession()
	id := uuid.New()

	fx.mutator.On("DeleteOperator", ctx, sess.AccessToken, id).Return(nil)
	fx.publisher.On("PublishAuditEvent", ctx, mock.MatchedBy(func(event *service.AuditEvent) bool {
		return event.Action == service.AuditActionDeleted && event.EntityID == id.String()
	})).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, sess, id))
}

func TestOperatorService_Delete_ForbiddenForNonAdmin(t *testing.T) {
	fx := createTestOperatorService(t)

	err := fx.service.Delete(context.Background(), operatorSession(), uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}
