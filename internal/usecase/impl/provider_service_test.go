package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	mockRepo "backoffice/internal/mocks/repository"
	mockSvc "backoffice/internal/mocks/service"
	"backoffice/internal/usecase"
	"backoffice/internal/usecase/listing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProviderService(t *testing.T) (usecase.ProviderUsecase, *mockRepo.MockServiceProviderRepository) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	providerRepo := mockRepo.NewMockServiceProviderRepository(t)
	mutator := mockSvc.NewMockEntityMutator(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := newDiscardLogger()

	svc := NewProviderUsecase(
		NewAddressResolver(addressRepo, logger),
		addressRepo,
		providerRepo,
		mutator,
		publisher,
		10,
		logger,
	)

	return svc, providerRepo
}

func geocodedProvider(status entity.ProviderStatus, lat, lng, diameterKm float64) *entity.ServiceProvider {
	return &entity.ServiceProvider{
		ID:                  uuid.New(),
		Status:              status,
		WorkingAreaDiameter: diameterKm,
		Address: &entity.Address{
			Latitude:  &lat,
			Longitude: &lng,
		},
	}
}

func TestProviderService_List_MatchesWorkingAreaAndCity(t *testing.T) {
	svc, providerRepo := createTestProviderService(t)

	ctx := context.Background()
	inAlfama := &entity.ServiceProvider{
		ID:           uuid.New(),
		FirstName:    "Rui",
		Status:       entity.ProviderStatusActive,
		WorkingAreas: []entity.WorkingArea{{ID: uuid.New(), Name: "Alfama"}},
	}
	inPorto := &entity.ServiceProvider{
		ID:        uuid.New(),
		FirstName: "Sofia",
		Status:    entity.ProviderStatusActive,
		Address:   &entity.Address{City: "Porto"},
	}
	providerRepo.On("FindAll", ctx).
		Return([]*entity.ServiceProvider{inAlfama, inPorto, {ID: uuid.New(), FirstName: "Tiago"}}, nil).Times(2)

	byArea, err := svc.List(ctx, usecase.ListOptions{Term: "alfama"})
	require.NoError(t, err)
	require.Len(t, byArea.Items, 1)
	assert.Equal(t, inAlfama.ID, byArea.Items[0].ID)

	byCity, err := svc.List(ctx, usecase.ListOptions{Term: "porto"})
	require.NoError(t, err)
	require.Len(t, byCity.Items, 1)
	assert.Equal(t, inPorto.ID, byCity.Items[0].ID)
}

func TestProviderService_List_MatchesCompanyKind(t *testing.T) {
	svc, providerRepo := createTestProviderService(t)

	ctx := context.Background()
	company := &entity.ServiceProvider{ID: uuid.New(), FirstName: "Marta", IsCompany: true}
	solo := &entity.ServiceProvider{ID: uuid.New(), FirstName: "Nuno"}
	providerRepo.On("FindAll", ctx).Return([]*entity.ServiceProvider{company, solo}, nil)

	page, err := svc.List(ctx, usecase.ListOptions{Term: "company"})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, company.ID, page.Items[0].ID)
}

func TestProviderService_List_SortsEmployeeCountNumerically(t *testing.T) {
	svc, providerRepo := createTestProviderService(t)

	ctx := context.Background()
	ten := &entity.ServiceProvider{ID: uuid.New(), FirstName: "Ana", NumberOfEmployees: 10}
	nine := &entity.ServiceProvider{ID: uuid.New(), FirstName: "Bruno", NumberOfEmployees: 9}
	providerRepo.On("FindAll", ctx).Return([]*entity.ServiceProvider{ten, nine}, nil)

	page, err := svc.List(ctx, usecase.ListOptions{SortField: "number_of_employees", Direction: listing.Ascending})

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, 9, page.Items[0].NumberOfEmployees)
	assert.Equal(t, 10, page.Items[1].NumberOfEmployees)
}

func TestProviderService_FindCovering(t *testing.T) {
	svc, providerRepo := createTestProviderService(t)

	ctx := context.Background()
	// Lisbon city center; the search point is roughly 2.5 km away.
	near := geocodedProvider(entity.ProviderStatusActive, 38.7223, -9.1393, 10)
	tooSmall := geocodedProvider(entity.ProviderStatusActive, 38.7223, -9.1393, 2)
	inactive := geocodedProvider(entity.ProviderStatusInactive, 38.7223, -9.1393, 10)
	noAddress := &entity.ServiceProvider{ID: uuid.New(), Status: entity.ProviderStatusActive, WorkingAreaDiameter: 10}

	providerRepo.On("FindAll", ctx).
		Return([]*entity.ServiceProvider{near, tooSmall, inactive, noAddress}, nil)

	covering, err := svc.FindCovering(ctx, 38.7436, -9.1603)

	require.NoError(t, err)
	require.Len(t, covering, 1)
	assert.Equal(t, near.ID, covering[0].ID)
}

func TestProviderService_FindCovering_NoMatches(t *testing.T) {
	svc, providerRepo := createTestProviderService(t)

	ctx := context.Background()
	provider := geocodedProvider(entity.ProviderStatusActive, 38.7223, -9.1393, 10)
	providerRepo.On("FindAll", ctx).Return([]*entity.ServiceProvider{provider}, nil)

	// Porto is about 270 km from Lisbon.
	covering, err := svc.FindCovering(ctx, 41.1579, -8.6291)

	require.NoError(t, err)
	assert.Empty(t, covering)
}
