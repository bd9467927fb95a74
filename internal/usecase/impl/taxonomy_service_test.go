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

// taxonomyServiceFixtures holds all test dependencies for taxonomy service tests.
type taxonomyServiceFixtures struct {
	service         usecase.TaxonomyUsecase
	taxonomyRepo    *mockRepo.MockTaxonomyRepository
	workingAreaRepo *mockRepo.MockWorkingAreaRepository
	countryRepo     *mockRepo.MockCountryRepository
}

func createTestTaxonomyService(t *testing.T) taxonomyServiceFixtures {
	taxonomyRepo := mockRepo.NewMockTaxonomyRepository(t)
	workingAreaRepo := mockRepo.NewMockWorkingAreaRepository(t)
	countryRepo := mockRepo.NewMockCountryRepository(t)

	svc := NewTaxonomyUsecase(taxonomyRepo, workingAreaRepo, countryRepo, newDiscardLogger())

	return taxonomyServiceFixtures{
		service:         svc,
		taxonomyRepo:    taxonomyRepo,
		workingAreaRepo: workingAreaRepo,
		countryRepo:     countryRepo,
	}
}

func TestTaxonomyService_CreateCategory_Success(t *testing.T) {
	fx := createTestTaxonomyService(t)

	ctx := context.Background()
	fx.taxonomyRepo.On("CreateCategory", ctx, mock.MatchedBy(func(category *entity.Category) bool {
		return category.Name == "Cleaning"
	})).Return(nil)

	category, err := fx.service.CreateCategory(ctx, adminSession(), "  Cleaning  ")

	require.NoError(t, err)
	assert.Equal(t, "Cleaning", category.Name)
	assert.NotEqual(t, uuid.Nil, category.ID)
}

func TestTaxonomyService_CreateCategory_EmptyName(t *testing.T) {
	fx := createTestTaxonomyService(t)

	_, err := fx.service.CreateCategory(context.Background(), adminSession(), "   ")

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTaxonomyService_CreateCategory_ForbiddenForNonAdmin(t *testing.T) {
	fx := createTestTaxonomyService(t)

	_, err := fx.service.CreateCategory(context.Background(), operatorSession(), "Cleaning")

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestTaxonomyService_RenameCategory_NotFound(t *testing.T) {
	fx := createTestTaxonomyService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.taxonomyRepo.On("UpdateCategory", ctx, mock.AnythingOfType("*entity.Category")).
		Return(repository.ErrTaxonomyNotFound)

	err := fx.service.RenameCategory(ctx, adminSession(), id, "Gardening")

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTaxonomyService_CreateServiceType_AttachesToSubcategory(t *testing.T) {
	fx := createTestTaxonomyService(t)

	ctx := context.Background()
	subcategoryID := uuid.New()
	fx.taxonomyRepo.On("CreateServiceType", ctx, mock.MatchedBy(func(serviceType *entity.ServiceType) bool {
		return serviceType.SubcategoryID == subcategoryID && serviceType.Name == "Window Cleaning"
	})).Return(nil)

	serviceType, err := fx.service.CreateServiceType(ctx, adminSession(), subcategoryID, "Window Cleaning")

	require.NoError(t, err)
	assert.Equal(t, subcategoryID, serviceType.SubcategoryID)
}

func TestTaxonomyService_StoreCategoryLifecycle(t *testing.T) {
	fx := createTestTaxonomyService(t)

	ctx := context.Background()
	fx.taxonomyRepo.On("CreateStoreCategory", ctx, mock.MatchedBy(func(category *entity.StoreCategory) bool {
		return category.Name == "Bakery"
	})).Return(nil)

	category, err := fx.service.CreateStoreCategory(ctx, adminSession(), "  Bakery  ")
	require.NoError(t, err)
	assert.Equal(t, "Bakery", category.Name)

	fx.taxonomyRepo.On("UpdateStoreCategory", ctx, mock.AnythingOfType("*entity.StoreCategory")).
		Return(repository.ErrTaxonomyNotFound)
	err = fx.service.RenameStoreCategory(ctx, adminSession(), uuid.New(), "Pastry")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	fx.taxonomyRepo.On("DeleteStoreCategory", ctx, category.ID).Return(nil)
	require.NoError(t, fx.service.DeleteStoreCategory(ctx, adminSession(), category.ID))
}

func TestTaxonomyService_WorkingAreaLifecycle(t *testing.T) {
	fx := createTestTaxonomyService(t)

	ctx := context.Background()
	fx.workingAreaRepo.On("Create", ctx, mock.MatchedBy(func(area *entity.WorkingArea) bool {
		return area.Name == "Alfama"
	})).Return(nil)

	area, err := fx.service.CreateWorkingArea(ctx, adminSession(), " Alfama ")
	require.NoError(t, err)
	assert.Equal(t, "Alfama", area.Name)

	fx.workingAreaRepo.On("Update", ctx, mock.MatchedBy(func(updated *entity.WorkingArea) bool {
		return updated.ID == area.ID && updated.Name == "Baixa"
	})).Return(nil)
	require.NoError(t, fx.service.RenameWorkingArea(ctx, adminSession(), area.ID, "Baixa"))

	fx.workingAreaRepo.On("Delete", ctx, area.ID).Return(repository.ErrTaxonomyNotFound)
	err = fx.service.DeleteWorkingArea(ctx, adminSession(), area.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTaxonomyService_CreateWorkingArea_ForbiddenForNonAdmin(t *testing.T) {
	fx := createTestTaxonomyService(t)

	_, err := fx.service.CreateWorkingArea(context.Background(), operatorSession(), "Alfama")

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestTaxonomyService_CreateCountry_UppercasesCode(t *testing.T) {
	fx := createTestTaxonomyService(t)

	ctx := context.Background()
	fx.countryRepo.On("Create", ctx, mock.MatchedBy(func(country *entity.Country) bool {
		return country.Name == "Portugal" && country.Code == "PT" && country.PhoneCode == "+351"
	})).Return(nil)

	country, err := fx.service.CreateCountry(ctx, adminSession(), &usecase.CountryInput{
		Name:      " Portugal ",
		Code:      "pt",
		PhoneCode: " +351 ",
	})

	require.NoError(t, err)
	assert.Equal(t, "PT", country.Code)
}

func TestTaxonomyService_CreateCountry_EmptyCode(t *testing.T) {
	fx := createTestTaxonomyService(t)

	_, err := fx.service.CreateCountry(context.Background(), adminSession(), &usecase.CountryInput{Name: "Portugal"})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTaxonomyService_UpdateCountry_NotFound(t *testing.T) {
	fx := createTestTaxonomyService(t)

	ctx := context.Background()
	fx.countryRepo.On("Update", ctx, mock.AnythingOfType("*entity.Country")).
		Return(repository.ErrTaxonomyNotFound)

	err := fx.service.UpdateCountry(ctx, adminSession(), uuid.New(), &usecase.CountryInput{Name: "Portugal", Code: "PT"})

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTaxonomyService_ListReferenceData(t *testing.T) {
	fx := createTestTaxonomyService(t)

	ctx := context.Background()
	areas := []*entity.WorkingArea{{ID: uuid.New(), Name: "Lisbon"}}
	countries := []*entity.Country{{ID: uuid.New(), Name: "Portugal"}}
	fx.workingAreaRepo.On("FindAll", ctx).Return(areas, nil)
	fx.countryRepo.On("FindAll", ctx).Return(countries, nil)

	gotAreas, err := fx.service.ListWorkingAreas(ctx)
	require.NoError(t, err)
	assert.Equal(t, areas, gotAreas)

	gotCountries, err := fx.service.ListCountries(ctx)
	require.NoError(t, err)
	assert.Equal(t, countries, gotCountries)
}
