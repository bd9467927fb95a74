// Package repository contains hand-written testify mocks for the persistence
// interfaces, used by the usecase tests.
package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockAddressRepository mocks repository.AddressRepository.
type MockAddressRepository struct {
	mock.Mock
}

// NewMockAddressRepository creates a mock that verifies expectations on cleanup.
func NewMockAddressRepository(t testingT) *MockAddressRepository {
	m := &MockAddressRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAddressRepository) Create(ctx context.Context, address *entity.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *MockAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Address), args.Error(1)
}

func (m *MockAddressRepository) Update(ctx context.Context, address *entity.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *MockAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockIdentityRepository mocks repository.IdentityRepository.
type MockIdentityRepository struct {
	mock.Mock
}

// NewMockIdentityRepository creates a mock that verifies expectations on cleanup.
func NewMockIdentityRepository(t testingT) *MockIdentityRepository {
	m := &MockIdentityRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockIdentityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	return m.Called(ctx, identity).Error(0)
}

func (m *MockIdentityRepository) FindAll(ctx context.Context) ([]*entity.Identity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Identity), args.Error(1)
}

func (m *MockIdentityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Identity), args.Error(1)
}

func (m *MockIdentityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Identity), args.Error(1)
}

func (m *MockIdentityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockUserRoleRepository mocks repository.UserRoleRepository.
type MockUserRoleRepository struct {
	mock.Mock
}

// NewMockUserRoleRepository creates a mock that verifies expectations on cleanup.
func NewMockUserRoleRepository(t testingT) *MockUserRoleRepository {
	m := &MockUserRoleRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRoleRepository) Assign(ctx context.Context, userRole *entity.UserRole) error {
	return m.Called(ctx, userRole).Error(0)
}

func (m *MockUserRoleRepository) FindAll(ctx context.Context) ([]*entity.UserRole, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.UserRole), args.Error(1)
}

func (m *MockUserRoleRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (entity.Roles, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(entity.Roles), args.Error(1)
}

func (m *MockUserRoleRepository) Remove(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	return m.Called(ctx, userID, role).Error(0)
}

func (m *MockUserRoleRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// MockOperatorRepository mocks repository.OperatorRepository.
type MockOperatorRepository struct {
	mock.Mock
}

// NewMockOperatorRepository creates a mock that verifies expectations on cleanup.
func NewMockOperatorRepository(t testingT) *MockOperatorRepository {
	m := &MockOperatorRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOperatorRepository) FindAll(ctx context.Context) ([]*entity.Operator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Operator), args.Error(1)
}

func (m *MockOperatorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Operator), args.Error(1)
}

func (m *MockOperatorRepository) Create(ctx context.Context, operator *entity.Operator) error {
	return m.Called(ctx, operator).Error(0)
}

func (m *MockOperatorRepository) Update(ctx context.Context, operator *entity.Operator) error {
	return m.Called(ctx, operator).Error(0)
}

func (m *MockOperatorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockFieldOperatorRepository mocks repository.FieldOperatorRepository.
type MockFieldOperatorRepository struct {
	mock.Mock
}

// NewMockFieldOperatorRepository creates a mock that verifies expectations on cleanup.
func NewMockFieldOperatorRepository(t testingT) *MockFieldOperatorRepository {
	m := &MockFieldOperatorRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFieldOperatorRepository) FindAll(ctx context.Context) ([]*entity.FieldOperator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.FieldOperator), args.Error(1)
}

func (m *MockFieldOperatorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FieldOperator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.FieldOperator), args.Error(1)
}

func (m *MockFieldOperatorRepository) Create(ctx context.Context, fieldOperator *entity.FieldOperator) error {
	return m.Called(ctx, fieldOperator).Error(0)
}

func (m *MockFieldOperatorRepository) Update(ctx context.Context, fieldOperator *entity.FieldOperator) error {
	return m.Called(ctx, fieldOperator).Error(0)
}

func (m *MockFieldOperatorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockServiceProviderRepository mocks repository.ServiceProviderRepository.
type MockServiceProviderRepository struct {
	mock.Mock
}

// NewMockServiceProviderRepository creates a mock that verifies expectations on cleanup.
func NewMockServiceProviderRepository(t testingT) *MockServiceProviderRepository {
	m := &MockServiceProviderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockServiceProviderRepository) FindAll(ctx context.Context) ([]*entity.ServiceProvider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ServiceProvider), args.Error(1)
}

func (m *MockServiceProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceProvider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ServiceProvider), args.Error(1)
}

func (m *MockServiceProviderRepository) Create(ctx context.Context, provider *entity.ServiceProvider) error {
	return m.Called(ctx, provider).Error(0)
}

func (m *MockServiceProviderRepository) Update(ctx context.Context, provider *entity.ServiceProvider) error {
	return m.Called(ctx, provider).Error(0)
}

func (m *MockServiceProviderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockServiceProviderRepository) ReplaceServiceTypes(ctx context.Context, providerID uuid.UUID, serviceTypeIDs []uuid.UUID, actorID uuid.UUID) error {
	return m.Called(ctx, providerID, serviceTypeIDs, actorID).Error(0)
}

func (m *MockServiceProviderRepository) ReplaceWorkingAreas(ctx context.Context, providerID uuid.UUID, workingAreaIDs []uuid.UUID, actorID uuid.UUID) error {
	return m.Called(ctx, providerID, workingAreaIDs, actorID).Error(0)
}

func (m *MockServiceProviderRepository) DeleteServiceTypes(ctx context.Context, providerID uuid.UUID) error {
	return m.Called(ctx, providerID).Error(0)
}

func (m *MockServiceProviderRepository) DeleteWorkingAreas(ctx context.Context, providerID uuid.UUID) error {
	return m.Called(ctx, providerID).Error(0)
}

// MockStoreRepository mocks repository.StoreRepository.
type MockStoreRepository struct {
	mock.Mock
}

// NewMockStoreRepository creates a mock that verifies expectations on cleanup.
func NewMockStoreRepository(t testingT) *MockStoreRepository {
	m := &MockStoreRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStoreRepository) FindAll(ctx context.Context) ([]*entity.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Store), args.Error(1)
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *MockStoreRepository) Create(ctx context.Context, store *entity.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *MockStoreRepository) Update(ctx context.Context, store *entity.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockTaxonomyRepository mocks repository.TaxonomyRepository.
type MockTaxonomyRepository struct {
	mock.Mock
}

// NewMockTaxonomyRepository creates a mock that verifies expectations on cleanup.
func NewMockTaxonomyRepository(t testingT) *MockTaxonomyRepository {
	m := &MockTaxonomyRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTaxonomyRepository) FindCategories(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockTaxonomyRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockTaxonomyRepository) UpdateCategory(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockTaxonomyRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaxonomyRepository) CreateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error {
	return m.Called(ctx, subcategory).Error(0)
}

func (m *MockTaxonomyRepository) UpdateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error {
	return m.Called(ctx, subcategory).Error(0)
}

func (m *MockTaxonomyRepository) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaxonomyRepository) CreateServiceType(ctx context.Context, serviceType *entity.ServiceType) error {
	return m.Called(ctx, serviceType).Error(0)
}

func (m *MockTaxonomyRepository) UpdateServiceType(ctx context.Context, serviceType *entity.ServiceType) error {
	return m.Called(ctx, serviceType).Error(0)
}

func (m *MockTaxonomyRepository) DeleteServiceType(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaxonomyRepository) FindStoreCategories(ctx context.Context) ([]*entity.StoreCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.StoreCategory), args.Error(1)
}

func (m *MockTaxonomyRepository) CreateStoreCategory(ctx context.Context, category *entity.StoreCategory) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockTaxonomyRepository) UpdateStoreCategory(ctx context.Context, category *entity.StoreCategory) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockTaxonomyRepository) DeleteStoreCategory(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockWorkingAreaRepository mocks repository.WorkingAreaRepository.
type MockWorkingAreaRepository struct {
	mock.Mock
}

// NewMockWorkingAreaRepository creates a mock that verifies expectations on cleanup.
func NewMockWorkingAreaRepository(t testingT) *MockWorkingAreaRepository {
	m := &MockWorkingAreaRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWorkingAreaRepository) FindAll(ctx context.Context) ([]*entity.WorkingArea, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.WorkingArea), args.Error(1)
}

func (m *MockWorkingAreaRepository) Create(ctx context.Context, area *entity.WorkingArea) error {
	return m.Called(ctx, area).Error(0)
}

func (m *MockWorkingAreaRepository) Update(ctx context.Context, area *entity.WorkingArea) error {
	return m.Called(ctx, area).Error(0)
}

func (m *MockWorkingAreaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockCountryRepository mocks repository.CountryRepository.
type MockCountryRepository struct {
	mock.Mock
}

// NewMockCountryRepository creates a mock that verifies expectations on cleanup.
func NewMockCountryRepository(t testingT) *MockCountryRepository {
	m := &MockCountryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCountryRepository) FindAll(ctx context.Context) ([]*entity.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Country), args.Error(1)
}

func (m *MockCountryRepository) Create(ctx context.Context, country *entity.Country) error {
	return m.Called(ctx, country).Error(0)
}

func (m *MockCountryRepository) Update(ctx context.Context, country *entity.Country) error {
	return m.Called(ctx, country).Error(0)
}

func (m *MockCountryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// PassthroughTransactionManager runs the callback immediately against the
// configured factory, mirroring the real commit-on-nil / rollback-on-error
// contract so tests observe the exact error the callback returns.
type PassthroughTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (p *PassthroughTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(p.Factory)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock that verifies expectations on cleanup.
func NewMockRepositoryFactory(t testingT) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) AddressRepo() repository.AddressRepository {
	return m.Called().Get(0).(repository.AddressRepository)
}

func (m *MockRepositoryFactory) IdentityRepo() repository.IdentityRepository {
	return m.Called().Get(0).(repository.IdentityRepository)
}

func (m *MockRepositoryFactory) UserRoleRepo() repository.UserRoleRepository {
	return m.Called().Get(0).(repository.UserRoleRepository)
}

func (m *MockRepositoryFactory) OperatorRepo() repository.OperatorRepository {
	return m.Called().Get(0).(repository.OperatorRepository)
}

func (m *MockRepositoryFactory) FieldOperatorRepo() repository.FieldOperatorRepository {
	return m.Called().Get(0).(repository.FieldOperatorRepository)
}

func (m *MockRepositoryFactory) ProviderRepo() repository.ServiceProviderRepository {
	return m.Called().Get(0).(repository.ServiceProviderRepository)
}

func (m *MockRepositoryFactory) StoreRepo() repository.StoreRepository {
	return m.Called().Get(0).(repository.StoreRepository)
}
