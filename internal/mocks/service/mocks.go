// Package service contains hand-written testify mocks for the domain service
// interfaces, used by the usecase tests.
package service

import (
	"context"
	"io"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock that verifies expectations on cleanup.
func NewMockPasswordHasher(t testingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock that verifies expectations on cleanup.
func NewMockTokenService(t testingT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateTokens(userID uuid.UUID, roles []string) (string, string, error) {
	args := m.Called(userID, roles)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	args := m.Called(tokenString, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*jwt.Token), args.Error(1)
}

func (m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// MockEventPublisher mocks service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a mock that verifies expectations on cleanup.
func NewMockEventPublisher(t testingT) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishAuditEvent(ctx context.Context, event *service.AuditEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// MockDocumentStorage mocks service.DocumentStorage.
type MockDocumentStorage struct {
	mock.Mock
}

// NewMockDocumentStorage creates a mock that verifies expectations on cleanup.
func NewMockDocumentStorage(t testingT) *MockDocumentStorage {
	m := &MockDocumentStorage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDocumentStorage) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, body)

	return args.String(0), args.Error(1)
}

func (m *MockDocumentStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// MockEntityMutator mocks service.EntityMutator.
type MockEntityMutator struct {
	mock.Mock
}

// NewMockEntityMutator creates a mock that verifies expectations on cleanup.
func NewMockEntityMutator(t testingT) *MockEntityMutator {
	m := &MockEntityMutator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEntityMutator) CreateOperator(ctx context.Context, token string, payload *service.CreateOperatorPayload) (*entity.Operator, error) {
	args := m.Called(ctx, token, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Operator), args.Error(1)
}

func (m *MockEntityMutator) UpdateOperator(ctx context.Context, token string, payload *service.UpdateOperatorPayload) (*entity.Operator, error) {
	args := m.Called(ctx, token, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Operator), args.Error(1)
}

func (m *MockEntityMutator) DeleteOperator(ctx context.Context, token string, id uuid.UUID) error {
	return m.Called(ctx, token, id).Error(0)
}

func (m *MockEntityMutator) CreateFieldOperator(ctx context.Context, token string, payload *service.CreateFieldOperatorPayload) (*entity.FieldOperator, error) {
	args := m.Called(ctx, token, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.FieldOperator), args.Error(1)
}

func (m *MockEntityMutator) UpdateFieldOperator(ctx context.Context, token string, payload *service.UpdateFieldOperatorPayload) (*entity.FieldOperator, error) {
	args := m.Called(ctx, token, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.FieldOperator), args.Error(1)
}

func (m *MockEntityMutator) DeleteFieldOperator(ctx context.Context, token string, id uuid.UUID) error {
	return m.Called(ctx, token, id).Error(0)
}

func (m *MockEntityMutator) CreateServiceProvider(ctx context.Context, token string, payload *service.CreateServiceProviderPayload) (*entity.ServiceProvider, error) {
	args := m.Called(ctx, token, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ServiceProvider), args.Error(1)
}

func (m *MockEntityMutator) UpdateServiceProvider(ctx context.Context, token string, payload *service.UpdateServiceProviderPayload) (*entity.ServiceProvider, error) {
	args := m.Called(ctx, token, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ServiceProvider), args.Error(1)
}

func (m *MockEntityMutator) DeleteServiceProvider(ctx context.Context, token string, id uuid.UUID) error {
	return m.Called(ctx, token, id).Error(0)
}

func (m *MockEntityMutator) CreateStore(ctx context.Context, token string, payload *service.CreateStorePayload) (*entity.Store, error) {
	args := m.Called(ctx, token, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *MockEntityMutator) UpdateStore(ctx context.Context, token string, payload *service.UpdateStorePayload) (*entity.Store, error) {
	args := m.Called(ctx, token, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *MockEntityMutator) DeleteStore(ctx context.Context, token string, id uuid.UUID) error {
	return m.Called(ctx, token, id).Error(0)
}
