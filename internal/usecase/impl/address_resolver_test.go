package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	mockRepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddressResolver_Resolve_EmptyInputIsNoop(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	resolver := NewAddressResolver(addressRepo, newDiscardLogger())

	existing := uuid.New()
	id, wasCreated, err := resolver.Resolve(context.Background(), &existing, &usecase.AddressInput{}, uuid.New())

	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, &existing, id)
}

func TestAddressResolver_Resolve_UpdatesExisting(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	resolver := NewAddressResolver(addressRepo, newDiscardLogger())

	ctx := context.Background()
	existing := uuid.New()
	actorID := uuid.New()
	input := &usecase.AddressInput{
		CountryID: uuid.New(),
		City:      "Lisbon",
	}

	addressRepo.On("Update", ctx, mock.MatchedBy(func(address *entity.Address) bool {
		return address.ID == existing && address.City == "Lisbon" && address.UpdatedBy == actorID
	})).Return(nil)

	id, wasCreated, err := resolver.Resolve(ctx, &existing, input, actorID)

	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, &existing, id)
}

func TestAddressResolver_Resolve_CreatesWhenNoExisting(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	resolver := NewAddressResolver(addressRepo, newDiscardLogger())

	ctx := context.Background()
	actorID := uuid.New()
	minted := uuid.New()
	input := &usecase.AddressInput{CountryID: uuid.New()}

	addressRepo.On("Create", ctx, mock.AnythingOfType("*entity.Address")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Address).ID = minted
		}).
		Return(nil)

	id, wasCreated, err := resolver.Resolve(ctx, nil, input, actorID)

	require.NoError(t, err)
	assert.True(t, wasCreated)
	require.NotNil(t, id)
	assert.Equal(t, minted, *id)
}

func TestAddressResolver_Resolve_CreateFailure(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	resolver := NewAddressResolver(addressRepo, newDiscardLogger())

	ctx := context.Background()
	addressRepo.On("Create", ctx, mock.AnythingOfType("*entity.Address")).
		Return(errors.New("constraint violated"))

	id, wasCreated, err := resolver.Resolve(ctx, nil, &usecase.AddressInput{CountryID: uuid.New()}, uuid.New())

	require.Error(t, err)
	assert.False(t, wasCreated)
	assert.Nil(t, id)
}
