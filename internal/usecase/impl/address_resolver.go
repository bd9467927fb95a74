// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// addressResolver implements the AddressResolver interface.
type addressResolver struct {
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// NewAddressResolver is the constructor for addressResolver.
func NewAddressResolver(
	addressRepo repository.AddressRepository,
	logger *slog.Logger,
) usecase.AddressResolver {
	return &addressResolver{
		addressRepo: addressRepo,
		logger:      logger,
	}
}

// Resolve persists the address portion of a submission and reports whether a
// new row was minted. The address is optional: without a chosen country the
// resolver leaves the existing identifier untouched.
func (r *addressResolver) Resolve(ctx context.Context, existingID *uuid.UUID, fields *usecase.AddressInput, actorID uuid.UUID) (*uuid.UUID, bool, error) {
	if fields.IsEmpty() {
		return existingID, false, nil
	}

	address := &entity.Address{
		CountryID:       fields.CountryID,
		State:           fields.State,
		City:            fields.City,
		StreetAddress:   fields.StreetAddress,
		PostalCode:      fields.PostalCode,
		BuildingNumber:  fields.BuildingNumber,
		ApartmentNumber: fields.ApartmentNumber,
		AdditionalInfo:  fields.AdditionalInfo,
		Latitude:        fields.Latitude,
		Longitude:       fields.Longitude,
		UpdatedBy:       actorID,
	}

	if existingID != nil {
		address.ID = *existingID
		if err := r.addressRepo.Update(ctx, address); err != nil {
			return nil, false, errors.Wrap(err, "failed to update address")
		}

		return existingID, false, nil
	}

	address.CreatedBy = actorID
	if err := r.addressRepo.Create(ctx, address); err != nil {
		return nil, false, errors.Wrap(err, "failed to create address")
	}

	r.logger.Debug("Created address for submission", slog.Any("addressID", address.ID))

	return &address.ID, true, nil
}
