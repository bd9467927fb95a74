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

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// Create persists a new address.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)
	if addressM.ID == uuid.Nil {
		addressM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid country reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatastoreExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindByID retrieves an address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Preload("Country").
		First(&addressM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// Update modifies an existing address record.
func (repo *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", addressM.ID).
		Updates(map[string]any{
			"country_id":       addressM.CountryID,
			"state":            addressM.State,
			"city":             addressM.City,
			"street_address":   addressM.StreetAddress,
			"postal_code":      addressM.PostalCode,
			"building_number":  addressM.BuildingNumber,
			"apartment_number": addressM.ApartmentNumber,
			"additional_info":  addressM.AdditionalInfo,
			"latitude":         addressM.Latitude,
			"longitude":        addressM.Longitude,
			"updated_by":       addressM.UpdatedBy,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid country reference")
		}

		return domainerrors.NewDatastoreExecuteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// Delete removes an address by its ID.
func (repo *addressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.AddressModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}

	// If no rows were affected, the address was not found.
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:              data.ID,
		CountryID:       data.CountryID,
		State:           data.State,
		City:            data.City,
		StreetAddress:   data.StreetAddress,
		PostalCode:      data.PostalCode,
		BuildingNumber:  data.BuildingNumber,
		ApartmentNumber: data.ApartmentNumber,
		AdditionalInfo:  data.AdditionalInfo,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		CreatedBy:       data.CreatedBy,
		UpdatedBy:       data.UpdatedBy,
		Country:         toCountryDomain(data.Country),
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:              data.ID,
		CountryID:       data.CountryID,
		State:           data.State,
		City:            data.City,
		StreetAddress:   data.StreetAddress,
		PostalCode:      data.PostalCode,
		BuildingNumber:  data.BuildingNumber,
		ApartmentNumber: data.ApartmentNumber,
		AdditionalInfo:  data.AdditionalInfo,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		CreatedBy:       data.CreatedBy,
		UpdatedBy:       data.UpdatedBy,
	}
}
