package service

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// OperatorFields holds the mutable profile fields of an operator.
type OperatorFields struct {
	FirstName   string     `json:"first_name" validate:"required"`
	LastName    string     `json:"last_name" validate:"required"`
	PhoneNumber string     `json:"phone_number"`
	WorkingArea string     `json:"working_area"`
	DateOfBirth string     `json:"date_of_birth"`
	Description string     `json:"description"`
	AddressID   *uuid.UUID `json:"address_id"`
}

// CreateOperatorPayload is the wire payload for the create-operator function.
type CreateOperatorPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	OperatorFields
}

// UpdateOperatorPayload is the wire payload for the update-operator function.
// Identity and email are immutable post-creation.
type UpdateOperatorPayload struct {
	ID uuid.UUID `json:"id" validate:"required"`
	OperatorFields
}

// FieldOperatorFields holds the mutable profile fields of a field operator.
type FieldOperatorFields struct {
	FirstName    string     `json:"first_name" validate:"required"`
	LastName     string     `json:"last_name" validate:"required"`
	PhoneNumber  string     `json:"phone_number"`
	WorkingArea  string     `json:"working_area"`
	DateOfBirth  string     `json:"date_of_birth"`
	Description  string     `json:"description"`
	ReferencedBy string     `json:"referenced_by"`
	Domain       string     `json:"domain"`
	AddressID    *uuid.UUID `json:"address_id"`
}

// CreateFieldOperatorPayload is the wire payload for create-field-operator.
type CreateFieldOperatorPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FieldOperatorFields
}

// UpdateFieldOperatorPayload is the wire payload for update-field-operator.
type UpdateFieldOperatorPayload struct {
	ID uuid.UUID `json:"id" validate:"required"`
	FieldOperatorFields
}

// ServiceProviderFields holds the mutable profile fields of a service
// provider, including its full join sets. The join sets are replaced as a
// whole on update; an empty set clears all associations.
type ServiceProviderFields struct {
	FirstName           string                `json:"first_name" validate:"required"`
	LastName            string                `json:"last_name" validate:"required"`
	PhoneNumber         string                `json:"phone_number"`
	WorkingAreaDiameter float64               `json:"working_area_diameter"`
	DateOfBirth         string                `json:"date_of_birth"`
	Description         string                `json:"description"`
	ReferencedBy        string                `json:"referenced_by"`
	IsCompany           bool                  `json:"is_company"`
	NumberOfEmployees   int                   `json:"number_of_employees"`
	Status              entity.ProviderStatus `json:"status" validate:"required,oneof=active inactive paused"`
	ServiceTypeIDs      []uuid.UUID           `json:"service_type_ids"`
	WorkingAreaIDs      []uuid.UUID           `json:"working_area_ids"`
	AddressID           *uuid.UUID            `json:"address_id"`
	FileURL             string                `json:"file_url"`
}

// CreateServiceProviderPayload is the wire payload for create-service-provider.
type CreateServiceProviderPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	ServiceProviderFields
}

// UpdateServiceProviderPayload is the wire payload for update-service-provider.
type UpdateServiceProviderPayload struct {
	ID uuid.UUID `json:"id" validate:"required"`
	ServiceProviderFields
}

// StoreFields holds the mutable profile fields of a store.
type StoreFields struct {
	Name           string     `json:"name" validate:"required"`
	OwnerFirstName string     `json:"owner_first_name"`
	OwnerLastName  string     `json:"owner_last_name"`
	CategoryID     uuid.UUID  `json:"category_id" validate:"required"`
	PhoneNumber    string     `json:"phone_number"`
	Description    string     `json:"description"`
	AddressID      *uuid.UUID `json:"address_id"`
}

// CreateStorePayload is the wire payload for create-store.
type CreateStorePayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	StoreFields
}

// UpdateStorePayload is the wire payload for update-store.
type UpdateStorePayload struct {
	ID uuid.UUID `json:"id" validate:"required"`
	StoreFields
}

// EntityMutator is the console's port to the privileged functions service.
// Each call is one remote procedure invocation authorized by the acting
// administrator's bearer token. On create, the function provisions the
// identity, assigns the role, inserts the profile row and the join rows; on
// delete it unwinds them in reverse with the identity last.
type EntityMutator interface {
	CreateOperator(ctx context.Context, token string, payload *CreateOperatorPayload) (*entity.Operator, error)
	UpdateOperator(ctx context.Context, token string, payload *UpdateOperatorPayload) (*entity.Operator, error)
	DeleteOperator(ctx context.Context, token string, id uuid.UUID) error

	CreateFieldOperator(ctx context.Context, token string, payload *CreateFieldOperatorPayload) (*entity.FieldOperator, error)
	UpdateFieldOperator(ctx context.Context, token string, payload *UpdateFieldOperatorPayload) (*entity.FieldOperator, error)
	DeleteFieldOperator(ctx context.Context, token string, id uuid.UUID) error

	CreateServiceProvider(ctx context.Context, token string, payload *CreateServiceProviderPayload) (*entity.ServiceProvider, error)
	UpdateServiceProvider(ctx context.Context, token string, payload *UpdateServiceProviderPayload) (*entity.ServiceProvider, error)
	DeleteServiceProvider(ctx context.Context, token string, id uuid.UUID) error

	CreateStore(ctx context.Context, token string, payload *CreateStorePayload) (*entity.Store, error)
	UpdateStore(ctx context.Context, token string, payload *UpdateStorePayload) (*entity.Store, error)
	DeleteStore(ctx context.Context, token string, id uuid.UUID) error
}
