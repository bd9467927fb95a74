package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderStatus represents the operational state of a service provider.
type ProviderStatus string

const (
	// ProviderStatusActive means the provider accepts work.
	ProviderStatusActive ProviderStatus = "active"
	// ProviderStatusInactive means the provider is disabled.
	ProviderStatusInactive ProviderStatus = "inactive"
	// ProviderStatusPaused means the provider is temporarily unavailable.
	ProviderStatusPaused ProviderStatus = "paused"
)

// String returns the string representation of the ProviderStatus.
func (s ProviderStatus) String() string {
	return string(s)
}

// IsValid checks if the ProviderStatus is a valid value.
func (s ProviderStatus) IsValid() bool {
	switch s {
	case ProviderStatusActive, ProviderStatusInactive, ProviderStatusPaused:
		return true
	default:
		return false
	}
}

// ServiceProvider is a marketplace service provider profile tied 1:1 to an
// identity. Service types and working areas are many-to-many join sets,
// always replaced as a whole on update.
type ServiceProvider struct {
	ID                  uuid.UUID      `json:"id"`
	UserID              uuid.UUID      `json:"user_id"`
	FirstName           string         `json:"first_name"`
	LastName            string         `json:"last_name"`
	PhoneNumber         string         `json:"phone_number"`
	WorkingAreaDiameter float64        `json:"working_area_diameter"`
	DateOfBirth         string         `json:"date_of_birth"`
	Description         string         `json:"description"`
	ReferencedBy        string         `json:"referenced_by"`
	IsCompany           bool           `json:"is_company"`
	NumberOfEmployees   int            `json:"number_of_employees"`
	Status              ProviderStatus `json:"status"`
	AddressID           *uuid.UUID     `json:"address_id"`
	FileURL             string         `json:"file_url"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	CreatedBy           uuid.UUID      `json:"created_by"`
	UpdatedBy           uuid.UUID      `json:"updated_by"`

	ServiceTypeIDs []uuid.UUID `json:"service_type_ids"`
	WorkingAreaIDs []uuid.UUID `json:"working_area_ids"`

	Address      *Address      `json:"address,omitempty"`
	WorkingAreas []WorkingArea `json:"working_areas,omitempty"`
}
