// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a physical location referenced by at most one managed entity at a
// time. The owning entity holds the foreign key, not the address.
type Address struct {
	ID              uuid.UUID `json:"id"`
	CountryID       uuid.UUID `json:"country_id"`
	State           string    `json:"state"`
	City            string    `json:"city"`
	StreetAddress   string    `json:"street_address"`
	PostalCode      string    `json:"postal_code"`
	BuildingNumber  string    `json:"building_number"`
	ApartmentNumber string    `json:"apartment_number"`
	AdditionalInfo  string    `json:"additional_info"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	CreatedBy       uuid.UUID `json:"created_by"`
	UpdatedBy       uuid.UUID `json:"updated_by"`

	Country *Country `json:"country,omitempty"`
}

// HasCoordinates reports whether the address carries a geocoded point.
func (a *Address) HasCoordinates() bool {
	return a != nil && a.Latitude != nil && a.Longitude != nil
}
