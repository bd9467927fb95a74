// Package usecase defines the application's business interfaces and the
// input/output shapes they exchange with the delivery layer.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AddressInput carries the address form fields of a submission. The address
// is optional: it is only persisted once a country has been chosen.
type AddressInput struct {
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
}

// IsEmpty reports whether no country has been chosen, in which case the
// resolver is a no-op.
func (in *AddressInput) IsEmpty() bool {
	return in == nil || in.CountryID == uuid.Nil
}

// AddressResolver resolves the address portion of a submission: update in
// place when editing, insert when creating, no-op when no country is set.
// wasCreated reports whether the returned identifier was newly minted, which
// decides whether a later mutator failure triggers a compensating delete.
type AddressResolver interface {
	Resolve(ctx context.Context, existingID *uuid.UUID, fields *AddressInput, actorID uuid.UUID) (addressID *uuid.UUID, wasCreated bool, err error)
}
