package entity

import (
	"time"

	"github.com/google/uuid"
)

// FieldOperator is an on-the-ground operator profile tied 1:1 to an identity.
type FieldOperator struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	PhoneNumber  string     `json:"phone_number"`
	WorkingArea  string     `json:"working_area"`
	DateOfBirth  string     `json:"date_of_birth"`
	Description  string     `json:"description"`
	ReferencedBy string     `json:"referenced_by"`
	Domain       string     `json:"domain"`
	AddressID    *uuid.UUID `json:"address_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	CreatedBy    uuid.UUID  `json:"created_by"`
	UpdatedBy    uuid.UUID  `json:"updated_by"`

	Address *Address `json:"address,omitempty"`
}
