package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store is a marketplace store profile tied 1:1 to an identity.
type Store struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	Name           string     `json:"name"`
	OwnerFirstName string     `json:"owner_first_name"`
	OwnerLastName  string     `json:"owner_last_name"`
	CategoryID     uuid.UUID  `json:"category_id"`
	PhoneNumber    string     `json:"phone_number"`
	Description    string     `json:"description"`
	AddressID      *uuid.UUID `json:"address_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	CreatedBy      uuid.UUID  `json:"created_by"`
	UpdatedBy      uuid.UUID  `json:"updated_by"`

	Address  *Address       `json:"address,omitempty"`
	Category *StoreCategory `json:"category,omitempty"`
}
