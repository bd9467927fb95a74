package entity

import "github.com/google/uuid"

// Country is reference data for address forms, maintained by administrators.
type Country struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	PhoneCode string    `json:"phone_code"`
}
