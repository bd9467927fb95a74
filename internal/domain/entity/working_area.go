package entity

import "github.com/google/uuid"

// WorkingArea is a named geographic zone service providers can be assigned to.
type WorkingArea struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
