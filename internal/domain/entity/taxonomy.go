package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is the top level of the service taxonomy.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`

	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

// Subcategory is the middle level of the service taxonomy.
type Subcategory struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`

	ServiceTypes []ServiceType `json:"service_types,omitempty"`
}

// ServiceType is the leaf level of the service taxonomy; providers are
// associated with service types through join records.
type ServiceType struct {
	ID            uuid.UUID `json:"id"`
	SubcategoryID uuid.UUID `json:"subcategory_id"`
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"created_at"`
}

// StoreCategory classifies stores; separate from the service taxonomy.
type StoreCategory struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
