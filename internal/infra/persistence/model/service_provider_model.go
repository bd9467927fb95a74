package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceProviderModel is the GORM-specific struct for the 'service_providers' table.
type ServiceProviderModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID              uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	FirstName           string     `gorm:"type:varchar(100);not null"`
	LastName            string     `gorm:"type:varchar(100);not null"`
	PhoneNumber         string     `gorm:"type:varchar(50)"`
	WorkingAreaDiameter float64    `gorm:"type:decimal(10,2)"`
	DateOfBirth         string     `gorm:"type:varchar(20)"`
	Description         string     `gorm:"type:text"`
	ReferencedBy        string     `gorm:"type:varchar(255)"`
	IsCompany           bool       `gorm:"not null;default:false"`
	NumberOfEmployees   int        `gorm:"not null;default:0"`
	Status              string     `gorm:"type:varchar(20);not null;default:'active'"`
	AddressID           *uuid.UUID `gorm:"type:uuid"`
	FileURL             string     `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	CreatedBy           uuid.UUID `gorm:"type:uuid"`
	UpdatedBy           uuid.UUID `gorm:"type:uuid"`

	Address      *AddressModel              `gorm:"foreignKey:AddressID"`
	ServiceTypes []ProviderServiceTypeModel `gorm:"foreignKey:ProviderID"`
	WorkingAreas []ProviderWorkingAreaModel `gorm:"foreignKey:ProviderID"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceProviderModel) TableName() string {
	return "service_providers"
}

// ProviderServiceTypeModel is the join row between providers and service types.
type ProviderServiceTypeModel struct {
	ProviderID    uuid.UUID `gorm:"type:uuid;primary_key"`
	ServiceTypeID uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedBy     uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderServiceTypeModel) TableName() string {
	return "service_provider_types"
}

// ProviderWorkingAreaModel is the join row between providers and working areas.
type ProviderWorkingAreaModel struct {
	ProviderID    uuid.UUID `gorm:"type:uuid;primary_key"`
	WorkingAreaID uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedBy     uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time

	WorkingArea *WorkingAreaModel `gorm:"foreignKey:WorkingAreaID"`
}

// TableName explicitly sets the table name for GORM.
func (ProviderWorkingAreaModel) TableName() string {
	return "service_provider_working_areas"
}
