// Package model holds the GORM-specific structs mapped to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CountryID       uuid.UUID `gorm:"type:uuid;not null;index"`
	State           string    `gorm:"type:varchar(100)"`
	City            string    `gorm:"type:varchar(100)"`
	StreetAddress   string    `gorm:"type:text"`
	PostalCode      string    `gorm:"type:varchar(20)"`
	BuildingNumber  string    `gorm:"type:varchar(20)"`
	ApartmentNumber string    `gorm:"type:varchar(20)"`
	AdditionalInfo  string    `gorm:"type:text"`
	Latitude        *float64  `gorm:"type:decimal(10,8)"`
	Longitude       *float64  `gorm:"type:decimal(11,8)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CreatedBy       uuid.UUID `gorm:"type:uuid"`
	UpdatedBy       uuid.UUID `gorm:"type:uuid"`

	Country *CountryModel `gorm:"foreignKey:CountryID"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
