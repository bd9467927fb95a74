package model

import "github.com/google/uuid"

// WorkingAreaModel is the GORM-specific struct for the 'working_areas' table.
type WorkingAreaModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (WorkingAreaModel) TableName() string {
	return "working_areas"
}

// CountryModel is the GORM-specific struct for the 'countries' table.
type CountryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Code      string    `gorm:"type:varchar(10);not null"`
	PhoneCode string    `gorm:"type:varchar(10)"`
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}
