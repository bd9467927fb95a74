package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel is the GORM-specific struct for the 'stores' table.
type StoreModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Name           string     `gorm:"type:varchar(255);not null"`
	OwnerFirstName string     `gorm:"type:varchar(100)"`
	OwnerLastName  string     `gorm:"type:varchar(100)"`
	CategoryID     uuid.UUID  `gorm:"type:uuid;not null"`
	PhoneNumber    string     `gorm:"type:varchar(50)"`
	Description    string     `gorm:"type:text"`
	AddressID      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CreatedBy      uuid.UUID `gorm:"type:uuid"`
	UpdatedBy      uuid.UUID `gorm:"type:uuid"`

	Address  *AddressModel       `gorm:"foreignKey:AddressID"`
	Category *StoreCategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
