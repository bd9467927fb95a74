package model

import (
	"time"

	"github.com/google/uuid"
)

// OperatorModel is the GORM-specific struct for the 'operators' table.
type OperatorModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	FirstName   string     `gorm:"type:varchar(100);not null"`
	LastName    string     `gorm:"type:varchar(100);not null"`
	PhoneNumber string     `gorm:"type:varchar(50)"`
	WorkingArea string     `gorm:"type:varchar(255)"`
	DateOfBirth string     `gorm:"type:varchar(20)"`
	Description string     `gorm:"type:text"`
	AddressID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   uuid.UUID `gorm:"type:uuid"`
	UpdatedBy   uuid.UUID `gorm:"type:uuid"`

	Address *AddressModel `gorm:"foreignKey:AddressID"`
}

// TableName explicitly sets the table name for GORM.
func (OperatorModel) TableName() string {
	return "operators"
}
