package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityModel is the GORM-specific struct for the 'identities' table.
type IdentityModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}

// UserRoleModel is the GORM-specific struct for the 'user_roles' table.
type UserRoleModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primary_key"`
	Role       string    `gorm:"type:varchar(50);primary_key"`
	AssignedBy uuid.UUID `gorm:"type:uuid;not null"`
	AssignedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserRoleModel) TableName() string {
	return "user_roles"
}
