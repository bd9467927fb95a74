package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time

	Subcategories []SubcategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// SubcategoryModel is the GORM-specific struct for the 'subcategories' table.
type SubcategoryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time

	ServiceTypes []ServiceTypeModel `gorm:"foreignKey:SubcategoryID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SubcategoryModel) TableName() string {
	return "subcategories"
}

// ServiceTypeModel is the GORM-specific struct for the 'service_types' table.
type ServiceTypeModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SubcategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceTypeModel) TableName() string {
	return "service_types"
}

// StoreCategoryModel is the GORM-specific struct for the 'store_categories' table.
type StoreCategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (StoreCategoryModel) TableName() string {
	return "store_categories"
}
