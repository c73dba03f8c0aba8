package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Each row defines a purchasable entitlement such as the gated portfolio.
type ProductModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Slug         string    `gorm:"type:varchar(100);unique;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	PriceCents   int64     `gorm:"not null"`
	Currency     string    `gorm:"type:varchar(3);not null"`
	DurationDays *int
	IsActive     bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
