package model

import (
	"time"

	"github.com/google/uuid"
)

// PortfolioModel is the GORM-specific struct for the 'portfolios' table.
// Holdings is stored as a jsonb document mapping ticker to target weight.
type PortfolioModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Description string    `gorm:"type:text"`
	Holdings    []byte    `gorm:"type:jsonb;not null"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PortfolioModel) TableName() string {
	return "portfolios"
}
