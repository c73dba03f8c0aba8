package model

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisModel is the GORM-specific struct for the 'analyses' table.
type AnalysisModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Content       string    `gorm:"type:text;not null"`
	AttachmentURL string    `gorm:"type:text"`
	IsPublished   bool      `gorm:"not null;default:false;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AnalysisModel) TableName() string {
	return "analyses"
}
