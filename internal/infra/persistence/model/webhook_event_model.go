package model

import "time"

// WebhookEventModel is the GORM-specific struct for the 'webhook_events' table.
// The processor's event id is the primary key so a redelivered event fails the
// insert with a unique violation instead of being processed twice.
type WebhookEventModel struct {
	EventID    string `gorm:"type:varchar(255);primary_key"`
	EventType  string `gorm:"type:varchar(100);not null"`
	ReceivedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WebhookEventModel) TableName() string {
	return "webhook_events"
}
