package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// A paid, unexpired row is what grants a user access to a product.
// Rows are never deleted; revocation flips status to 'cancelled'.
type OrderModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_user_product"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_user_product"`
	Status     string    `gorm:"type:varchar(20);not null"`
	PriceCents int64     `gorm:"not null"`
	Currency   string    `gorm:"type:varchar(3);not null"`
	ExpiresAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
