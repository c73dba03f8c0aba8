// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an entitlement grant.
type OrderStatus string

const (
	// OrderStatusPaid marks a live entitlement grant.
	OrderStatusPaid OrderStatus = "paid"
	// OrderStatusCancelled marks a revoked grant. Orders are never hard-deleted.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a time-bounded grant of access to a Product for a User.
// A user has access to a product iff an Order exists with status paid and
// an expiry that is either unset or in the future. Orders are created by
// the checkout webhook on successful payment or by an admin manual grant
// (price 0), and revoked by flipping status to cancelled.
type Order struct {
	ID         uuid.UUID   `json:"id"`
	UserID     uuid.UUID   `json:"user_id"`
	ProductID  uuid.UUID   `json:"product_id"`
	Status     OrderStatus `json:"status"`
	PriceCents int64       `json:"price_cents"`
	Currency   string      `json:"currency"`
	ExpiresAt  *time.Time  `json:"expires_at,omitempty"` // Nil means the grant never expires.
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// IsActiveAt reports whether this order grants access at the given instant.
func (o *Order) IsActiveAt(now time.Time) bool {
	if o.Status != OrderStatusPaid {
		return false
	}

	return o.ExpiresAt == nil || o.ExpiresAt.After(now)
}
