// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a purchasable entitlement definition, e.g. the gated author
// portfolio. The stable identity key used by code and checkout links is the
// slug; the UUID is the database identity.
type Product struct {
	ID           uuid.UUID `json:"id"`
	Slug         string    `json:"slug"` // Unique, stable identifier referenced by checkout metadata.
	Name         string    `json:"name"`
	PriceCents   int64     `json:"price_cents"`
	Currency     string    `json:"currency"`
	DurationDays *int      `json:"duration_days,omitempty"` // When set, checkout-originated orders expire after this many days. Nil means open-ended.
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
