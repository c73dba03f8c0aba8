// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Portfolio is a versioned snapshot of the author's model portfolio.
// Holdings maps ticker symbols to target weights. At most one snapshot is
// active at a time; publishing a new one deactivates the previous snapshot.
type Portfolio struct {
	ID          uuid.UUID          `json:"id"`
	Description string             `json:"description"`
	Holdings    map[string]float64 `json:"holdings"`
	IsActive    bool               `json:"is_active"`
	CreatedAt   time.Time          `json:"created_at"`
}
