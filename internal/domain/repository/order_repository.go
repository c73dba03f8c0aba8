// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"folio/internal/domain/entity"
	"folio/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when no matching order exists.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for entitlement order persistence.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindActiveByUserAndProduct retrieves the most recent order for the
	// user/product pair that is paid and unexpired at the given instant.
	// Returns ErrOrderNotFound when no such order exists.
	FindActiveByUserAndProduct(ctx context.Context, userID, productID uuid.UUID, now time.Time) (*entity.Order, error)

	// CancelActiveByUserAndProduct flips every paid, unexpired order for the
	// user/product pair to cancelled and returns how many rows changed.
	CancelActiveByUserAndProduct(ctx context.Context, userID, productID uuid.UUID, now time.Time) (int64, error)

	// FindByUser retrieves all orders for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
