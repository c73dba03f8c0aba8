// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"folio/internal/domain/entity"
	"folio/internal/errors"
)

// ErrPortfolioNotFound is returned when no active portfolio snapshot exists.
var ErrPortfolioNotFound = errors.New("portfolio not found")

// PortfolioRepository defines the interface for portfolio snapshot persistence.
type PortfolioRepository interface {
	// Create persists a new portfolio snapshot.
	Create(ctx context.Context, portfolio *entity.Portfolio) error

	// FindActive retrieves the currently active snapshot.
	// Returns ErrPortfolioNotFound when none has been published yet.
	FindActive(ctx context.Context) (*entity.Portfolio, error)

	// DeactivateAll marks every snapshot inactive. Called inside the
	// publication transaction just before inserting the replacement.
	DeactivateAll(ctx context.Context) error
}
