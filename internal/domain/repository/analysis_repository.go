// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"folio/internal/domain/entity"
	"folio/internal/errors"

	"github.com/google/uuid"
)

// ErrAnalysisNotFound is returned when an analysis is not found.
var ErrAnalysisNotFound = errors.New("analysis not found")

// AnalysisRepository defines the interface for research note persistence.
type AnalysisRepository interface {
	// Create persists a new analysis.
	Create(ctx context.Context, analysis *entity.Analysis) error

	// FindByID retrieves an analysis by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Analysis, error)

	// ListPublished retrieves published analyses, newest first.
	ListPublished(ctx context.Context, limit, offset int) ([]*entity.Analysis, error)
}
