// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"folio/internal/domain/entity"
	"folio/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProduct is returned when creating a product whose slug is already taken.
	ErrDuplicateProduct = errors.New("product already exists")
)

// ProductRepository defines the interface for product catalog persistence.
type ProductRepository interface {
	// Create persists a new product definition.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySlug retrieves a product by its stable slug identifier.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// List retrieves products, optionally restricted to active ones.
	List(ctx context.Context, activeOnly bool) ([]*entity.Product, error)

	// Update modifies an existing product definition.
	Update(ctx context.Context, product *entity.Product) error
}
