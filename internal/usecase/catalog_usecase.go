package usecase

import (
	"context"

	"folio/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Slug         string
	Name         string
	PriceCents   int64
	Currency     string
	DurationDays *int
}

// CatalogUsecase manages the purchasable product catalog.
type CatalogUsecase interface {
	// CreateProduct adds a new purchasable product. Restricted to the admin surface.
	CreateProduct(ctx context.Context, adminID uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// ListProducts returns products, optionally restricted to active ones.
	ListProducts(ctx context.Context, activeOnly bool) ([]*entity.Product, error)

	// GeneratePurchaseQR renders a QR code for the product's checkout link.
	// Restricted to the admin surface.
	GeneratePurchaseQR(ctx context.Context, adminID uuid.UUID, productSlug string) ([]byte, error)
}
