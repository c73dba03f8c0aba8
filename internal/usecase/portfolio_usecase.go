package usecase

import (
	"context"

	"folio/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PublishPortfolioInput defines the data required to publish a new snapshot.
type PublishPortfolioInput struct {
	Description string
	Holdings    map[string]float64
}

// --- Output DTOs ---

// PurchasePrompt invites an unentitled reader to buy the subscription
// product guarding the portfolio.
type PurchasePrompt struct {
	Message string          `json:"message"`
	Product *entity.Product `json:"product"`
}

// PortfolioView is what a reader sees at the portfolio endpoint. Exactly one
// of Portfolio and Prompt is set: the snapshot for entitled readers, the
// purchase prompt for everyone else.
type PortfolioView struct {
	Portfolio *entity.Portfolio `json:"portfolio,omitempty"`
	Prompt    *PurchasePrompt   `json:"prompt,omitempty"`
}

// PortfolioUsecase manages the gated model portfolio.
type PortfolioUsecase interface {
	// Publish validates the holdings (every weight within [0, 1] and the
	// weights summing to 1), then atomically deactivates the previous
	// snapshot and inserts the new one. Restricted to the admin surface.
	Publish(ctx context.Context, authorID uuid.UUID, input *PublishPortfolioInput) (*entity.Portfolio, error)

	// GetActive returns the active snapshot to an entitled reader. Admins and
	// authors bypass the entitlement check. An unentitled reader receives a
	// purchase prompt carrying the subscription product instead of an error.
	GetActive(ctx context.Context, userID uuid.UUID) (*PortfolioView, error)
}
