package usecase

import (
	"context"
	"time"

	"folio/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// AccessDecision is the explicit result of an entitlement check. Callers
// branch on Allowed instead of interpreting a nil order.
type AccessDecision struct {
	Allowed   bool
	ExpiresAt *time.Time // Nil when access is open-ended or denied.
}

// GrantResult reports what a manual grant actually did.
type GrantResult struct {
	Order *entity.Order
}

// RevokeResult reports how many live orders a revocation cancelled.
type RevokeResult struct {
	CancelledCount int64
}

// AccessUsecase defines entitlement management: who may enter the gated
// content, and the admin operations that change that.
type AccessUsecase interface {
	// CheckAdminPermissions verifies the user exists, is active, and holds a
	// role that may use the admin surface. Failures return a permission error
	// regardless of cause so the endpoint shape does not leak account state.
	CheckAdminPermissions(ctx context.Context, userID uuid.UUID) error

	// GrantAccess creates a zero-price paid order granting the user access to
	// the product for the given number of days. The product must exist and be
	// active. Calling it twice stacks a second order.
	GrantAccess(ctx context.Context, adminID, userID, productID uuid.UUID, durationDays int) (*GrantResult, error)

	// RevokeAccess cancels every live order for the user/product pair. A user
	// with nothing to cancel is reported as an order-not-found error.
	RevokeAccess(ctx context.Context, adminID, userID, productID uuid.UUID) (*RevokeResult, error)

	// HasAccess reports whether the user currently holds a live entitlement
	// to the product.
	HasAccess(ctx context.Context, userID uuid.UUID, productSlug string) (*AccessDecision, error)

	// ListUserOrders returns the user's full order history, newest first,
	// for the admin surface.
	ListUserOrders(ctx context.Context, adminID, userID uuid.UUID) ([]*entity.Order, error)
}
