package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CheckoutOutcome classifies what processing a webhook delivery did.
type CheckoutOutcome string

const (
	// CheckoutOutcomeProcessed means a new order was created.
	CheckoutOutcomeProcessed CheckoutOutcome = "processed"
	// CheckoutOutcomeDuplicate means the event id was seen before; nothing changed.
	CheckoutOutcomeDuplicate CheckoutOutcome = "duplicate"
	// CheckoutOutcomeIgnored means the event type is not one we act on.
	CheckoutOutcomeIgnored CheckoutOutcome = "ignored"
)

// CheckoutResult is the explicit result of webhook processing. Every outcome
// is acknowledged with HTTP 200 so the processor stops redelivering.
type CheckoutResult struct {
	Outcome     CheckoutOutcome
	OrderID     uuid.UUID // Set only when Outcome is processed.
	UserID      uuid.UUID // Set only when Outcome is processed.
	UserCreated bool      // True when processing provisioned a new account.
}

// CheckoutUsecase reconciles payment processor webhooks into entitlements.
type CheckoutUsecase interface {
	// ProcessCheckoutEvent verifies the delivery's signature, deduplicates it
	// by event id, and for a completed checkout session resolves or creates
	// the customer's account and inserts the paid order. Only signature
	// verification failures return an error; everything after the signature
	// check is logged and acknowledged so the processor never retries a
	// parsed event.
	ProcessCheckoutEvent(ctx context.Context, payload []byte, signatureHeader string) (*CheckoutResult, error)
}
