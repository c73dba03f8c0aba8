// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"folio/internal/domain/entity"
	"folio/internal/errors"
)

// ErrDuplicateWebhookEvent is returned when an event id has already been recorded.
// Callers treat it as "already processed" rather than as a failure.
var ErrDuplicateWebhookEvent = errors.New("webhook event already processed")

// WebhookEventRepository defines the interface for the webhook idempotency ledger.
type WebhookEventRepository interface {
	// Record inserts the event id. A primary-key conflict surfaces as
	// ErrDuplicateWebhookEvent so redeliveries can be acknowledged as no-ops.
	Record(ctx context.Context, event *entity.WebhookEvent) error
}
