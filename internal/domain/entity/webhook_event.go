// Package entity contains the core business objects of the project.
package entity

import "time"

// WebhookEvent is the idempotency ledger row for an external payment event.
// The primary key is the payment processor's own event id, so a redelivered
// event conflicts on insert and is treated as already processed.
type WebhookEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	ReceivedAt time.Time `json:"received_at"`
}
