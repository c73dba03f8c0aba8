package service

import (
	"context"
	"time"
)

// AnalysisEvent is the summary broadcast to the subscriber feed channel when
// a new analysis is published. It intentionally carries no article body.
type AnalysisEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	AnalysisID string    `json:"analysis_id"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAnalysisEvent publishes an analysis summary for fan-out to subscribers
	PublishAnalysisEvent(ctx context.Context, event *AnalysisEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
