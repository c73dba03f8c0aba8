package usecase

import (
	"context"
	"io"

	"folio/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PublishAnalysisInput defines the data required to publish a research note.
type PublishAnalysisInput struct {
	Title         string
	Content       string
	AttachmentURL string
}

// AnalysisUsecase manages research notes and their fan-out to subscribers.
type AnalysisUsecase interface {
	// Publish stores the analysis and broadcasts a summary to the feed
	// channel. Broadcasting is best effort; a publish never fails because the
	// broker is down. Restricted to the admin surface.
	Publish(ctx context.Context, authorID uuid.UUID, input *PublishAnalysisInput) (*entity.Analysis, error)

	// ListPublished returns published analyses, newest first. Public.
	ListPublished(ctx context.Context, limit, offset int) ([]*entity.Analysis, error)

	// UploadAttachment stores a chart or document in the attachment bucket
	// and returns the URL to embed. Restricted to the admin surface.
	UploadAttachment(ctx context.Context, authorID uuid.UUID, filename, contentType string, content io.Reader) (string, error)
}
