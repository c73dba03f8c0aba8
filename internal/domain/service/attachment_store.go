package service

import (
	"context"
	"io"
)

// AttachmentStore persists analysis attachments (charts, PDFs) in a blob
// bucket and returns a URL the article can reference.
type AttachmentStore interface {
	// Upload writes the content under a generated key and returns its URL.
	Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error)
}
