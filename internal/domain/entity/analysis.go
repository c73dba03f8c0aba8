// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is a published research note. Analyses are append-only from the
// author's perspective; on publication a summary is broadcast to the
// subscriber feed channel.
type Analysis struct {
	ID            uuid.UUID `json:"id"`
	AuthorID      uuid.UUID `json:"author_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	AttachmentURL string    `json:"attachment_url,omitempty"`
	IsPublished   bool      `json:"is_published"`
	CreatedAt     time.Time `json:"created_at"`
}
