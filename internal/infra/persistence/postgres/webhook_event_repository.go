// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// webhookEventRepository implements the repository.WebhookEventRepository interface.
type webhookEventRepository struct {
	db *gorm.DB
}

// NewWebhookEventRepository is the constructor for webhookEventRepository.
func NewWebhookEventRepository(db *gorm.DB) repository.WebhookEventRepository {
	return &webhookEventRepository{
		db: db,
	}
}

// Record inserts the event id into the idempotency ledger. A primary-key
// conflict means the event was already processed.
func (repo *webhookEventRepository) Record(ctx context.Context, event *entity.WebhookEvent) error {
	eventM := &model.WebhookEventModel{
		EventID:    event.EventID,
		EventType:  event.EventType,
		ReceivedAt: event.ReceivedAt,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWebhookEvent
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record webhook event")
	}

	event.ReceivedAt = eventM.ReceivedAt

	return nil
}
