package impl

import (
	"io"
	"log/slog"

	"folio/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func staffUser(id uuid.UUID, role entity.Role) *entity.User {
	return &entity.User{
		ID:    id,
		Email: "staff@example.com",
		Profile: &entity.Profile{
			UserID:   id,
			Role:     role,
			IsActive: true,
		},
	}
}

func readerUser(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:    id,
		Email: "reader@example.com",
		Profile: &entity.Profile{
			UserID:   id,
			Role:     entity.RoleUser,
			IsActive: true,
		},
	}
}
