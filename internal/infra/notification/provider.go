package notification

import (
	"context"
	"log/slog"

	"folio/config"
	"folio/internal/domain/service"

	"go.uber.org/fx"
)

// noopNotificationService is used when Firebase is not configured.
type noopNotificationService struct {
	logger *slog.Logger
}

func (s *noopNotificationService) SendTopicNotification(_ context.Context, topic, _, _ string, _ map[string]string) error {
	s.logger.Debug("[NoopNotification] Push delivery disabled, skipping",
		slog.String("topic", topic),
	)

	return nil
}

// Params holds dependencies for NotificationService, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService creates a NotificationService based on configuration.
// Without Firebase credentials a no-op service is returned so publication
// flows never need to branch on push availability.
func NewNotificationService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, using no-op notification service")

		return &noopNotificationService{logger: params.Logger}, nil
	}

	svc, err := NewFirebaseService(params.Ctx, cfg.CredentialsPath)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Firebase notification service initialized",
		slog.String("project_id", cfg.ProjectID),
	)

	return svc, nil
}
