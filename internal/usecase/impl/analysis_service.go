package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"folio/config"
	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/domain/service"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultAnalysisPageSize = 20
	maxAnalysisPageSize     = 100
)

// analysisService implements the AnalysisUsecase interface.
type analysisService struct {
	analysisRepo repository.AnalysisRepository
	access       usecase.AccessUsecase
	publisher    service.EventPublisher
	notifier     service.NotificationService
	attachments  service.AttachmentStore
	config       *config.Config
	logger       *slog.Logger
}

// AnalysisServiceParams holds dependencies for AnalysisService, injected by Fx.
type AnalysisServiceParams struct {
	fx.In

	AnalysisRepo repository.AnalysisRepository
	Access       usecase.AccessUsecase
	Publisher    service.EventPublisher
	Notifier     service.NotificationService
	Attachments  service.AttachmentStore
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAnalysisService is the constructor for analysisService.
func NewAnalysisService(params AnalysisServiceParams) usecase.AnalysisUsecase {
	return &analysisService{
		analysisRepo: params.AnalysisRepo,
		access:       params.Access,
		publisher:    params.Publisher,
		notifier:     params.Notifier,
		attachments:  params.Attachments,
		config:       params.Config,
		logger:       params.Logger,
	}
}

func (srv *analysisService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Publish stores the analysis and fans a summary out to subscribers.
// The fan-out is best effort; once the row is committed the publish has
// succeeded even if the broker or push gateway is down.
func (srv *analysisService) Publish(ctx context.Context, authorID uuid.UUID, input *usecase.PublishAnalysisInput) (*entity.Analysis, error) {
	if err := srv.access.CheckAdminPermissions(ctx, authorID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content is required")
	}

	analysis := &entity.Analysis{
		AuthorID:      authorID,
		Title:         title,
		Content:       input.Content,
		AttachmentURL: input.AttachmentURL,
		IsPublished:   true,
	}
	if err := srv.analysisRepo.Create(ctx, analysis); err != nil {
		srv.log(ctx).Error("Failed to store analysis",
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to store analysis")
	}

	srv.broadcast(ctx, analysis)

	srv.log(ctx).Info("Analysis published",
		slog.Any("analysisID", analysis.ID),
		slog.String("title", analysis.Title),
	)

	return analysis, nil
}

// ListPublished returns published analyses, newest first.
func (srv *analysisService) ListPublished(ctx context.Context, limit, offset int) ([]*entity.Analysis, error) {
	if limit <= 0 {
		limit = defaultAnalysisPageSize
	}
	if limit > maxAnalysisPageSize {
		limit = maxAnalysisPageSize
	}
	if offset < 0 {
		offset = 0
	}

	analyses, err := srv.analysisRepo.ListPublished(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list analyses")
	}

	return analyses, nil
}

// UploadAttachment stores a chart or document and returns its URL.
func (srv *analysisService) UploadAttachment(ctx context.Context, authorID uuid.UUID, filename, contentType string, content io.Reader) (string, error) {
	if err := srv.access.CheckAdminPermissions(ctx, authorID); err != nil {
		return "", err
	}

	url, err := srv.attachments.Upload(ctx, filename, contentType, content)
	if err != nil {
		srv.log(ctx).Error("Failed to upload attachment",
			slog.String("filename", filename),
			slog.Any("error", err),
		)

		return "", errors.Wrap(err, "failed to upload attachment")
	}

	return url, nil
}

func (srv *analysisService) broadcast(ctx context.Context, analysis *entity.Analysis) {
	event := &service.AnalysisEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		AnalysisID: analysis.ID.String(),
		Title:      analysis.Title,
		CreatedAt:  analysis.CreatedAt,
	}
	if err := srv.publisher.PublishAnalysisEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish analysis event",
			slog.Any("analysisID", analysis.ID),
			slog.Any("error", err),
		)
	}

	topic := ""
	if srv.config.Firebase != nil {
		topic = srv.config.Firebase.AnalysisTopic
	}
	if topic == "" {
		return
	}

	data := map[string]string{"analysis_id": analysis.ID.String()}
	if err := srv.notifier.SendTopicNotification(ctx, topic, "New analysis", analysis.Title, data); err != nil {
		srv.log(ctx).Warn("Failed to send analysis push notification",
			slog.Any("analysisID", analysis.ID),
			slog.Any("error", err),
		)
	}
}
