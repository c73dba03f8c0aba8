package impl

import (
	"context"
	"strings"
	"testing"

	"folio/config"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/service"
	mockRepo "folio/internal/mocks/repository"
	mockSvc "folio/internal/mocks/service"
	mockUC "folio/internal/mocks/usecase"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type analysisServiceMocks struct {
	analysisRepo *mockRepo.MockAnalysisRepository
	access       *mockUC.MockAccessUsecase
	publisher    *mockSvc.MockEventPublisher
	notifier     *mockSvc.MockNotificationService
	attachments  *mockSvc.MockAttachmentStore
}

func newAnalysisServiceForTest(t *testing.T) (usecase.AnalysisUsecase, *analysisServiceMocks) {
	mocks := &analysisServiceMocks{
		analysisRepo: mockRepo.NewMockAnalysisRepository(t),
		access:       mockUC.NewMockAccessUsecase(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		notifier:     mockSvc.NewMockNotificationService(t),
		attachments:  mockSvc.NewMockAttachmentStore(t),
	}

	cfg := &config.Config{
		Firebase: &config.FirebaseConfig{
			AnalysisTopic: "analysis-feed",
		},
	}

	svc := NewAnalysisService(AnalysisServiceParams{
		AnalysisRepo: mocks.analysisRepo,
		Access:       mocks.access,
		Publisher:    mocks.publisher,
		Notifier:     mocks.notifier,
		Attachments:  mocks.attachments,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return svc, mocks
}

func TestAnalysisService_Publish_BroadcastsSummary(t *testing.T) {
	svc, mocks := newAnalysisServiceForTest(t)

	ctx := context.Background()
	authorID := uuid.New()
	analysisID := uuid.New()

	mocks.access.EXPECT().
		CheckAdminPermissions(ctx, authorID).
		Return(nil)

	mocks.analysisRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Analysis")).
		Run(func(_ context.Context, analysis *entity.Analysis) {
			analysis.ID = analysisID
			assert.True(t, analysis.IsPublished)
			assert.Equal(t, authorID, analysis.AuthorID)
		}).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishAnalysisEvent(ctx, mock.AnythingOfType("*service.AnalysisEvent")).
		Run(func(_ context.Context, event *service.AnalysisEvent) {
			assert.Equal(t, analysisID.String(), event.AnalysisID)
			assert.Equal(t, "Rates outlook", event.Title)
		}).
		Return(nil)

	mocks.notifier.EXPECT().
		SendTopicNotification(ctx, "analysis-feed", "New analysis", "Rates outlook", map[string]string{"analysis_id": analysisID.String()}).
		Return(nil)

	analysis, err := svc.Publish(ctx, authorID, &usecase.PublishAnalysisInput{
		Title:   "Rates outlook",
		Content: "Duration risk is back on the table.",
	})
	require.NoError(t, err)
	assert.Equal(t, analysisID, analysis.ID)
}

func TestAnalysisService_Publish_BrokerDownStillSucceeds(t *testing.T) {
	svc, mocks := newAnalysisServiceForTest(t)

	ctx := context.Background()
	authorID := uuid.New()

	mocks.access.EXPECT().
		CheckAdminPermissions(ctx, authorID).
		Return(nil)

	mocks.analysisRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Analysis")).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishAnalysisEvent(ctx, mock.AnythingOfType("*service.AnalysisEvent")).
		Return(errors.New("broker unavailable"))

	mocks.notifier.EXPECT().
		SendTopicNotification(ctx, "analysis-feed", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable"))

	analysis, err := svc.Publish(ctx, authorID, &usecase.PublishAnalysisInput{
		Title:   "Rates outlook",
		Content: "Duration risk is back on the table.",
	})
	require.NoError(t, err)
	assert.NotNil(t, analysis)
}

func TestAnalysisService_Publish_MissingTitle(t *testing.T) {
	svc, mocks := newAnalysisServiceForTest(t)

	ctx := context.Background()
	authorID := uuid.New()

	mocks.access.EXPECT().
		CheckAdminPermissions(ctx, authorID).
		Return(nil)

	analysis, err := svc.Publish(ctx, authorID, &usecase.PublishAnalysisInput{
		Title:   "   ",
		Content: "Body",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, analysis)
}

func TestAnalysisService_Publish_PermissionDenied(t *testing.T) {
	svc, mocks := newAnalysisServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.access.EXPECT().
		CheckAdminPermissions(ctx, userID).
		Return(domainerrors.ErrPermissionDenied)

	analysis, err := svc.Publish(ctx, userID, &usecase.PublishAnalysisInput{
		Title:   "Rates outlook",
		Content: "Body",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	assert.Nil(t, analysis)
}

func TestAnalysisService_ListPublished_ClampsPageSize(t *testing.T) {
	svc, mocks := newAnalysisServiceForTest(t)

	ctx := context.Background()

	mocks.analysisRepo.EXPECT().
		ListPublished(ctx, 100, 0).
		Return([]*entity.Analysis{}, nil)

	analyses, err := svc.ListPublished(ctx, 500, -5)
	require.NoError(t, err)
	assert.Empty(t, analyses)
}

func TestAnalysisService_ListPublished_DefaultPageSize(t *testing.T) {
	svc, mocks := newAnalysisServiceForTest(t)

	ctx := context.Background()
	expected := []*entity.Analysis{{ID: uuid.New(), Title: "Rates outlook"}}

	mocks.analysisRepo.EXPECT().
		ListPublished(ctx, 20, 0).
		Return(expected, nil)

	analyses, err := svc.ListPublished(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, analyses)
}

func TestAnalysisService_UploadAttachment_ReturnsURL(t *testing.T) {
	svc, mocks := newAnalysisServiceForTest(t)

	ctx := context.Background()
	authorID := uuid.New()
	content := strings.NewReader("%PDF-1.7")

	mocks.access.EXPECT().
		CheckAdminPermissions(ctx, authorID).
		Return(nil)

	mocks.attachments.EXPECT().
		Upload(ctx, "chart.pdf", "application/pdf", content).
		Return("https://cdn.example.com/2026/08/abc.pdf", nil)

	url, err := svc.UploadAttachment(ctx, authorID, "chart.pdf", "application/pdf", content)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/2026/08/abc.pdf", url)
}

func TestAnalysisService_UploadAttachment_PermissionDenied(t *testing.T) {
	svc, mocks := newAnalysisServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.access.EXPECT().
		CheckAdminPermissions(ctx, userID).
		Return(domainerrors.ErrPermissionDenied)

	url, err := svc.UploadAttachment(ctx, userID, "chart.pdf", "application/pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	assert.Empty(t, url)
}
