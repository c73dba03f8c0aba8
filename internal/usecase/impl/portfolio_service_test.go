package impl

import (
	"context"
	"testing"

	"folio/config"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	mockRepo "folio/internal/mocks/repository"
	mockUC "folio/internal/mocks/usecase"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPortfolioServiceForTest(t *testing.T) (usecase.PortfolioUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockPortfolioRepository, *mockRepo.MockProductRepository, *mockUC.MockAccessUsecase) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockPortfolioRepo := mockRepo.NewMockPortfolioRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockAccess := mockUC.NewMockAccessUsecase(t)

	cfg := &config.Config{
		Stripe: &config.StripeConfig{
			DefaultProductSlug: "premium",
		},
	}

	svc := NewPortfolioService(PortfolioServiceParams{
		TxManager:     mockTx,
		PortfolioRepo: mockPortfolioRepo,
		ProductRepo:   mockProductRepo,
		Access:        mockAccess,
		Config:        cfg,
		Logger:        newDiscardLogger(),
	})

	return svc, mockTx, mockPortfolioRepo, mockProductRepo, mockAccess
}

func TestPortfolioService_Publish_SwapsActiveSnapshot(t *testing.T) {
	svc, mockTx, _, _, mockAccess := newPortfolioServiceForTest(t)

	ctx := context.Background()
	authorID := uuid.New()

	mockAccess.EXPECT().
		CheckAdminPermissions(ctx, authorID).
		Return(nil)

	txPortfolioRepo := mockRepo.NewMockPortfolioRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPortfolioRepository().Return(txPortfolioRepo)

	txPortfolioRepo.EXPECT().
		DeactivateAll(ctx).
		Return(nil)

	portfolioID := uuid.New()
	txPortfolioRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Portfolio")).
		Run(func(_ context.Context, portfolio *entity.Portfolio) {
			portfolio.ID = portfolioID
		}).
		Return(nil)

	mockTx.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	portfolio, err := svc.Publish(ctx, authorID, &usecase.PublishPortfolioInput{
		Description: "Q3 rebalance",
		Holdings:    map[string]float64{"VTI": 0.6, "BND": 0.3, "CASH": 0.1},
	})
	require.NoError(t, err)
	assert.Equal(t, portfolioID, portfolio.ID)
	assert.True(t, portfolio.IsActive)
	assert.Len(t, portfolio.Holdings, 3)
}

func TestPortfolioService_Publish_WeightsDoNotSumToOne(t *testing.T) {
	svc, _, _, _, mockAccess := newPortfolioServiceForTest(t)

	ctx := context.Background()
	authorID := uuid.New()

	mockAccess.EXPECT().
		CheckAdminPermissions(ctx, authorID).
		Return(nil)

	portfolio, err := svc.Publish(ctx, authorID, &usecase.PublishPortfolioInput{
		Holdings: map[string]float64{"VTI": 0.6, "BND": 0.3},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidHoldings)
	assert.Nil(t, portfolio)
}

func TestPortfolioService_Publish_WeightOutOfRange(t *testing.T) {
	svc, _, _, _, mockAccess := newPortfolioServiceForTest(t)

	ctx := context.Background()
	authorID := uuid.New()

	mockAccess.EXPECT().
		CheckAdminPermissions(ctx, authorID).
		Return(nil)

	portfolio, err := svc.Publish(ctx, authorID, &usecase.PublishPortfolioInput{
		Holdings: map[string]float64{"VTI": 1.5, "BND": -0.5},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidHoldings)
	assert.Nil(t, portfolio)
}

func TestPortfolioService_Publish_EmptyHoldings(t *testing.T) {
	svc, _, _, _, mockAccess := newPortfolioServiceForTest(t)

	ctx := context.Background()
	authorID := uuid.New()

	mockAccess.EXPECT().
		CheckAdminPermissions(ctx, authorID).
		Return(nil)

	portfolio, err := svc.Publish(ctx, authorID, &usecase.PublishPortfolioInput{
		Holdings: map[string]float64{},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidHoldings)
	assert.Nil(t, portfolio)
}

func TestPortfolioService_Publish_PermissionDenied(t *testing.T) {
	svc, _, _, _, mockAccess := newPortfolioServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mockAccess.EXPECT().
		CheckAdminPermissions(ctx, userID).
		Return(domainerrors.ErrPermissionDenied)

	portfolio, err := svc.Publish(ctx, userID, &usecase.PublishPortfolioInput{
		Holdings: map[string]float64{"VTI": 1.0},
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	assert.Nil(t, portfolio)
}

func TestPortfolioService_GetActive_StaffBypassesEntitlement(t *testing.T) {
	svc, _, mockPortfolioRepo, _, mockAccess := newPortfolioServiceForTest(t)

	ctx := context.Background()
	authorID := uuid.New()
	active := &entity.Portfolio{ID: uuid.New(), Holdings: map[string]float64{"VTI": 1.0}, IsActive: true}

	mockAccess.EXPECT().
		CheckAdminPermissions(ctx, authorID).
		Return(nil)

	mockPortfolioRepo.EXPECT().
		FindActive(ctx).
		Return(active, nil)

	view, err := svc.GetActive(ctx, authorID)
	require.NoError(t, err)
	assert.Equal(t, active.ID, view.Portfolio.ID)
	assert.Nil(t, view.Prompt)
}

func TestPortfolioService_GetActive_EntitledReader(t *testing.T) {
	svc, _, mockPortfolioRepo, _, mockAccess := newPortfolioServiceForTest(t)

	ctx := context.Background()
	readerID := uuid.New()
	active := &entity.Portfolio{ID: uuid.New(), Holdings: map[string]float64{"VTI": 1.0}, IsActive: true}

	mockAccess.EXPECT().
		CheckAdminPermissions(ctx, readerID).
		Return(domainerrors.ErrPermissionDenied)

	mockAccess.EXPECT().
		HasAccess(ctx, readerID, "premium").
		Return(&usecase.AccessDecision{Allowed: true}, nil)

	mockPortfolioRepo.EXPECT().
		FindActive(ctx).
		Return(active, nil)

	view, err := svc.GetActive(ctx, readerID)
	require.NoError(t, err)
	assert.Equal(t, active.ID, view.Portfolio.ID)
	assert.Nil(t, view.Prompt)
}

func TestPortfolioService_GetActive_ReaderWithoutEntitlementGetsPrompt(t *testing.T) {
	svc, _, _, mockProductRepo, mockAccess := newPortfolioServiceForTest(t)

	ctx := context.Background()
	readerID := uuid.New()
	premium := &entity.Product{ID: uuid.New(), Slug: "premium", Name: "Premium Subscription", IsActive: true}

	mockAccess.EXPECT().
		CheckAdminPermissions(ctx, readerID).
		Return(domainerrors.ErrPermissionDenied)

	mockAccess.EXPECT().
		HasAccess(ctx, readerID, "premium").
		Return(&usecase.AccessDecision{Allowed: false}, nil)

	mockProductRepo.EXPECT().
		FindBySlug(ctx, "premium").
		Return(premium, nil)

	view, err := svc.GetActive(ctx, readerID)
	require.NoError(t, err)
	assert.Nil(t, view.Portfolio)
	require.NotNil(t, view.Prompt)
	assert.Equal(t, premium, view.Prompt.Product)
	assert.NotEmpty(t, view.Prompt.Message)
}

func TestPortfolioService_GetActive_PromptProductMissing(t *testing.T) {
	svc, _, _, mockProductRepo, mockAccess := newPortfolioServiceForTest(t)

	ctx := context.Background()
	readerID := uuid.New()

	mockAccess.EXPECT().
		CheckAdminPermissions(ctx, readerID).
		Return(domainerrors.ErrPermissionDenied)

	mockAccess.EXPECT().
		HasAccess(ctx, readerID, "premium").
		Return(&usecase.AccessDecision{Allowed: false}, nil)

	mockProductRepo.EXPECT().
		FindBySlug(ctx, "premium").
		Return(nil, repository.ErrProductNotFound)

	view, err := svc.GetActive(ctx, readerID)
	assert.ErrorIs(t, err, domainerrors.ErrEntitlementRequired)
	assert.Nil(t, view)
}

func TestPortfolioService_GetActive_NothingPublished(t *testing.T) {
	svc, _, mockPortfolioRepo, _, mockAccess := newPortfolioServiceForTest(t)

	ctx := context.Background()
	authorID := uuid.New()

	mockAccess.EXPECT().
		CheckAdminPermissions(ctx, authorID).
		Return(nil)

	mockPortfolioRepo.EXPECT().
		FindActive(ctx).
		Return(nil, repository.ErrPortfolioNotFound)

	view, err := svc.GetActive(ctx, authorID)
	assert.ErrorIs(t, err, domainerrors.ErrPortfolioNotFound)
	assert.Nil(t, view)
}
