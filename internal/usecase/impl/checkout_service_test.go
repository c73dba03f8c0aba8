package impl

import (
	"context"
	"testing"
	"time"

	"folio/config"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/domain/service"
	mockRepo "folio/internal/mocks/repository"
	mockSvc "folio/internal/mocks/service"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCheckoutServiceForTest(t *testing.T) (usecase.CheckoutUsecase, *mockRepo.MockTransactionManager, *mockSvc.MockPaymentVerifier, *mockSvc.MockMagicLinkSender) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockVerifier := mockSvc.NewMockPaymentVerifier(t)
	mockMagicLink := mockSvc.NewMockMagicLinkSender(t)

	cfg := &config.Config{
		Stripe: &config.StripeConfig{
			WebhookSecret:      "whsec_test",
			DefaultProductSlug: "premium",
		},
	}

	svc := NewCheckoutService(CheckoutServiceParams{
		TxManager: mockTx,
		Verifier:  mockVerifier,
		MagicLink: mockMagicLink,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	return svc, mockTx, mockVerifier, mockMagicLink
}

func completedCheckoutEvent() *service.CheckoutEvent {
	return &service.CheckoutEvent{
		EventID:       "evt_123",
		EventType:     "checkout.session.completed",
		ProductSlug:   "premium",
		CustomerEmail: "buyer@example.com",
		CustomerName:  "Buyer",
		AmountTotal:   4900,
		Currency:      "usd",
	}
}

func TestCheckoutService_ProcessCheckoutEvent_NewCustomer(t *testing.T) {
	svc, mockTx, mockVerifier, mockMagicLink := newCheckoutServiceForTest(t)

	ctx := context.Background()
	payload := []byte(`{"id":"evt_123"}`)
	duration := 30
	product := &entity.Product{ID: uuid.New(), Slug: "premium", Currency: "USD", DurationDays: &duration}

	mockVerifier.EXPECT().
		VerifyEvent(payload, "sig").
		Return(completedCheckoutEvent(), nil)

	webhookRepo := mockRepo.NewMockWebhookEventRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewWebhookEventRepository().Return(webhookRepo)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewUserRepository().Return(userRepo)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)

	webhookRepo.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.WebhookEvent")).
		Run(func(_ context.Context, event *entity.WebhookEvent) {
			assert.Equal(t, "evt_123", event.EventID)
		}).
		Return(nil)

	productRepo.EXPECT().
		FindBySlug(ctx, "premium").
		Return(product, nil)

	userRepo.EXPECT().
		FindByEmail(ctx, "buyer@example.com").
		Return(nil, repository.ErrUserNotFound)

	newUserID := uuid.New()
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = newUserID
			assert.True(t, user.EmailConfirmed)
			assert.Equal(t, entity.RoleUser, user.Profile.Role)
		}).
		Return(nil)

	orderID := uuid.New()
	orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = orderID
			assert.Equal(t, int64(4900), order.PriceCents)
			assert.Equal(t, "usd", order.Currency)
			require.NotNil(t, order.ExpiresAt)
			assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), *order.ExpiresAt, time.Minute)
		}).
		Return(nil)

	mockTx.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	mockMagicLink.EXPECT().
		SendLoginLink(ctx, "buyer@example.com").
		Return(nil)

	result, err := svc.ProcessCheckoutEvent(ctx, payload, "sig")
	require.NoError(t, err)
	assert.Equal(t, usecase.CheckoutOutcomeProcessed, result.Outcome)
	assert.True(t, result.UserCreated)
	assert.Equal(t, newUserID, result.UserID)
	assert.Equal(t, orderID, result.OrderID)
}

func TestCheckoutService_ProcessCheckoutEvent_DuplicateDelivery(t *testing.T) {
	svc, mockTx, mockVerifier, _ := newCheckoutServiceForTest(t)

	ctx := context.Background()
	payload := []byte(`{"id":"evt_123"}`)

	mockVerifier.EXPECT().
		VerifyEvent(payload, "sig").
		Return(completedCheckoutEvent(), nil)

	webhookRepo := mockRepo.NewMockWebhookEventRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewWebhookEventRepository().Return(webhookRepo)

	webhookRepo.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.WebhookEvent")).
		Return(repository.ErrDuplicateWebhookEvent)

	mockTx.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	result, err := svc.ProcessCheckoutEvent(ctx, payload, "sig")
	require.NoError(t, err)
	assert.Equal(t, usecase.CheckoutOutcomeDuplicate, result.Outcome)
	assert.False(t, result.UserCreated)
}

func TestCheckoutService_ProcessCheckoutEvent_IgnoredEventType(t *testing.T) {
	svc, _, mockVerifier, _ := newCheckoutServiceForTest(t)

	ctx := context.Background()
	payload := []byte(`{"id":"evt_456"}`)

	mockVerifier.EXPECT().
		VerifyEvent(payload, "sig").
		Return(&service.CheckoutEvent{EventID: "evt_456", EventType: "invoice.paid"}, nil)

	result, err := svc.ProcessCheckoutEvent(ctx, payload, "sig")
	require.NoError(t, err)
	assert.Equal(t, usecase.CheckoutOutcomeIgnored, result.Outcome)
}

func TestCheckoutService_ProcessCheckoutEvent_SignatureError(t *testing.T) {
	svc, _, mockVerifier, _ := newCheckoutServiceForTest(t)

	ctx := context.Background()
	payload := []byte(`{}`)

	mockVerifier.EXPECT().
		VerifyEvent(payload, "bad").
		Return(nil, domainerrors.ErrWebhookSignatureInvalid)

	result, err := svc.ProcessCheckoutEvent(ctx, payload, "bad")
	assert.ErrorIs(t, err, domainerrors.ErrWebhookSignatureInvalid)
	assert.Nil(t, result)
}

func TestCheckoutService_ProcessCheckoutEvent_MissingEmail(t *testing.T) {
	svc, _, mockVerifier, _ := newCheckoutServiceForTest(t)

	ctx := context.Background()
	payload := []byte(`{"id":"evt_789"}`)
	event := completedCheckoutEvent()
	event.CustomerEmail = ""

	mockVerifier.EXPECT().
		VerifyEvent(payload, "sig").
		Return(event, nil)

	result, err := svc.ProcessCheckoutEvent(ctx, payload, "sig")
	require.NoError(t, err)
	assert.Equal(t, usecase.CheckoutOutcomeIgnored, result.Outcome)
}

func TestCheckoutService_ProcessCheckoutEvent_FallsBackToDefaultProduct(t *testing.T) {
	svc, mockTx, mockVerifier, _ := newCheckoutServiceForTest(t)

	ctx := context.Background()
	payload := []byte(`{"id":"evt_abc"}`)
	event := completedCheckoutEvent()
	event.ProductSlug = ""
	existingID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Slug: "premium", Currency: "USD"}

	mockVerifier.EXPECT().
		VerifyEvent(payload, "sig").
		Return(event, nil)

	webhookRepo := mockRepo.NewMockWebhookEventRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewWebhookEventRepository().Return(webhookRepo)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewUserRepository().Return(userRepo)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)

	webhookRepo.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.WebhookEvent")).
		Return(nil)

	productRepo.EXPECT().
		FindBySlug(ctx, "premium").
		Return(product, nil)

	userRepo.EXPECT().
		FindByEmail(ctx, "buyer@example.com").
		Return(readerUser(existingID), nil)

	orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			assert.Nil(t, order.ExpiresAt)
		}).
		Return(nil)

	mockTx.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	result, err := svc.ProcessCheckoutEvent(ctx, payload, "sig")
	require.NoError(t, err)
	assert.Equal(t, usecase.CheckoutOutcomeProcessed, result.Outcome)
	assert.False(t, result.UserCreated)
	assert.Equal(t, existingID, result.UserID)
}

func TestCheckoutService_ProcessCheckoutEvent_UnknownProduct(t *testing.T) {
	svc, mockTx, mockVerifier, _ := newCheckoutServiceForTest(t)

	ctx := context.Background()
	payload := []byte(`{"id":"evt_def"}`)
	event := completedCheckoutEvent()
	event.ProductSlug = "retired-product"

	mockVerifier.EXPECT().
		VerifyEvent(payload, "sig").
		Return(event, nil)

	webhookRepo := mockRepo.NewMockWebhookEventRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewWebhookEventRepository().Return(webhookRepo)
	factory.EXPECT().NewProductRepository().Return(productRepo)

	webhookRepo.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.WebhookEvent")).
		Return(nil)

	productRepo.EXPECT().
		FindBySlug(ctx, "retired-product").
		Return(nil, repository.ErrProductNotFound)

	mockTx.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	result, err := svc.ProcessCheckoutEvent(ctx, payload, "sig")
	require.NoError(t, err)
	assert.Equal(t, usecase.CheckoutOutcomeIgnored, result.Outcome)
}
