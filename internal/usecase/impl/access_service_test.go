package impl

import (
	"context"
	"testing"
	"time"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	mockRepo "folio/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccessServiceForTest(t *testing.T) (*accessService, *mockRepo.MockUserRepository, *mockRepo.MockProductRepository, *mockRepo.MockOrderRepository) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewAccessService(AccessServiceParams{
		UserRepo:    mockUserRepo,
		ProductRepo: mockProductRepo,
		OrderRepo:   mockOrderRepo,
		Logger:      newDiscardLogger(),
	})

	return service.(*accessService), mockUserRepo, mockProductRepo, mockOrderRepo
}

func TestAccessService_CheckAdminPermissions_Author(t *testing.T) {
	service, mockUserRepo, _, _ := newAccessServiceForTest(t)

	ctx := context.Background()
	authorID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, authorID).
		Return(staffUser(authorID, entity.RoleAuthor), nil)

	err := service.CheckAdminPermissions(ctx, authorID)
	require.NoError(t, err)
}

func TestAccessService_CheckAdminPermissions_RegularUser(t *testing.T) {
	service, mockUserRepo, _, _ := newAccessServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(readerUser(userID), nil)

	err := service.CheckAdminPermissions(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestAccessService_CheckAdminPermissions_UnknownUser(t *testing.T) {
	service, mockUserRepo, _, _ := newAccessServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	err := service.CheckAdminPermissions(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestAccessService_CheckAdminPermissions_InactiveAdmin(t *testing.T) {
	service, mockUserRepo, _, _ := newAccessServiceForTest(t)

	ctx := context.Background()
	adminID := uuid.New()
	admin := staffUser(adminID, entity.RoleAdmin)
	admin.Profile.IsActive = false

	mockUserRepo.EXPECT().
		FindByID(ctx, adminID).
		Return(admin, nil)

	err := service.CheckAdminPermissions(ctx, adminID)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestAccessService_GrantAccess_CreatesExpiringOrder(t *testing.T) {
	service, mockUserRepo, mockProductRepo, mockOrderRepo := newAccessServiceForTest(t)

	ctx := context.Background()
	adminID := uuid.New()
	readerID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Slug: "premium", Currency: "USD", IsActive: true}

	mockUserRepo.EXPECT().
		FindByID(ctx, adminID).
		Return(staffUser(adminID, entity.RoleAdmin), nil)

	mockProductRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	mockUserRepo.EXPECT().
		FindByID(ctx, readerID).
		Return(readerUser(readerID), nil)

	mockOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	result, err := service.GrantAccess(ctx, adminID, readerID, product.ID, 30)
	require.NoError(t, err)
	require.NotNil(t, result.Order)
	assert.Equal(t, readerID, result.Order.UserID)
	assert.Equal(t, product.ID, result.Order.ProductID)
	assert.Equal(t, entity.OrderStatusPaid, result.Order.Status)
	assert.Equal(t, int64(0), result.Order.PriceCents)
	assert.Equal(t, "USD", result.Order.Currency)
	require.NotNil(t, result.Order.ExpiresAt)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), *result.Order.ExpiresAt, time.Minute)
}

func TestAccessService_GrantAccess_UnknownProduct(t *testing.T) {
	service, mockUserRepo, mockProductRepo, _ := newAccessServiceForTest(t)

	ctx := context.Background()
	adminID := uuid.New()
	productID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, adminID).
		Return(staffUser(adminID, entity.RoleAdmin), nil)

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	result, err := service.GrantAccess(ctx, adminID, uuid.New(), productID, 30)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Nil(t, result)
}

func TestAccessService_GrantAccess_RetiredProduct(t *testing.T) {
	service, mockUserRepo, mockProductRepo, _ := newAccessServiceForTest(t)

	ctx := context.Background()
	adminID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Slug: "retired", Currency: "USD", IsActive: false}

	mockUserRepo.EXPECT().
		FindByID(ctx, adminID).
		Return(staffUser(adminID, entity.RoleAdmin), nil)

	mockProductRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	result, err := service.GrantAccess(ctx, adminID, uuid.New(), product.ID, 30)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Nil(t, result)
}

func TestAccessService_GrantAccess_InvalidDuration(t *testing.T) {
	service, mockUserRepo, _, _ := newAccessServiceForTest(t)

	ctx := context.Background()
	adminID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, adminID).
		Return(staffUser(adminID, entity.RoleAdmin), nil)

	result, err := service.GrantAccess(ctx, adminID, uuid.New(), uuid.New(), 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, result)
}

func TestAccessService_GrantAccess_UnknownUser(t *testing.T) {
	service, mockUserRepo, mockProductRepo, _ := newAccessServiceForTest(t)

	ctx := context.Background()
	adminID := uuid.New()
	readerID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Slug: "premium", Currency: "USD", IsActive: true}

	mockUserRepo.EXPECT().
		FindByID(ctx, adminID).
		Return(staffUser(adminID, entity.RoleAdmin), nil)

	mockProductRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	mockUserRepo.EXPECT().
		FindByID(ctx, readerID).
		Return(nil, repository.ErrUserNotFound)

	result, err := service.GrantAccess(ctx, adminID, readerID, product.ID, 30)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, result)
}

func TestAccessService_GrantAccess_NotAdmin(t *testing.T) {
	service, mockUserRepo, _, _ := newAccessServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(readerUser(userID), nil)

	result, err := service.GrantAccess(ctx, userID, uuid.New(), uuid.New(), 30)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	assert.Nil(t, result)
}

func TestAccessService_RevokeAccess_CancelsOrders(t *testing.T) {
	service, mockUserRepo, _, mockOrderRepo := newAccessServiceForTest(t)

	ctx := context.Background()
	adminID := uuid.New()
	readerID := uuid.New()
	productID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, adminID).
		Return(staffUser(adminID, entity.RoleAdmin), nil)

	mockOrderRepo.EXPECT().
		CancelActiveByUserAndProduct(ctx, readerID, productID, mock.AnythingOfType("time.Time")).
		Return(int64(2), nil)

	result, err := service.RevokeAccess(ctx, adminID, readerID, productID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.CancelledCount)
}

func TestAccessService_RevokeAccess_NothingToCancel(t *testing.T) {
	service, mockUserRepo, _, mockOrderRepo := newAccessServiceForTest(t)

	ctx := context.Background()
	adminID := uuid.New()
	readerID := uuid.New()
	productID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, adminID).
		Return(staffUser(adminID, entity.RoleAdmin), nil)

	mockOrderRepo.EXPECT().
		CancelActiveByUserAndProduct(ctx, readerID, productID, mock.AnythingOfType("time.Time")).
		Return(int64(0), nil)

	result, err := service.RevokeAccess(ctx, adminID, readerID, productID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	assert.Nil(t, result)
}

func TestAccessService_HasAccess_ActiveOrder(t *testing.T) {
	service, _, mockProductRepo, mockOrderRepo := newAccessServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Slug: "premium"}
	expires := time.Now().Add(24 * time.Hour)

	mockProductRepo.EXPECT().
		FindBySlug(ctx, "premium").
		Return(product, nil)

	mockOrderRepo.EXPECT().
		FindActiveByUserAndProduct(ctx, userID, product.ID, mock.AnythingOfType("time.Time")).
		Return(&entity.Order{UserID: userID, ProductID: product.ID, Status: entity.OrderStatusPaid, ExpiresAt: &expires}, nil)

	decision, err := service.HasAccess(ctx, userID, "premium")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	require.NotNil(t, decision.ExpiresAt)
	assert.WithinDuration(t, expires, *decision.ExpiresAt, time.Second)
}

func TestAccessService_HasAccess_NoOrder(t *testing.T) {
	service, _, mockProductRepo, mockOrderRepo := newAccessServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Slug: "premium"}

	mockProductRepo.EXPECT().
		FindBySlug(ctx, "premium").
		Return(product, nil)

	mockOrderRepo.EXPECT().
		FindActiveByUserAndProduct(ctx, userID, product.ID, mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrOrderNotFound)

	decision, err := service.HasAccess(ctx, userID, "premium")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Nil(t, decision.ExpiresAt)
}

func TestAccessService_ListUserOrders_ReturnsHistory(t *testing.T) {
	svc, mockUserRepo, _, mockOrderRepo := newAccessServiceForTest(t)

	ctx := context.Background()
	adminID := uuid.New()
	userID := uuid.New()
	orders := []*entity.Order{
		{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusPaid},
		{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusCancelled},
	}

	mockUserRepo.EXPECT().
		FindByID(ctx, adminID).
		Return(staffUser(adminID, entity.RoleAdmin), nil)

	mockOrderRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(orders, nil)

	got, err := svc.ListUserOrders(ctx, adminID, userID)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestAccessService_ListUserOrders_NotAdmin(t *testing.T) {
	svc, mockUserRepo, _, _ := newAccessServiceForTest(t)

	ctx := context.Background()
	readerID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, readerID).
		Return(readerUser(readerID), nil)

	got, err := svc.ListUserOrders(ctx, readerID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	assert.Nil(t, got)
}
