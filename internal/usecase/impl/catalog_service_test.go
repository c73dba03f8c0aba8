package impl

import (
	"context"
	"testing"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	mockRepo "folio/internal/mocks/repository"
	mockSvc "folio/internal/mocks/service"
	mockUC "folio/internal/mocks/usecase"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogServiceForTest(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockProductRepository, *mockUC.MockAccessUsecase, *mockSvc.MockQRCodeService) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockAccess := mockUC.NewMockAccessUsecase(t)
	mockQRService := mockSvc.NewMockQRCodeService(t)

	svc := NewCatalogService(CatalogServiceParams{
		ProductRepo: mockProductRepo,
		Access:      mockAccess,
		QRService:   mockQRService,
		Logger:      newDiscardLogger(),
	})

	return svc, mockProductRepo, mockAccess, mockQRService
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	svc, mockProductRepo, mockAccess, _ := newCatalogServiceForTest(t)

	ctx := context.Background()
	adminID := uuid.New()
	duration := 30

	mockAccess.EXPECT().
		CheckAdminPermissions(ctx, adminID).
		Return(nil)

	mockProductRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			product.ID = uuid.New()
			assert.Equal(t, "premium-monthly", product.Slug)
			assert.Equal(t, "USD", product.Currency)
			assert.True(t, product.IsActive)
		}).
		Return(nil)

	product, err := svc.CreateProduct(ctx, adminID, &usecase.CreateProductInput{
		Slug:         "premium-monthly",
		Name:         "Premium Monthly",
		PriceCents:   4900,
		Currency:     "usd",
		DurationDays: &duration,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, int64(4900), product.PriceCents)
}

func TestCatalogService_CreateProduct_DuplicateSlug(t *testing.T) {
	svc, mockProductRepo, mockAccess, _ := newCatalogServiceForTest(t)

	ctx := context.Background()
	adminID := uuid.New()

	mockAccess.EXPECT().
		CheckAdminPermissions(ctx, adminID).
		Return(nil)

	mockProductRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrDuplicateProduct)

	product, err := svc.CreateProduct(ctx, adminID, &usecase.CreateProductInput{
		Slug:       "premium-monthly",
		Name:       "Premium Monthly",
		PriceCents: 4900,
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductAlreadyExists)
	assert.Nil(t, product)
}

func TestCatalogService_CreateProduct_NegativePrice(t *testing.T) {
	svc, _, mockAccess, _ := newCatalogServiceForTest(t)

	ctx := context.Background()
	adminID := uuid.New()

	mockAccess.EXPECT().
		CheckAdminPermissions(ctx, adminID).
		Return(nil)

	product, err := svc.CreateProduct(ctx, adminID, &usecase.CreateProductInput{
		Slug:       "premium-monthly",
		Name:       "Premium Monthly",
		PriceCents: -1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, product)
}

func TestCatalogService_ListProducts_ActiveOnly(t *testing.T) {
	svc, mockProductRepo, _, _ := newCatalogServiceForTest(t)

	ctx := context.Background()
	expected := []*entity.Product{{ID: uuid.New(), Slug: "premium-monthly", IsActive: true}}

	mockProductRepo.EXPECT().
		List(ctx, true).
		Return(expected, nil)

	products, err := svc.ListProducts(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestCatalogService_GeneratePurchaseQR_Success(t *testing.T) {
	svc, mockProductRepo, mockAccess, mockQRService := newCatalogServiceForTest(t)

	ctx := context.Background()
	adminID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	mockAccess.EXPECT().
		CheckAdminPermissions(ctx, adminID).
		Return(nil)

	mockProductRepo.EXPECT().
		FindBySlug(ctx, "premium-monthly").
		Return(&entity.Product{ID: uuid.New(), Slug: "premium-monthly"}, nil)

	mockQRService.EXPECT().
		GeneratePurchaseQR("premium-monthly").
		Return(png, nil)

	result, err := svc.GeneratePurchaseQR(ctx, adminID, "premium-monthly")
	require.NoError(t, err)
	assert.Equal(t, png, result)
}

func TestCatalogService_GeneratePurchaseQR_UnknownProduct(t *testing.T) {
	svc, mockProductRepo, mockAccess, _ := newCatalogServiceForTest(t)

	ctx := context.Background()
	adminID := uuid.New()

	mockAccess.EXPECT().
		CheckAdminPermissions(ctx, adminID).
		Return(nil)

	mockProductRepo.EXPECT().
		FindBySlug(ctx, "missing").
		Return(nil, repository.ErrProductNotFound)

	result, err := svc.GeneratePurchaseQR(ctx, adminID, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Nil(t, result)
}
