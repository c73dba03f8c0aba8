package impl

import (
	"context"
	"log/slog"
	"strings"

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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	access      usecase.AccessUsecase
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Access      usecase.AccessUsecase
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		access:      params.Access,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct adds a new purchasable product to the catalog.
func (srv *catalogService) CreateProduct(ctx context.Context, adminID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := srv.access.CheckAdminPermissions(ctx, adminID); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" || strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("slug and name are required")
	}
	if input.PriceCents < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if input.DurationDays != nil && *input.DurationDays <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("duration must be positive when set")
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "USD"
	}

	product := &entity.Product{
		Slug:         slug,
		Name:         strings.TrimSpace(input.Name),
		PriceCents:   input.PriceCents,
		Currency:     currency,
		DurationDays: input.DurationDays,
		IsActive:     true,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateProduct) {
			return nil, domainerrors.ErrProductAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("slug", product.Slug),
	)

	return product, nil
}

// ListProducts returns products, optionally restricted to active ones.
func (srv *catalogService) ListProducts(ctx context.Context, activeOnly bool) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GeneratePurchaseQR renders a QR code pointing at the product's checkout link.
func (srv *catalogService) GeneratePurchaseQR(ctx context.Context, adminID uuid.UUID, productSlug string) ([]byte, error) {
	if err := srv.access.CheckAdminPermissions(ctx, adminID); err != nil {
		return nil, err
	}

	// Resolve first so a typo fails loudly instead of minting a QR code
	// for a product that does not exist.
	if _, err := srv.productRepo.FindBySlug(ctx, productSlug); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product for QR generation")
	}

	png, err := srv.qrService.GeneratePurchaseQR(productSlug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate purchase QR code")
	}

	return png, nil
}
