// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accessService implements the AccessUsecase interface.
type accessService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// AccessServiceParams holds dependencies for AccessService, injected by Fx.
type AccessServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewAccessService is the constructor for accessService.
func NewAccessService(params AccessServiceParams) usecase.AccessUsecase {
	return &accessService{
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckAdminPermissions verifies the caller may use the admin surface.
// Every failure collapses into the same permission error so the response
// never reveals whether the account exists or was deactivated.
func (srv *accessService) CheckAdminPermissions(ctx context.Context, userID uuid.UUID) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrPermissionDenied
		}

		return errors.Wrap(err, "failed to load user for permission check")
	}

	if !user.Profile.CanManageContent() {
		srv.log(ctx).Warn("Admin surface access denied",
			slog.Any("userID", userID),
		)

		return domainerrors.ErrPermissionDenied
	}

	return nil
}

// GrantAccess creates a zero-price paid order expiring after durationDays.
// Each call inserts a fresh order, so repeated grants stack rather than
// extending the previous one.
func (srv *accessService) GrantAccess(ctx context.Context, adminID, userID, productID uuid.UUID, durationDays int) (*usecase.GrantResult, error) {
	if err := srv.CheckAdminPermissions(ctx, adminID); err != nil {
		return nil, err
	}

	if durationDays <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("duration must be a positive number of days")
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product for grant")
	}
	// A retired product cannot receive new entitlements, manual or otherwise.
	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user for grant")
	}

	expiresAt := time.Now().AddDate(0, 0, durationDays)
	order := &entity.Order{
		UserID:     user.ID,
		ProductID:  product.ID,
		Status:     entity.OrderStatusPaid,
		PriceCents: 0,
		Currency:   product.Currency,
		ExpiresAt:  &expiresAt,
	}
	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create grant order")
	}

	srv.log(ctx).Info("Access granted",
		slog.Any("userID", userID),
		slog.String("product", product.Slug),
		slog.Int("durationDays", durationDays),
	)

	return &usecase.GrantResult{Order: order}, nil
}

// RevokeAccess cancels every live order for the user/product pair.
func (srv *accessService) RevokeAccess(ctx context.Context, adminID, userID, productID uuid.UUID) (*usecase.RevokeResult, error) {
	if err := srv.CheckAdminPermissions(ctx, adminID); err != nil {
		return nil, err
	}

	cancelled, err := srv.orderRepo.CancelActiveByUserAndProduct(ctx, userID, productID, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to cancel active orders")
	}
	if cancelled == 0 {
		return nil, domainerrors.ErrOrderNotFound
	}

	srv.log(ctx).Info("Access revoked",
		slog.Any("userID", userID),
		slog.Any("productID", productID),
		slog.Int64("cancelled", cancelled),
	)

	return &usecase.RevokeResult{CancelledCount: cancelled}, nil
}

// HasAccess reports whether the user currently holds a live entitlement.
func (srv *accessService) HasAccess(ctx context.Context, userID uuid.UUID, productSlug string) (*usecase.AccessDecision, error) {
	product, err := srv.productRepo.FindBySlug(ctx, productSlug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product for access check")
	}

	order, err := srv.orderRepo.FindActiveByUserAndProduct(ctx, userID, product.ID, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return &usecase.AccessDecision{Allowed: false}, nil
		}

		return nil, errors.Wrap(err, "failed to find active order")
	}

	return &usecase.AccessDecision{
		Allowed:   true,
		ExpiresAt: order.ExpiresAt,
	}, nil
}

// ListUserOrders returns the user's order history for the admin surface.
func (srv *accessService) ListUserOrders(ctx context.Context, adminID, userID uuid.UUID) ([]*entity.Order, error) {
	if err := srv.CheckAdminPermissions(ctx, adminID); err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}
