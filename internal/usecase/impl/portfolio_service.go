package impl

import (
	"context"
	"log/slog"
	"math"

	"folio/config"
	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// weightSumTolerance absorbs float accumulation noise when checking that
// holdings sum to 1.
const weightSumTolerance = 1e-6

// portfolioService implements the PortfolioUsecase interface.
type portfolioService struct {
	txManager     repository.TransactionManager
	portfolioRepo repository.PortfolioRepository
	productRepo   repository.ProductRepository
	access        usecase.AccessUsecase
	config        *config.Config
	logger        *slog.Logger
}

// PortfolioServiceParams holds dependencies for PortfolioService, injected by Fx.
type PortfolioServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	PortfolioRepo repository.PortfolioRepository
	ProductRepo   repository.ProductRepository
	Access        usecase.AccessUsecase
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPortfolioService is the constructor for portfolioService.
func NewPortfolioService(params PortfolioServiceParams) usecase.PortfolioUsecase {
	return &portfolioService{
		txManager:     params.TxManager,
		portfolioRepo: params.PortfolioRepo,
		productRepo:   params.ProductRepo,
		access:        params.Access,
		config:        params.Config,
		logger:        params.Logger,
	}
}

func (srv *portfolioService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Publish validates the holdings and swaps the active snapshot atomically.
func (srv *portfolioService) Publish(ctx context.Context, authorID uuid.UUID, input *usecase.PublishPortfolioInput) (*entity.Portfolio, error) {
	if err := srv.access.CheckAdminPermissions(ctx, authorID); err != nil {
		return nil, err
	}

	if err := validateHoldings(input.Holdings); err != nil {
		return nil, err
	}

	portfolio := &entity.Portfolio{
		Description: input.Description,
		Holdings:    input.Holdings,
		IsActive:    true,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewPortfolioRepository()
		if err := repo.DeactivateAll(ctx); err != nil {
			return errors.Wrap(err, "failed to deactivate previous snapshots")
		}

		if err := repo.Create(ctx, portfolio); err != nil {
			return errors.Wrap(err, "failed to create portfolio snapshot")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to publish portfolio snapshot",
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Portfolio snapshot published",
		slog.Any("portfolioID", portfolio.ID),
		slog.Int("positions", len(portfolio.Holdings)),
	)

	return portfolio, nil
}

// GetActive returns the active snapshot. Staff bypass the entitlement check;
// everyone else needs a live order for the subscription product. An
// unentitled reader gets a purchase prompt instead of the snapshot.
func (srv *portfolioService) GetActive(ctx context.Context, userID uuid.UUID) (*usecase.PortfolioView, error) {
	entitled := true
	if err := srv.access.CheckAdminPermissions(ctx, userID); err != nil {
		if !errors.Is(err, domainerrors.ErrPermissionDenied) {
			return nil, err
		}

		allowed, err := srv.checkEntitlement(ctx, userID)
		if err != nil {
			return nil, err
		}
		entitled = allowed
	}

	if !entitled {
		return srv.purchasePrompt(ctx)
	}

	portfolio, err := srv.portfolioRepo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrPortfolioNotFound) {
			return nil, domainerrors.ErrPortfolioNotFound
		}

		return nil, errors.Wrap(err, "failed to find active portfolio")
	}

	return &usecase.PortfolioView{Portfolio: portfolio}, nil
}

func (srv *portfolioService) checkEntitlement(ctx context.Context, userID uuid.UUID) (bool, error) {
	slug := srv.subscriptionSlug()
	if slug == "" {
		return false, nil
	}

	decision, err := srv.access.HasAccess(ctx, userID, slug)
	if err != nil {
		if errors.Is(err, domainerrors.ErrProductNotFound) {
			return false, nil
		}

		return false, err
	}

	return decision.Allowed, nil
}

// purchasePrompt builds the response for a reader without an entitlement.
// When no subscription product can be resolved there is nothing to offer,
// so the reader gets the plain entitlement error instead.
func (srv *portfolioService) purchasePrompt(ctx context.Context) (*usecase.PortfolioView, error) {
	slug := srv.subscriptionSlug()
	if slug == "" {
		return nil, domainerrors.ErrEntitlementRequired
	}

	product, err := srv.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrEntitlementRequired
		}

		return nil, errors.Wrap(err, "failed to load subscription product for purchase prompt")
	}

	return &usecase.PortfolioView{
		Prompt: &usecase.PurchasePrompt{
			Message: "Subscribe to view the model portfolio.",
			Product: product,
		},
	}, nil
}

func (srv *portfolioService) subscriptionSlug() string {
	if srv.config.Stripe == nil {
		return ""
	}

	return srv.config.Stripe.DefaultProductSlug
}

// validateHoldings checks every weight lies in [0, 1] and the weights sum
// to 1 within tolerance.
func validateHoldings(holdings map[string]float64) error {
	if len(holdings) == 0 {
		return domainerrors.ErrInvalidHoldings.WithDetails("holdings must not be empty")
	}

	sum := 0.0
	for ticker, weight := range holdings {
		if ticker == "" {
			return domainerrors.ErrInvalidHoldings.WithDetails("holdings contain an empty ticker")
		}
		if weight < 0 || weight > 1 {
			return domainerrors.ErrInvalidHoldings.WithDetails("weight for " + ticker + " is outside [0, 1]")
		}
		sum += weight
	}

	if math.Abs(sum-1) > weightSumTolerance {
		return domainerrors.ErrInvalidHoldings.WithDetails("weights must sum to 1")
	}

	return nil
}
