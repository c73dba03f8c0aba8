package impl

import (
	"context"
	"log/slog"
	"time"

	"folio/config"
	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	"folio/internal/domain/repository"
	"folio/internal/domain/service"
	"folio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventTypeCheckoutCompleted is the only processor event that creates orders.
const eventTypeCheckoutCompleted = "checkout.session.completed"

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager repository.TransactionManager
	verifier  service.PaymentVerifier
	magicLink service.MagicLinkSender
	config    *config.Config
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Verifier  service.PaymentVerifier
	MagicLink service.MagicLinkSender
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: params.TxManager,
		verifier:  params.Verifier,
		magicLink: params.MagicLink,
		config:    params.Config,
		logger:    params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessCheckoutEvent verifies, deduplicates, and applies a webhook delivery.
// Deduplication and order creation share one transaction, so a replayed event
// id rolls everything back and reports a duplicate instead of double-charging
// the entitlement.
func (srv *checkoutService) ProcessCheckoutEvent(ctx context.Context, payload []byte, signatureHeader string) (*usecase.CheckoutResult, error) {
	event, err := srv.verifier.VerifyEvent(payload, signatureHeader)
	if err != nil {
		return nil, err
	}

	if event.EventType != eventTypeCheckoutCompleted {
		srv.log(ctx).Info("Ignoring webhook event",
			slog.String("eventID", event.EventID),
			slog.String("eventType", event.EventType),
		)

		return &usecase.CheckoutResult{Outcome: usecase.CheckoutOutcomeIgnored}, nil
	}

	// Once the signature checks out the processor is never asked to retry.
	// Malformed events are logged and acknowledged so one bad delivery cannot
	// block the event stream.
	productSlug := event.ProductSlug
	if productSlug == "" {
		productSlug = srv.defaultProductSlug()
	}
	if productSlug == "" || event.CustomerEmail == "" {
		srv.log(ctx).Warn("Ignoring checkout event with incomplete metadata",
			slog.String("eventID", event.EventID),
			slog.Bool("hasProductSlug", productSlug != ""),
			slog.Bool("hasCustomerEmail", event.CustomerEmail != ""),
		)

		return &usecase.CheckoutResult{Outcome: usecase.CheckoutOutcomeIgnored}, nil
	}

	result := &usecase.CheckoutResult{Outcome: usecase.CheckoutOutcomeProcessed}
	duplicate := false
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		record := &entity.WebhookEvent{
			EventID:    event.EventID,
			EventType:  event.EventType,
			ReceivedAt: time.Now(),
		}
		if err := repoFactory.NewWebhookEventRepository().Record(ctx, record); err != nil {
			if errors.Is(err, repository.ErrDuplicateWebhookEvent) {
				duplicate = true
			}

			return err
		}

		product, err := repoFactory.NewProductRepository().FindBySlug(ctx, productSlug)
		if err != nil {
			return errors.Wrap(err, "failed to find product for checkout")
		}

		user, created, err := resolveOrCreateUserByEmail(ctx, repoFactory.NewUserRepository(), event.CustomerEmail, event.CustomerName)
		if err != nil {
			return err
		}
		result.UserCreated = created
		result.UserID = user.ID

		currency := event.Currency
		if currency == "" {
			currency = product.Currency
		}

		order := &entity.Order{
			UserID:     user.ID,
			ProductID:  product.ID,
			Status:     entity.OrderStatusPaid,
			PriceCents: event.AmountTotal,
			Currency:   currency,
			ExpiresAt:  expiryFor(product, time.Now()),
		}
		if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create checkout order")
		}
		result.OrderID = order.ID

		return nil
	})
	if err != nil {
		if duplicate {
			srv.log(ctx).Info("Webhook event already processed",
				slog.String("eventID", event.EventID),
			)

			return &usecase.CheckoutResult{Outcome: usecase.CheckoutOutcomeDuplicate}, nil
		}

		// Acknowledged despite the failure: a processor-side retry after a
		// partial failure risks duplicate side effects, so errors past the
		// signature check are logged, never surfaced.
		srv.log(ctx).Error("Failed to process checkout event",
			slog.String("eventID", event.EventID),
			slog.Any("error", err),
		)

		return &usecase.CheckoutResult{Outcome: usecase.CheckoutOutcomeIgnored}, nil
	}

	// A brand-new account has no password yet, so a passwordless login link
	// is the only way in. Delivery failures must not trigger a redelivery.
	if result.UserCreated {
		if err := srv.magicLink.SendLoginLink(ctx, event.CustomerEmail); err != nil {
			srv.log(ctx).Warn("Failed to send login link for provisioned account",
				slog.String("email", event.CustomerEmail),
				slog.Any("error", err),
			)
		}
	}

	srv.log(ctx).Info("Checkout event processed",
		slog.String("eventID", event.EventID),
		slog.String("product", productSlug),
		slog.Bool("userCreated", result.UserCreated),
	)

	return result, nil
}

// resolveOrCreateUserByEmail finds the account for the checkout email or
// provisions a new pre-confirmed reader account without a password.
func resolveOrCreateUserByEmail(ctx context.Context, userRepo repository.UserRepository, email, name string) (user *entity.User, created bool, err error) {
	user, err = userRepo.FindByEmail(ctx, email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, errors.Wrap(err, "failed to find user by email")
	}

	user = &entity.User{
		Email:          email,
		Name:           name,
		EmailConfirmed: true,
		Profile: &entity.Profile{
			Role:     entity.RoleUser,
			IsActive: true,
		},
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, false, errors.Wrap(err, "failed to provision user account")
	}

	return user, true, nil
}

func (srv *checkoutService) defaultProductSlug() string {
	if srv.config.Stripe == nil {
		return ""
	}

	return srv.config.Stripe.DefaultProductSlug
}

// expiryFor derives the order's expiry from the product's duration.
// Products without a duration grant open-ended access.
func expiryFor(product *entity.Product, now time.Time) *time.Time {
	if product.DurationDays == nil {
		return nil
	}

	expires := now.AddDate(0, 0, *product.DurationDays)

	return &expires
}
