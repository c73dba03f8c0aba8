package main

import (
	"context"
	"log/slog"
	"os"

	"folio/config"
	"folio/internal/delivery"
	"folio/internal/delivery/http"
	"folio/internal/delivery/http/middleware"
	"folio/internal/delivery/http/router/handler"
	"folio/internal/domain/service"
	"folio/internal/errors"
	"folio/internal/infra/auth"
	logs "folio/internal/infra/log"
	"folio/internal/infra/mail"
	"folio/internal/infra/notification"
	"folio/internal/infra/payment"
	"folio/internal/infra/persistence/postgres"
	"folio/internal/infra/pubsub"
	"folio/internal/infra/qrcode"
	"folio/internal/infra/ratelimit"
	"folio/internal/infra/storage"
	"folio/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		ratelimit.New,
		storage.New,
		pubsub.NewEventPublisher,
		notification.NewNotificationService,
		mail.NewMagicLinkSender,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewPortfolioRepository,
			postgres.NewAnalysisRepository,
			postgres.NewWebhookEventRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newPaymentVerifier,
			newQRCodeService,
		),
	)
}

// newPaymentVerifier creates the webhook signature verifier from configuration.
// A missing webhook secret would make every delivery unverifiable, so it is a
// startup failure rather than a per-request 400.
func newPaymentVerifier(cfg *config.Config) (service.PaymentVerifier, error) {
	if cfg.Stripe == nil || cfg.Stripe.WebhookSecret == "" {
		return nil, errors.New("stripe webhook secret must be configured")
	}

	return payment.NewStripeVerifier(cfg.Stripe.WebhookSecret), nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	var checkoutBase string
	if cfg.Stripe != nil {
		checkoutBase = cfg.Stripe.CheckoutBaseURL
	}

	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", checkoutBase)
	}
	if cfg.QRCode.BaseURL != "" {
		checkoutBase = cfg.QRCode.BaseURL
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, checkoutBase)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewAccessService,
			impl.NewCheckoutService,
			impl.NewPortfolioService,
			impl.NewAnalysisService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewAnalysisHandler,
			handler.NewPortfolioHandler,
			handler.NewAccessHandler,
			handler.NewProductHandler,
			handler.NewWebhookHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
