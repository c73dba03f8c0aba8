package handler

import (
	"io"
	"log/slog"
	"net/http"

	deliverycontext "folio/internal/delivery/context"
	"folio/internal/delivery/http/response"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// stripeSignatureHeader carries the payment processor's delivery signature.
const stripeSignatureHeader = "Stripe-Signature"

// WebhookHandler holds dependencies for payment processor webhook handlers.
type WebhookHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		uc:     uc,
		logger: logger,
	}
}

// HandleStripeEvent processes a webhook delivery. The raw body is required
// for signature verification, so the payload is never bound through Echo.
// Every successfully processed outcome, duplicates and ignored event types
// included, is acknowledged with 200 so the processor stops redelivering.
func (h *WebhookHandler) HandleStripeEvent(c echo.Context) error {
	ctx := c.Request().Context()

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to read webhook payload")
	}

	result, err := h.uc.ProcessCheckoutEvent(ctx, payload, c.Request().Header.Get(stripeSignatureHeader))
	if err != nil {
		return errors.WithStack(err)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	logger.Info("Webhook delivery acknowledged",
		slog.String("outcome", string(result.Outcome)),
	)

	// The acknowledgment body is identical for every outcome. Processing
	// detail stays in the logs; the caller only learns the delivery landed.
	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
