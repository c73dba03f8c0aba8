// Package payment provides the Stripe-backed implementation of webhook verification.
package payment

import (
	"encoding/json"

	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/service"
	"folio/internal/errors"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// metadataProductSlugKey is the checkout session metadata key that carries
// the purchased product's slug.
const metadataProductSlugKey = "product_slug"

// stripeVerifier implements service.PaymentVerifier using Stripe's signed
// webhook scheme (t=timestamp,v1=hmac over "timestamp.payload").
type stripeVerifier struct {
	webhookSecret string
}

// NewStripeVerifier is the constructor for stripeVerifier.
func NewStripeVerifier(webhookSecret string) service.PaymentVerifier {
	return &stripeVerifier{
		webhookSecret: webhookSecret,
	}
}

// VerifyEvent checks the Stripe-Signature header over the raw payload and
// extracts checkout details. Completed checkout sessions carry customer and
// product data; every other event type surfaces with just id and type.
func (v *stripeVerifier) VerifyEvent(payload []byte, signatureHeader string) (*service.CheckoutEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, v.webhookSecret)
	if err != nil {
		if isSignatureError(err) {
			return nil, domainerrors.ErrWebhookSignatureInvalid.WrapMessage(err.Error())
		}

		return nil, domainerrors.ErrWebhookPayloadInvalid.WrapMessage(err.Error())
	}

	checkout := &service.CheckoutEvent{
		EventID:   event.ID,
		EventType: string(event.Type),
	}

	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		return checkout, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, domainerrors.ErrWebhookPayloadInvalid.WrapMessage("malformed checkout session object")
	}

	checkout.ProductSlug = session.Metadata[metadataProductSlugKey]
	checkout.AmountTotal = session.AmountTotal
	checkout.Currency = string(session.Currency)
	if session.CustomerDetails != nil {
		checkout.CustomerEmail = session.CustomerDetails.Email
		checkout.CustomerName = session.CustomerDetails.Name
	}

	return checkout, nil
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld) ||
		errors.Is(err, webhook.ErrInvalidHeader)
}
