package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	domainerrors "folio/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test_secret"

// signPayload builds a Stripe-Signature header the same way Stripe does:
// v1 = HMAC-SHA256(secret, "timestamp.payload").
func signPayload(t *testing.T, payload []byte, secret string, at time.Time) string {
	t.Helper()

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", at.Unix(), payload)

	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func checkoutCompletedPayload() []byte {
	return []byte(`{
		"id": "evt_1abc",
		"object": "event",
		"api_version": "2025-07-30.basil",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_1abc",
				"object": "checkout.session",
				"metadata": {"product_slug": "author-portfolio"},
				"customer_details": {"email": "reader@example.com", "name": "Reader"},
				"amount_total": 19900,
				"currency": "usd"
			}
		}
	}`)
}

func TestStripeVerifier_VerifyCheckoutCompleted(t *testing.T) {
	verifier := NewStripeVerifier(testWebhookSecret)
	payload := checkoutCompletedPayload()
	header := signPayload(t, payload, testWebhookSecret, time.Now())

	event, err := verifier.VerifyEvent(payload, header)
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, "evt_1abc", event.EventID)
	assert.Equal(t, "checkout.session.completed", event.EventType)
	assert.Equal(t, "author-portfolio", event.ProductSlug)
	assert.Equal(t, "reader@example.com", event.CustomerEmail)
	assert.Equal(t, "Reader", event.CustomerName)
	assert.Equal(t, int64(19900), event.AmountTotal)
	assert.Equal(t, "usd", event.Currency)
}

func TestStripeVerifier_WrongSecret(t *testing.T) {
	verifier := NewStripeVerifier(testWebhookSecret)
	payload := checkoutCompletedPayload()
	header := signPayload(t, payload, "whsec_other_secret", time.Now())

	event, err := verifier.VerifyEvent(payload, header)
	assert.Nil(t, event)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrWebhookSignatureInvalid))
}

func TestStripeVerifier_TamperedPayload(t *testing.T) {
	verifier := NewStripeVerifier(testWebhookSecret)
	payload := checkoutCompletedPayload()
	header := signPayload(t, payload, testWebhookSecret, time.Now())

	tampered := append([]byte(nil), payload...)
	tampered[len(tampered)-2] = ' '

	event, err := verifier.VerifyEvent(tampered, header)
	assert.Nil(t, event)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrWebhookSignatureInvalid))
}

func TestStripeVerifier_MissingHeader(t *testing.T) {
	verifier := NewStripeVerifier(testWebhookSecret)

	event, err := verifier.VerifyEvent(checkoutCompletedPayload(), "")
	assert.Nil(t, event)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrWebhookSignatureInvalid))
}

func TestStripeVerifier_StaleTimestamp(t *testing.T) {
	verifier := NewStripeVerifier(testWebhookSecret)
	payload := checkoutCompletedPayload()
	header := signPayload(t, payload, testWebhookSecret, time.Now().Add(-time.Hour))

	event, err := verifier.VerifyEvent(payload, header)
	assert.Nil(t, event)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrWebhookSignatureInvalid))
}

func TestStripeVerifier_OtherEventTypePassesThrough(t *testing.T) {
	verifier := NewStripeVerifier(testWebhookSecret)
	payload := []byte(`{
		"id": "evt_2def",
		"object": "event",
		"api_version": "2025-07-30.basil",
		"type": "invoice.paid",
		"data": {"object": {"id": "in_1", "object": "invoice"}}
	}`)
	header := signPayload(t, payload, testWebhookSecret, time.Now())

	event, err := verifier.VerifyEvent(payload, header)
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, "evt_2def", event.EventID)
	assert.Equal(t, "invoice.paid", event.EventType)
	assert.Empty(t, event.ProductSlug)
	assert.Empty(t, event.CustomerEmail)
}
