package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "folio/internal/domain/errors"
	mockUC "folio/internal/mocks/usecase"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newWebhookTestContext(body, signature string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if signature != "" {
		req.Header.Set(stripeSignatureHeader, signature)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestWebhookHandler_HandleStripeEvent_Processed(t *testing.T) {
	mockCheckout := mockUC.NewMockCheckoutUsecase(t)
	handler := NewWebhookHandler(mockCheckout, newDiscardLogger())

	payload := `{"id":"evt_123"}`
	c, rec := newWebhookTestContext(payload, "t=1,v1=abc")

	mockCheckout.EXPECT().
		ProcessCheckoutEvent(c.Request().Context(), []byte(payload), "t=1,v1=abc").
		Return(&usecase.CheckoutResult{Outcome: usecase.CheckoutOutcomeProcessed, UserCreated: true}, nil)

	err := handler.HandleStripeEvent(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())
}

func TestWebhookHandler_HandleStripeEvent_DuplicateStillAcknowledged(t *testing.T) {
	mockCheckout := mockUC.NewMockCheckoutUsecase(t)
	handler := NewWebhookHandler(mockCheckout, newDiscardLogger())

	payload := `{"id":"evt_123"}`
	c, rec := newWebhookTestContext(payload, "t=1,v1=abc")

	mockCheckout.EXPECT().
		ProcessCheckoutEvent(c.Request().Context(), []byte(payload), "t=1,v1=abc").
		Return(&usecase.CheckoutResult{Outcome: usecase.CheckoutOutcomeDuplicate}, nil)

	err := handler.HandleStripeEvent(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	// A duplicate delivery must be indistinguishable from a fresh one.
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())
}

func TestWebhookHandler_HandleStripeEvent_IgnoredStillAcknowledged(t *testing.T) {
	mockCheckout := mockUC.NewMockCheckoutUsecase(t)
	handler := NewWebhookHandler(mockCheckout, newDiscardLogger())

	payload := `{"id":"evt_123"}`
	c, rec := newWebhookTestContext(payload, "t=1,v1=abc")

	mockCheckout.EXPECT().
		ProcessCheckoutEvent(c.Request().Context(), []byte(payload), "t=1,v1=abc").
		Return(&usecase.CheckoutResult{Outcome: usecase.CheckoutOutcomeIgnored}, nil)

	err := handler.HandleStripeEvent(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())
}

func TestWebhookHandler_HandleStripeEvent_BadSignature(t *testing.T) {
	mockCheckout := mockUC.NewMockCheckoutUsecase(t)
	handler := NewWebhookHandler(mockCheckout, newDiscardLogger())

	payload := `{"id":"evt_123"}`
	c, _ := newWebhookTestContext(payload, "t=1,v1=forged")

	mockCheckout.EXPECT().
		ProcessCheckoutEvent(c.Request().Context(), []byte(payload), "t=1,v1=forged").
		Return(nil, domainerrors.ErrWebhookSignatureInvalid)

	err := handler.HandleStripeEvent(c)
	assert.ErrorIs(t, err, domainerrors.ErrWebhookSignatureInvalid)
}

func TestWebhookHandler_HandleStripeEvent_BadPayload(t *testing.T) {
	mockCheckout := mockUC.NewMockCheckoutUsecase(t)
	handler := NewWebhookHandler(mockCheckout, newDiscardLogger())

	payload := `{"id":"evt_123"}`
	c, _ := newWebhookTestContext(payload, "t=1,v1=abc")

	mockCheckout.EXPECT().
		ProcessCheckoutEvent(c.Request().Context(), []byte(payload), "t=1,v1=abc").
		Return(nil, domainerrors.ErrWebhookPayloadInvalid.WithDetails("customer email is missing"))

	err := handler.HandleStripeEvent(c)
	assert.ErrorIs(t, err, domainerrors.ErrWebhookPayloadInvalid)
}
