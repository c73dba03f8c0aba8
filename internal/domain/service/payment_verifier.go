package service

// CheckoutEvent is the verified, provider-neutral view of a payment webhook
// delivery. Only completed checkout sessions carry customer and product data;
// other event types surface with just the id and type so they can be
// acknowledged without processing.
type CheckoutEvent struct {
	EventID       string
	EventType     string
	ProductSlug   string // From the checkout session metadata. Empty when absent.
	CustomerEmail string
	CustomerName  string
	AmountTotal   int64
	Currency      string
}

// PaymentVerifier authenticates a raw webhook delivery against the processor's
// signing secret and extracts the checkout details.
type PaymentVerifier interface {
	// VerifyEvent checks the signature header over the raw payload and parses
	// the event. A bad signature or malformed payload returns an error; an
	// authentic event of any type succeeds.
	VerifyEvent(payload []byte, signatureHeader string) (*CheckoutEvent, error)
}
