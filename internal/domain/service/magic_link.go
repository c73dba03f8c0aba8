package service

import "context"

// MagicLinkSender delivers a passwordless login link to a customer whose
// account was provisioned by the checkout webhook. Delivery is best effort;
// failures must not fail the purchase.
type MagicLinkSender interface {
	// SendLoginLink emails a one-time login link to the given address.
	SendLoginLink(ctx context.Context, email string) error
}
