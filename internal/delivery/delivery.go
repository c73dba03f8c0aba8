// Package delivery defines the contract every transport entrypoint satisfies
// so the application can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP, worker, etc.).
type Delivery interface {
	// Serve blocks until the server stops or the context is cancelled.
	Serve(ctx context.Context) error
}
