// Package lifecycle defines shared constants for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of managed components.
const DefaultTimeout = 10 * time.Second
