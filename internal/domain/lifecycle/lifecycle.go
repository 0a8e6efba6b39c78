// Package lifecycle holds shared timeouts for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup pings.
const DefaultTimeout = 10 * time.Second
