// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and background consumers.
const DefaultTimeout = 10 * time.Second
