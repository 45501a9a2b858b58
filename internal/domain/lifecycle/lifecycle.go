// Package lifecycle holds shared start/stop constants for long-running components.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
