// Package lifecycle holds shared start/stop budgets for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of servers and pools.
const DefaultTimeout = 10 * time.Second
