// Package lifecycle holds values shared by fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks (DB ping, HTTP shutdown).
const DefaultTimeout = 10 * time.Second
