// Package lifecycle holds shared lifecycle constants for the application.
package lifecycle

import "time"

// DefaultTimeout is the budget for graceful shutdown of a delivery.
const DefaultTimeout = 10 * time.Second
