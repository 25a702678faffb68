// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running transport server. Serve blocks until the
// server is shut down or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
