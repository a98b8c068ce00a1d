// Package delivery defines the transports the process runs.
package delivery

import "context"

// Delivery is a long-running transport started once the fx graph is ready.
type Delivery interface {
	// Serve blocks until the transport stops. A graceful shutdown returns nil.
	Serve(ctx context.Context) error
}
