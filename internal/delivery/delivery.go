// Package delivery defines the contract every transport entry point
// (HTTP today, anything else later) satisfies so the composition root can
// start them uniformly.
package delivery

import "context"

// Delivery is a long-running server. Serve blocks until the server stops
// or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
