// Package delivery defines the contract every transport implementation satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) managed by the application lifecycle.
type Delivery interface {
	// Serve blocks, accepting work until the server is shut down.
	Serve(ctx context.Context) error
}
