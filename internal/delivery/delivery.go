// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is one serving surface of the application (HTTP, worker, ...).
// Servers are collected by the composition root and started together.
type Delivery interface {
	// Serve blocks and runs the server until it fails or is shut down.
	Serve(ctx context.Context) error
}
