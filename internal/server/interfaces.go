package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal
	// arrives and every transport has shut down.
	RunServer()

	// Shutdown gracefully stops the server within the deadline of ctx.
	Shutdown(ctx context.Context)
}
