package server

import "context"

// Server defines the common lifecycle contract for the transport servers
// managed by this package.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT is received and
	// then shuts every transport down.
	RunServer()

	// Run serves until ctx is cancelled or a transport fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the servers and frees associated resources.
	Shutdown()
}
