package server

import "context"

// Server defines the lifecycle contract of the transport servers managed
// by this package.
type Server interface {
	// RunServer serves requests until ctx is done or a transport fails, then
	// shuts every transport down within the configured shutdown timeout.
	RunServer(ctx context.Context) error
}

// transport is one listener managed by [Server].
type transport interface {
	name() string
	address() string

	// serve blocks until the transport stops. A graceful stop returns nil.
	serve() error
	shutdown(ctx context.Context) error
}
