package server

import "context"

// Server defines the lifecycle contract of the code block server.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a stop signal
	// arrives, then shuts down gracefully. It returns early with an error
	// when the listener cannot be opened.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown(ctx context.Context) error

	// Addr reports the address the server listens on once running.
	Addr() string
}
