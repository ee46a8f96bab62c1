// Package server runs the HTTP server of a code block.
//
// It covers startup, signal handling (SIGINT, SIGTERM, SIGQUIT) and graceful
// shutdown.
package server
