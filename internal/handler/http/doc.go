// Package http implements the HTTP transport shared by every code block.
//
// It builds the chi router with the common middleware chain (trace ids,
// access logging, Prometheus metrics, panic recovery, gzip and request
// timeouts), serves the built-in /healthz, /doc, /doc/openapi.json and
// /metrics routes, and provides the auth gate applied to user routes.
package http
