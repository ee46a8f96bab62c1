package codeblocks

import (
	"errors"

	"github.com/MKhiriev/go-codeblocks/internal/store"
)

// Route registration errors returned by [API.AddRoute].
var (
	// ErrUnsupportedMethod is returned for verbs other than GET, POST, PUT
	// and DELETE.
	ErrUnsupportedMethod = errors.New("unsupported HTTP method")
	// ErrRouteExists is returned when the path was already registered.
	ErrRouteExists = errors.New("route already registered")
	// ErrReservedRoute is returned for the paths served by every API.
	ErrReservedRoute = errors.New("route is reserved")
	// ErrNilHandler is returned when a verb maps to a nil handler.
	ErrNilHandler = errors.New("handler is nil")
	// ErrInvalidPath is returned for paths that do not start with "/" or
	// are not valid route patterns.
	ErrInvalidPath = errors.New("invalid route path")
)

// Storage errors. Handlers may return them as is: they are answered with
// 404, 409 and 503 respectively.
var (
	ErrNotFound      = store.ErrNotFound
	ErrAlreadyExists = store.ErrAlreadyExists
	ErrTransient     = store.ErrTransient
)

// ErrUnauthorized is returned by authenticators rejecting a request.
var ErrUnauthorized = errors.New("unauthorized")
