package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty listen address or a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates inconsistent auth settings
	// (for example, a basic auth user without a password hash).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
