// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied before any other configuration source.
const (
	DefaultHTTPAddress    = "0.0.0.0:5000"
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxBodyBytes   = 1 << 20
	DefaultAuthHeader     = "Authorization"
	DefaultTokenIssuer    = "codeblocks"
	DefaultTitle          = "API"
	DefaultVersion        = "1.0"
	DefaultDescription    = "A simple API"
)

// StructuredConfig is the top-level configuration container for a code
// block. It aggregates all sub-configurations and is populated by merging
// defaults, environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Auth holds the credentials used by the auth gate. When every field is
	// empty, no route is gated.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the relational database used by the
	// blob and persistent key/value stores.
	Storage Storage `envPrefix:"STORAGE_"`

	// App holds the documentation metadata and free-form settings.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodyBytes caps the size of POST and PUT request bodies.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`

	// Debug switches the request logger to Debug level.
	// Env: SERVER_DEBUG
	Debug bool `env:"DEBUG"`
}

// Auth holds the settings of the auth gate.
type Auth struct {
	// Header is the request header carrying the credential for token auth.
	// Env: AUTH_HEADER
	Header string `env:"HEADER"`

	// Token is the exact value the Header must carry.
	// Env: AUTH_TOKEN
	Token string `env:"TOKEN"`

	// TokenSignKey is the HMAC key used to sign and verify bearer JWTs.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim expected on bearer JWTs.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// BasicUser and BasicPasswordHash configure HTTP Basic auth. The hash is
	// a bcrypt hash of the password.
	// Env: AUTH_BASIC_USER, AUTH_BASIC_PASSWORD_HASH
	BasicUser         string `env:"BASIC_USER"`
	BasicPasswordHash string `env:"BASIC_PASSWORD_HASH"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the Data Source Name. "postgres://" and "postgresql://" DSNs
	// are opened with pgx, anything else is treated as a SQLite path
	// (e.g. "file:codeblocks.db?cache=shared" or ":memory:").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// App holds the metadata rendered on /doc and free-form settings exposed to
// code blocks through Configuration.Get.
type App struct {
	// Env: APP_TITLE
	Title string `env:"TITLE"`
	// Env: APP_VERSION
	Version string `env:"VERSION"`
	// Env: APP_DESCRIPTION
	Description string `env:"DESCRIPTION"`

	// Settings is parsed from "key1:value1,key2:value2".
	// Env: APP_SETTINGS
	Settings map[string]string `env:"SETTINGS"`
}

// Default returns the configuration used when no other source sets a field.
func Default() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxBodyBytes:   DefaultMaxBodyBytes,
		},
		Auth: Auth{
			Header:      DefaultAuthHeader,
			TokenIssuer: DefaultTokenIssuer,
		},
		App: App{
			Title:       DefaultTitle,
			Version:     DefaultVersion,
			Description: DefaultDescription,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
