// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] can be used to
// start a code block.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 || cfg.Server.MaxBodyBytes < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.Token != "" && cfg.Auth.Header == "" {
		return ErrInvalidAuthConfigs
	}

	// basic auth needs both halves
	if (cfg.Auth.BasicUser == "") != (cfg.Auth.BasicPasswordHash == "") {
		return ErrInvalidAuthConfigs
	}

	return nil
}
