// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrUnauthorized is logged by the auth gate when an [Authenticator] rejects
// a request without giving a reason.
var ErrUnauthorized = errors.New("unauthorized")
