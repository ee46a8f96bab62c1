// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-codeblocks/internal/utils"
)

// notFound is registered both as the router's NotFound and MethodNotAllowed
// handler, so a verb that has no handler on a known path is answered exactly
// like an unknown path: 404 instead of chi's default 405.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusNotFound, "")
}
