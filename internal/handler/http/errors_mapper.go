package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-codeblocks/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrNotFound:      http.StatusNotFound,
	store.ErrAlreadyExists: http.StatusConflict,
	store.ErrTransient:     http.StatusServiceUnavailable,
	store.ErrEmptyDSN:      http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// StatusFromError maps the storage sentinel errors returned by code blocks
// to HTTP status codes. Unknown errors map to 500.
func StatusFromError(err error) int {
	// transient first: it wraps the operation error as well
	if errors.Is(err, store.ErrTransient) {
		return http.StatusServiceUnavailable
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
