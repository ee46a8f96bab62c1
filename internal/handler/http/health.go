package http

import "net/http"

// healthz answers liveness probes. It does not depend on user routes, the
// auth gate or storage.
func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
