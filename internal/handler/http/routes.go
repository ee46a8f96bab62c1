package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Built-in route paths. They are registered by Init and cannot be claimed by
// user routes.
const (
	HealthzPath = "/healthz"
	DocPath     = "/doc"
	OpenAPIPath = "/doc/openapi.json"
	MetricsPath = "/metrics"
)

// ReservedPaths lists the built-in route paths.
var ReservedPaths = []string{HealthzPath, DocPath, OpenAPIPath, MetricsPath}

// Init builds the router with the middleware chain and the built-in routes.
// User routes are registered on the returned router afterwards.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.metrics.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)
	if h.options.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.options.RequestTimeout))
	}

	router.Get(HealthzPath, healthz)
	router.Get(DocPath, h.docPage)
	router.Get(OpenAPIPath, h.openAPI)
	router.Method(http.MethodGet, MetricsPath, h.metrics.Handler())

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
