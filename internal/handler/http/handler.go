package http

import (
	"time"

	"github.com/MKhiriev/go-codeblocks/internal/logger"
	"github.com/MKhiriev/go-codeblocks/internal/utils"
	"github.com/MKhiriev/go-codeblocks/models"
)

// Options configure a [Handler].
type Options struct {
	// Title, Version and Description are rendered on /doc.
	Title       string
	Version     string
	Description string

	// RequestTimeout bounds every request. Zero disables the timeout.
	RequestTimeout time.Duration

	// Routes returns the current route table for the OpenAPI document.
	Routes func() []models.Route

	// SecurityScheme is the OpenAPI security scheme of the auth gate.
	// Nil when no route is gated.
	SecurityScheme map[string]any
}

// Handler owns the router-level concerns of one code block.
type Handler struct {
	options     Options
	metrics     *Metrics
	idGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(options Options, logger *logger.Logger) *Handler {
	logger.Debug().Msg("http handler created")
	if options.Routes == nil {
		options.Routes = func() []models.Route { return nil }
	}

	return &Handler{
		options:     options,
		metrics:     NewMetrics(),
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// Metrics returns the Prometheus collectors of the handler.
func (h *Handler) Metrics() *Metrics {
	return h.metrics
}

// SetDebug switches the request loggers to Debug level when debug is true
// and to Info level otherwise. It must be called before the router serves
// requests.
func (h *Handler) SetDebug(debug bool) {
	h.logger = h.logger.WithDebug(debug)
}
