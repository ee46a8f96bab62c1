// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codeblocks

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-codeblocks/internal/config"
	handler "github.com/MKhiriev/go-codeblocks/internal/handler/http"
	"github.com/MKhiriev/go-codeblocks/internal/logger"
	"github.com/MKhiriev/go-codeblocks/internal/server"
	"github.com/MKhiriev/go-codeblocks/models"
)

// Default listen address used by the examples.
const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 5000
)

// supportedMethods are the verbs a route can register handlers for.
var supportedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}

// Handlers maps HTTP verbs to handlers. Keys are case-insensitive.
type Handlers map[string]Handler

// API is an HTTP code block: a route table served with the built-in
// health, documentation and metrics routes.
//
// Routes must be registered before the API starts serving.
type API struct {
	title       string
	version     string
	description string

	config *Configuration
	auth   *AuthCodeBlock

	mu     sync.RWMutex
	routes map[string]models.Route

	handler *handler.Handler
	router  *chi.Mux
	logger  *logger.Logger
}

// Option configures an [API].
type Option func(*API)

// WithTitle sets the title shown on /doc.
func WithTitle(title string) Option {
	return func(a *API) { a.title = title }
}

// WithVersion sets the API version shown on /doc.
func WithVersion(version string) Option {
	return func(a *API) { a.version = version }
}

// WithDescription sets the description shown on /doc.
func WithDescription(description string) Option {
	return func(a *API) { a.description = description }
}

// WithConfiguration sets the configuration of the API. Its app metadata is
// used for every field not set by WithTitle, WithVersion or WithDescription.
func WithConfiguration(cfg *Configuration) Option {
	return func(a *API) { a.config = cfg }
}

// WithAuth sets the auth gate. Without one no verb is gated.
func WithAuth(auth *AuthCodeBlock) Option {
	return func(a *API) { a.auth = auth }
}

// WithLogger sets the logger used for requests and server lifecycle.
func WithLogger(l *logger.Logger) Option {
	return func(a *API) { a.logger = l }
}

// NewAPI creates an API with no user routes.
func NewAPI(opts ...Option) *API {
	a := &API{
		routes: make(map[string]models.Route),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.config == nil {
		a.config = NewConfiguration(nil)
	}
	if a.logger == nil {
		a.logger = logger.NewLogger("api")
	}
	app := a.config.cfg.App
	a.title = firstNonEmpty(a.title, app.Title, config.DefaultTitle)
	a.version = firstNonEmpty(a.version, app.Version, config.DefaultVersion)
	a.description = firstNonEmpty(a.description, app.Description, config.DefaultDescription)

	var securityScheme map[string]any
	if a.auth != nil {
		securityScheme = a.auth.securityScheme()
	}

	a.handler = handler.NewHandler(handler.Options{
		Title:          a.title,
		Version:        a.version,
		Description:    a.description,
		RequestTimeout: a.config.cfg.Server.RequestTimeout,
		Routes:         a.Routes,
		SecurityScheme: securityScheme,
	}, a.logger)
	a.router = a.handler.Init()

	return a
}

// Title returns the API title.
func (a *API) Title() string { return a.title }

// Version returns the API version.
func (a *API) Version() string { return a.version }

// Description returns the API description.
func (a *API) Description() string { return a.description }

// Configuration returns the configuration the API was created with.
func (a *API) Configuration() *Configuration { return a.config }

// Auth returns the auth gate, or nil.
func (a *API) Auth() *AuthCodeBlock { return a.auth }

// AddRoute registers handlers for path. Verbs listed in RequireAuth (POST,
// PUT and DELETE by default) are gated by the API's [AuthCodeBlock].
//
// GET and DELETE handlers receive the query parameters as [Args], POST and
// PUT handlers the JSON object body. Path parameters ("/items/{id}") are
// added to Args in both cases. Verbs without a handler answer 404.
func (a *API) AddRoute(path string, handlers Handlers, opts ...RouteOption) error {
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	if slices.Contains(handler.ReservedPaths, path) {
		return fmt.Errorf("%w: %s", ErrReservedRoute, path)
	}
	if err := validatePattern(path); err != nil {
		return err
	}

	byMethod := make(map[string]Handler, len(handlers))
	for verb, h := range handlers {
		method := strings.ToUpper(verb)
		if !slices.Contains(supportedMethods, method) {
			return fmt.Errorf("%w: %s", ErrUnsupportedMethod, verb)
		}
		if isNilHandler(h) {
			return fmt.Errorf("%w: %s %s", ErrNilHandler, method, path)
		}
		byMethod[method] = h
	}

	ro := defaultRouteOptions()
	for _, opt := range opts {
		opt(&ro)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.routes[path]; ok {
		return fmt.Errorf("%w: %s", ErrRouteExists, path)
	}

	route := models.Route{
		Path:    path,
		Methods: make([]string, 0, len(byMethod)),
		Summary: ro.summary,
	}
	for method := range byMethod {
		route.Methods = append(route.Methods, method)
	}
	sort.Strings(route.Methods)

	if a.auth != nil {
		for _, method := range route.Methods {
			if slices.Contains(ro.requireAuth, method) {
				route.RequireAuth = append(route.RequireAuth, method)
			}
		}
	}

	var router chi.Router = a.router
	if len(route.RequireAuth) > 0 {
		router = a.router.With(handler.WithAuth(a.auth, route.RequireAuth))
	}
	for _, method := range route.Methods {
		router.Method(method, path, dispatch(byMethod[method], a.config.MaxBodyBytes()))
	}

	a.routes[path] = route
	a.logger.Debug().Str("path", path).Strs("methods", route.Methods).Strs("require_auth", route.RequireAuth).Msg("route registered")

	return nil
}

// validatePattern registers path on a scratch router, turning the panic chi
// raises for a malformed pattern ("/items/{id") into ErrInvalidPath.
func validatePattern(path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %q: %v", ErrInvalidPath, path, r)
		}
	}()

	chi.NewRouter().Get(path, http.NotFound)
	return nil
}

// Routes returns the registered routes sorted by path.
func (a *API) Routes() []models.Route {
	a.mu.RLock()
	defer a.mu.RUnlock()

	routes := make([]models.Route, 0, len(a.routes))
	for _, route := range a.routes {
		routes = append(routes, route)
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].Path < routes[j].Path })

	return routes
}

// ServeHTTP serves the API, making it usable as an http.Handler.
func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Handler returns the API as an http.Handler.
func (a *API) Handler() http.Handler {
	return a
}

// MetricsRegistry returns the Prometheus registry exposed on /metrics.
// Code blocks can register their own collectors on it.
func (a *API) MetricsRegistry() *prometheus.Registry {
	return a.handler.Metrics().Registry()
}

// Run serves the API on host:port until SIGINT, SIGTERM or SIGQUIT, then
// shuts down gracefully. debug lowers the request log level to Debug.
func (a *API) Run(host string, port int, debug bool) error {
	return a.RunContext(context.Background(), host, port, debug)
}

// RunContext is Run that also stops when ctx is done.
func (a *API) RunContext(ctx context.Context, host string, port int, debug bool) error {
	cfg := a.config.cfg.Server
	cfg.HTTPAddress = net.JoinHostPort(host, strconv.Itoa(port))
	cfg.Debug = debug

	a.handler.SetDebug(debug)

	srv, err := server.NewServer(a, cfg, a.logger.WithDebug(debug))
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
