package codeblocks

import (
	"net/http"
	"strings"
)

// DefaultRequireAuth lists the verbs gated when a route does not pass
// [RequireAuth].
var DefaultRequireAuth = []string{http.MethodPost, http.MethodPut, http.MethodDelete}

type routeOptions struct {
	requireAuth []string
	summary     string
}

func defaultRouteOptions() routeOptions {
	return routeOptions{
		requireAuth: append([]string(nil), DefaultRequireAuth...),
	}
}

// RouteOption configures a route registered with [API.AddRoute].
type RouteOption func(*routeOptions)

// RequireAuth replaces the set of gated verbs for the route. Verbs are
// case-insensitive. RequireAuth() with no verbs leaves the route open.
func RequireAuth(verbs ...string) RouteOption {
	return func(o *routeOptions) {
		o.requireAuth = make([]string, 0, len(verbs))
		for _, verb := range verbs {
			o.requireAuth = append(o.requireAuth, strings.ToUpper(verb))
		}
	}
}

// WithSummary sets the one-line description of the route shown on /doc.
func WithSummary(summary string) RouteOption {
	return func(o *routeOptions) { o.summary = summary }
}
