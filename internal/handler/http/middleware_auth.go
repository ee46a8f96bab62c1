package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-codeblocks/internal/logger"
	"github.com/MKhiriev/go-codeblocks/internal/utils"
)

// Authenticator checks the credentials carried by a request. On success it
// returns the request to pass on, optionally with identity data added to
// its context.
type Authenticator interface {
	Authenticate(r *http.Request) (*http.Request, error)
}

// WithAuth returns a middleware that runs auth for requests whose method is
// in verbs and lets every other method through untouched.
//
// A rejected request is answered with 401 {"message": "Unauthorized"} and
// never reaches next.
func WithAuth(auth Authenticator, verbs []string) func(http.Handler) http.Handler {
	gated := make(map[string]struct{}, len(verbs))
	for _, verb := range verbs {
		gated[strings.ToUpper(verb)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := gated[r.Method]; !ok || auth == nil {
				next.ServeHTTP(w, r)
				return
			}

			log := logger.FromRequest(r)

			authenticated, err := auth.Authenticate(r)
			if err != nil || authenticated == nil {
				if err == nil {
					err = ErrUnauthorized
				}
				log.Debug().Err(err).Str("method", r.Method).Str("uri", r.RequestURI).Msg("request rejected by auth gate")
				utils.WriteError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
				return
			}

			next.ServeHTTP(w, authenticated)
		})
	}
}
