package codeblocks

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/MKhiriev/go-codeblocks/internal/logger"
)

func newTestAPI(opts ...Option) *API {
	return NewAPI(append([]Option{WithLogger(logger.Nop())}, opts...)...)
}

func do(h http.Handler, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func constant(result any) HandlerFunc {
	return func(*http.Request, Args) (any, error) { return result, nil }
}
