package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-codeblocks/internal/logger"
)

func newTestHandler() *Handler {
	return NewHandler(Options{Title: "Test API", Version: "0.1", Description: "test"}, logger.Nop())
}

// makeRequest creates a request whose context carries a logger writing to buf,
// the same way withTraceID does.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}
