package codeblocks

import (
	"fmt"
	"net/http"
)

// Response lets a handler choose the status and headers of its response.
//
// Body is encoded like any handler result: []byte and io.Reader are
// written as is (the content type is sniffed unless set in Header), other
// values are encoded as JSON.
type Response struct {
	Status int
	Header http.Header
	Body   any
}

// NewResponse returns a Response with the given status and body.
func NewResponse(status int, body any) *Response {
	return &Response{Status: status, Header: make(http.Header), Body: body}
}

// HTTPError is an error answered with Status and {"message": Message}.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError returns an HTTPError. An empty message is replaced by the
// status text.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// Abort returns an HTTPError carrying the status text of status.
func Abort(status int) *HTTPError {
	return &HTTPError{Status: status}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.message())
}

func (e *HTTPError) message() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}
