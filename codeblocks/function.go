package codeblocks

import (
	"net/http"
	"reflect"
)

// Handler handles one verb of a route. The returned value is written as the
// response, see [Response] for the encoding rules.
type Handler interface {
	Exec(r *http.Request, args Args) (any, error)
}

// HandlerFunc adapts a plain function to [Handler].
type HandlerFunc func(r *http.Request, args Args) (any, error)

// Exec calls f(r, args).
func (f HandlerFunc) Exec(r *http.Request, args Args) (any, error) {
	return f(r, args)
}

// Function is a code block wrapping a single callable. It can be registered
// as a route handler or executed directly.
type Function struct {
	fn HandlerFunc
}

// NewFunction wraps fn.
func NewFunction(fn HandlerFunc) *Function {
	return &Function{fn: fn}
}

// Exec invokes the wrapped callable.
func (f *Function) Exec(r *http.Request, args Args) (any, error) {
	return f.fn(r, args)
}

// isNilHandler reports whether h is nil or wraps a nil value, such as a nil
// HandlerFunc or a Function without a callable.
func isNilHandler(h Handler) bool {
	if h == nil {
		return true
	}
	if f, ok := h.(*Function); ok && f != nil {
		return f.fn == nil
	}

	v := reflect.ValueOf(h)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
