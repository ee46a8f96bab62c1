// Package utils provides small helpers shared by the HTTP layer and the
// public code block API: typed context keys, JSON response writing, the
// outbound HTTP client, JWT helpers and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey is the key under which authenticators store the identity
// of the caller (e.g. the "sub" claim of a bearer token or a basic auth
// user name).
var SubjectCtxKey = contextKey("subject")

// WithSubject returns a copy of ctx carrying subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectCtxKey, subject)
}

// GetSubjectFromContext retrieves the caller identity stored by
// [WithSubject]. ok is false when no subject is present.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok && subject != ""
}
