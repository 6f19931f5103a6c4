package logging

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// requestIDLength is how many hex characters of the generated UUID survive.
// Short ids are grep-friendly and still unique enough for log correlation.
const requestIDLength = 8

// NewRequestID derives a short opaque id from a random 128-bit UUID.
func NewRequestID() string {
	return uuid.NewString()[:requestIDLength]
}

// WithRequestID binds id to the given context. Bindings are per-context, so
// concurrent requests never observe each other's id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id bound to ctx. When nothing was bound it generates
// a fresh id so that every log line carries some identifier, even on code
// paths outside the request middleware.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return NewRequestID()
}
