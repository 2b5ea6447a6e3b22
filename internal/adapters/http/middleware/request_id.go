package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-list-service/internal/platform/httpclient"
)

const (
	headerRequestID = "X-Request-ID"

	// maxIDLength bounds caller-supplied request and correlation IDs.
	maxIDLength = 128
)

// requestIDKey is the context key for request IDs. httpclient keeps its own
// key; WithRequestID writes both.
type requestIDKey struct{}

// WithRequestID returns a new context carrying the request ID. The ID is also
// stored via httpclient.WithRequestID so calls to the todo backend forward
// the X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext extracts the request ID from the context.
// Returns an empty string if no request ID is stored.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestID returns middleware that reuses a well-formed incoming
// X-Request-ID or generates a random UUID. The ID is stored in the request
// context and echoed as a response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if !validID(id) {
				id = uuid.NewString()
			}
			ctx := WithRequestID(r.Context(), id)
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validID reports whether a caller-supplied ID is safe to log and forward:
// non-empty, bounded, and made of letters, digits and -_.: only.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == ':':
		default:
			return false
		}
	}
	return true
}
