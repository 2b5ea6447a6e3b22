package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/http/middleware"
)

func TestCorrelationID_ExtractsFromHeader(t *testing.T) {
	t.Parallel()

	var gotID string
	handler := middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID = middleware.CorrelationIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/todos", http.NoBody)
	req.Header.Set("X-Correlation-ID", "corr-abc")
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "corr-abc", gotID)
	assert.Equal(t, "corr-abc", rec.Header().Get("X-Correlation-ID"))
}

func TestCorrelationID_FallsBackToRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
	}{
		{name: "missing header", incoming: ""},
		{name: "malformed header", incoming: "has spaces in it"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID string
			handler := middleware.Chain(middleware.RequestID(), middleware.CorrelationID())(
				http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					gotID = middleware.CorrelationIDFromContext(r.Context())
				}),
			)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/todos", http.NoBody)
			if tt.incoming != "" {
				req.Header.Set("X-Correlation-ID", tt.incoming)
			}
			handler.ServeHTTP(rec, req)

			reqID := rec.Header().Get("X-Request-ID")
			require.NotEmpty(t, reqID)
			assert.Equal(t, reqID, gotID)
			assert.Equal(t, reqID, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestCorrelationID_NoRequestIDNoHeader(t *testing.T) {
	t.Parallel()

	handler := middleware.CorrelationID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/todos", http.NoBody))

	assert.Empty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestCorrelationIDFromContext_NotFound(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.CorrelationIDFromContext(context.Background()))
}

func TestWithCorrelationID_StoresInContext(t *testing.T) {
	t.Parallel()

	ctx := middleware.WithCorrelationID(context.Background(), "corr-1")
	assert.Equal(t, "corr-1", middleware.CorrelationIDFromContext(ctx))
}
