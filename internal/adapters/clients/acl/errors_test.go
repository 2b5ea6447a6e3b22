package acl

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
)

func backendResponse(status int, contentType, body string) *http.Response {
	header := http.Header{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestTranslateBackendError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		resp        *http.Response
		wantErr     error
		wantMessage string
	}{
		{
			name:        "javalin not found for an unknown todo id",
			resp:        backendResponse(http.StatusNotFound, "application/json", `{"title":"No todo with id 58895985a22c04e761776d54 was found.","status":404,"type":"https://javalin.io/documentation#notfoundresponse","details":{}}`),
			wantErr:     domain.ErrNotFound,
			wantMessage: "No todo with id 58895985a22c04e761776d54 was found.",
		},
		{
			name:        "javalin bad request for a malformed todo id",
			resp:        backendResponse(http.StatusBadRequest, "application/json;charset=utf-8", `{"title":"The requested todo id wasn't a legal Mongo Object ID."}`),
			wantErr:     domain.ErrValidation,
			wantMessage: "legal Mongo Object ID",
		},
		{
			name:        "problem detail wins over title",
			resp:        backendResponse(http.StatusConflict, "application/problem+json", `{"title":"Conflict","detail":"todo already exists"}`),
			wantErr:     domain.ErrConflict,
			wantMessage: "todo already exists",
		},
		{
			name:        "message body on a rejected new todo",
			resp:        backendResponse(http.StatusUnprocessableEntity, "application/json", `{"message":"owner must not be empty"}`),
			wantErr:     domain.ErrValidation,
			wantMessage: "owner must not be empty",
		},
		{
			name:        "short text body",
			resp:        backendResponse(http.StatusForbidden, "text/plain; charset=utf-8", "todo list is read-only\n"),
			wantErr:     domain.ErrForbidden,
			wantMessage: "todo list is read-only",
		},
		{
			name:        "401 is reported as forbidden",
			resp:        backendResponse(http.StatusUnauthorized, "", ""),
			wantErr:     domain.ErrForbidden,
			wantMessage: "Unauthorized",
		},
		{
			name:        "spark html error page falls back to status text",
			resp:        backendResponse(http.StatusNotFound, "text/html", "<html><body><h2>404 Not found</h2></body></html>"),
			wantErr:     domain.ErrNotFound,
			wantMessage: "Not Found",
		},
		{
			name:        "html disguised as text is ignored",
			resp:        backendResponse(http.StatusBadGateway, "text/plain", "<html>bad gateway</html>"),
			wantErr:     domain.ErrUnavailable,
			wantMessage: "Bad Gateway",
		},
		{
			name:        "undecodable json falls back to status text",
			resp:        backendResponse(http.StatusServiceUnavailable, "application/json", `{"title":`),
			wantErr:     domain.ErrUnavailable,
			wantMessage: "Service Unavailable",
		},
		{
			name:        "any 5xx is unavailable",
			resp:        backendResponse(599, "", ""),
			wantErr:     domain.ErrUnavailable,
			wantMessage: "599",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := translateBackendError(tt.resp)

			require.ErrorIs(t, got, tt.wantErr)
			assert.Contains(t, got.Error(), tt.wantMessage)
		})
	}
}

func TestTranslateBackendError_RejectedTodoFields(t *testing.T) {
	t.Parallel()

	body := `{
		"title": "Bad Request",
		"errors": [
			{"location": "body.owner", "message": "is required"},
			{"location": "category", "message": "must not be blank"}
		]
	}`

	got := translateBackendError(backendResponse(http.StatusBadRequest, "application/problem+json", body))

	require.ErrorIs(t, got, domain.ErrValidation)
	var verr *domain.ValidationError
	require.ErrorAs(t, got, &verr)
	assert.Equal(t, map[string]string{
		"owner":    "is required",
		"category": "must not be blank",
	}, verr.Fields)
}

func TestTranslateBackendError_FieldErrorsOnlyForValidation(t *testing.T) {
	t.Parallel()

	body := `{"detail":"duplicate","errors":[{"location":"body.owner","message":"taken"}]}`

	got := translateBackendError(backendResponse(http.StatusConflict, "application/json", body))

	require.ErrorIs(t, got, domain.ErrConflict)
	var verr *domain.ValidationError
	assert.NotErrorAs(t, got, &verr)
}

func TestTranslateBackendError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	got := translateBackendError(backendResponse(http.StatusTeapot, "", ""))

	for _, target := range []error{
		domain.ErrNotFound, domain.ErrValidation, domain.ErrConflict,
		domain.ErrForbidden, domain.ErrUnavailable,
	} {
		assert.NotErrorIs(t, got, target)
	}
	assert.Contains(t, got.Error(), "418")
}

func TestTranslateBackendError_NilBody(t *testing.T) {
	t.Parallel()

	got := translateBackendError(&http.Response{StatusCode: http.StatusNotFound, Header: http.Header{}})

	require.ErrorIs(t, got, domain.ErrNotFound)
	assert.Contains(t, got.Error(), "Not Found")
}
