// Package acl is the anti-corruption layer between the todo backend's wire
// format and the domain types. Wire DTOs and their translators live in the
// todo subpackage; request execution and error mapping live here.
package acl

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
)

const (
	maxErrorBodySize = 1 << 20
	maxTextDetail    = 256
)

// backendError covers the error bodies the todo backend sends: Javalin's
// {"title": ...}, RFC 9457 problems and bare {"message": ...} objects.
type backendError struct {
	Title   string       `json:"title"`
	Detail  string       `json:"detail"`
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors"`
}

// fieldError is one rejected field of a new todo.
type fieldError struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// statusErrors maps the 4xx statuses the todo routes can answer with.
var statusErrors = map[int]error{
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
}

// translateBackendError maps a non-2xx todo backend response to a domain
// error. A rejected new todo that names its fields becomes a
// *domain.ValidationError; any 5xx is ErrUnavailable.
func translateBackendError(resp *http.Response) error {
	be := readBackendError(resp)
	detail := cmp.Or(be.Detail, be.Message, be.Title,
		http.StatusText(resp.StatusCode), fmt.Sprintf("status %d", resp.StatusCode))

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	}

	target, ok := statusErrors[resp.StatusCode]
	switch {
	case !ok:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	case errors.Is(target, domain.ErrValidation) && len(be.Errors) > 0:
		return toValidationError(be.Errors)
	default:
		return fmt.Errorf("%s: %w", detail, target)
	}
}

// readBackendError decodes whatever detail the body carries. JSON bodies are
// decoded; a short single-line text body becomes the detail. HTML error
// pages and anything else yield an empty backendError.
func readBackendError(resp *http.Response) backendError {
	if resp.Body == nil {
		return backendError{}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || len(body) == 0 {
		return backendError{}
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		var be backendError
		if json.Unmarshal(body, &be) != nil {
			return backendError{}
		}
		return be
	case mediaType == "text/plain":
		text := strings.TrimSpace(string(body))
		if len(text) > maxTextDetail || strings.ContainsAny(text, "\n<") {
			return backendError{}
		}
		return backendError{Detail: text}
	default:
		return backendError{}
	}
}

// toValidationError keys fields by their bare name, so "body.owner" and
// "owner" both report as owner.
func toValidationError(fields []fieldError) *domain.ValidationError {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[strings.TrimPrefix(f.Location, "body.")] = f.Message
	}
	return &domain.ValidationError{Fields: out}
}
