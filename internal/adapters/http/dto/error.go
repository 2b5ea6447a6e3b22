package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
)

// StatusClientClosedRequest is the status logged when the client went away
// before the todo backend answered. No client ever reads it.
const StatusClientClosedRequest = 499

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// problem is the status and title a class of todo error is reported with.
type problem struct {
	target error
	status int
	title  string
}

// problems is checked in order; the first target err wraps wins.
var problems = []problem{
	{domain.ErrValidation, http.StatusBadRequest, "Invalid todo request"},
	{domain.ErrNotFound, http.StatusNotFound, "Todo not found"},
	{domain.ErrForbidden, http.StatusForbidden, "Todo backend refused access"},
	{domain.ErrConflict, http.StatusConflict, "Todo conflict"},
	{domain.ErrUnavailable, http.StatusBadGateway, "Todo backend unavailable"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "Todo backend timed out"},
	{context.Canceled, StatusClientClosedRequest, "Client closed request"},
}

func problemFor(err error) problem {
	for _, p := range problems {
		if errors.Is(err, p.target) {
			return p
		}
	}
	return problem{status: http.StatusInternalServerError, title: http.StatusText(http.StatusInternalServerError)}
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from err. Instance is
// the request URI, so a failed list call echoes its category filter.
// Unclassified errors keep their text out of the response.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	p := problemFor(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    p.title,
		Status:   p.status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}

	if p.status == http.StatusInternalServerError {
		resp.Detail = "internal error"
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// validationFieldsToDetails turns validation fields into details sorted by
// location. Todo fields are reported under "body."; keys already prefixed
// "query." or "path." keep their prefix.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		loc := field
		if !strings.HasPrefix(field, "query.") && !strings.HasPrefix(field, "path.") {
			loc = "body." + field
		}
		details = append(details, ErrorDetail{Location: loc, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
