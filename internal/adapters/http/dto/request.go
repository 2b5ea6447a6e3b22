package dto

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
)

// maxBatchIDs caps how many ids one batch request may name.
const maxBatchIDs = 50

// NewTodoRequest represents the JSON body for creating a todo. Field values
// are forwarded to the backend as given; the backend owns validation.
type NewTodoRequest struct {
	Owner    string `json:"owner"`
	Status   bool   `json:"status"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

// ToDomain converts the request to a domain Todo without an ID.
func (r *NewTodoRequest) ToDomain() *todo.Todo {
	return &todo.Todo{
		Owner:    r.Owner,
		Status:   r.Status,
		Body:     r.Body,
		Category: r.Category,
	}
}

// ParseListQuery builds a todo filter from the list endpoint's query string.
// Only category and status are forwarded; status must be "true" or "false".
// An empty category means no category filter.
func ParseListQuery(q url.Values) (todo.Filter, error) {
	var f todo.Filter

	switch status := q.Get(todo.ParamStatus); status {
	case "":
	case "true", "false":
		f = f.WithStatus(status == "true")
	default:
		return todo.Filter{}, &domain.ValidationError{
			Fields: map[string]string{"query.status": fmt.Sprintf("must be true or false, got %q", status)},
		}
	}

	return f.WithCategory(q.Get(todo.ParamCategory)), nil
}

// ParseBatchIDs reads the ids of a batch request. It accepts repeated id
// parameters and comma separated lists, drops blanks and duplicates, and
// keeps first-seen order.
func ParseBatchIDs(q url.Values) ([]string, error) {
	seen := make(map[string]bool)
	var ids []string
	for _, raw := range q["id"] {
		for part := range strings.SplitSeq(raw, ",") {
			id := strings.TrimSpace(part)
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}

	switch {
	case len(ids) == 0:
		return nil, &domain.ValidationError{Fields: map[string]string{"query.id": "at least one id is required"}}
	case len(ids) > maxBatchIDs:
		return nil, &domain.ValidationError{Fields: map[string]string{"query.id": fmt.Sprintf("at most %d ids allowed, got %d", maxBatchIDs, len(ids))}}
	}
	return ids, nil
}
