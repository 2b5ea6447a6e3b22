package acl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/clients/acl/todo"
	domtodo "github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TodoClient    = (*TodoClient)(nil)
	_ ports.HealthChecker = (*TodoClient)(nil)
)

// TodoClient is the outbound adapter for the backend todo collection. It
// implements [ports.TodoClient].
//
// Every method issues exactly one request against the collection URL
// (e.g. "http://localhost:4567/api/todos"):
//
//	ListTodos  GET  <collection>[?key=value&...]
//	GetTodo    GET  <collection>/<id>
//	AddTodo    POST <collection>/new
//
// Backend documents are translated by the [todo] subpackage; HTTP errors are
// mapped to domain errors by translateBackendError.
type TodoClient struct {
	req           *Requester
	collectionURL string
	logger        *slog.Logger
}

// NewTodoClient creates a TodoClient that sends requests through client to
// the todo collection at collectionURL. A trailing slash is trimmed so the
// unfiltered list request targets the URL exactly as configured otherwise.
func NewTodoClient(client *httpclient.Client, collectionURL string, logger *slog.Logger) *TodoClient {
	return &TodoClient{
		req:           NewRequester(client, logger),
		collectionURL: strings.TrimRight(collectionURL, "/"),
		logger:        logger,
	}
}

// CollectionURL returns the unfiltered collection URL.
func (c *TodoClient) CollectionURL() string {
	return c.collectionURL
}

// ListTodos fetches the collection, filtered by the query the filter encodes.
// A zero filter requests the bare collection URL with no "?".
func (c *TodoClient) ListTodos(ctx context.Context, filter domtodo.Filter) ([]domtodo.Todo, error) {
	var dtos []todo.TodoDTO
	if err := c.req.GetJSON(ctx, filter.URL(c.collectionURL), &dtos); err != nil {
		return nil, err
	}
	return todo.ToDomainTodoList(dtos), nil
}

// GetTodo fetches a single todo from GET <collection>/<id>. The id is path
// escaped. Returns [domain.ErrNotFound] if the backend returns 404.
func (c *TodoClient) GetTodo(ctx context.Context, id string) (*domtodo.Todo, error) {
	var dto todo.TodoDTO
	if err := c.req.GetJSON(ctx, c.collectionURL+"/"+url.PathEscape(id), &dto); err != nil {
		return nil, err
	}
	result := todo.ToDomainTodo(&dto)
	return &result, nil
}

// AddTodo sends POST <collection>/new with the todo as JSON and returns the
// identifier the backend assigned. Returns [domain.ErrValidation] if the
// backend rejects the payload.
func (c *TodoClient) AddTodo(ctx context.Context, t *domtodo.Todo) (string, error) {
	body, err := c.req.PostJSON(ctx, c.collectionURL+"/new", todo.ToNewTodoRequest(t))
	if err != nil {
		return "", err
	}

	id, err := todo.DecodeNewID(body)
	if err != nil {
		c.logger.ErrorContext(ctx, "unreadable create response",
			slog.String("operation", "TodoClient.AddTodo"),
			slog.Any("error", err),
		)
		return "", err
	}
	return id, nil
}
