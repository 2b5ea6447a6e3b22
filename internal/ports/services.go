package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
)

// TodoService defines the service port for todo data access.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers, CLI commands and the interactive browser).
type TodoService interface {
	// GetTodos lists todos, restricted to category when it is non-empty.
	GetTodos(ctx context.Context, category string) ([]todo.Todo, error)

	// ListTodos lists todos matching an arbitrary filter (category, status).
	ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// GetTodoByID returns a single todo.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodoByID(ctx context.Context, id string) (*todo.Todo, error)

	// FilterByCategory returns filter with its category replaced. An empty
	// category clears it. No request is made.
	FilterByCategory(filter todo.Filter, category string) todo.Filter

	// AddNewTodo creates a todo and returns the backend-assigned identifier.
	// Returns domain.ErrValidation if the todo is rejected.
	AddNewTodo(ctx context.Context, t *todo.Todo) (string, error)

	// GetTodosByIDs fetches several todos concurrently. Each ID succeeds or
	// fails independently; results keep the order of ids.
	GetTodosByIDs(ctx context.Context, ids []string) []TodoResult
}

// TodoResult is the outcome of fetching one todo within GetTodosByIDs.
// Exactly one of Todo and Err is set.
type TodoResult struct {
	ID   string
	Todo *todo.Todo
	Err  error
}
