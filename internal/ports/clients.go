package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
)

// TodoClient defines the client port for the downstream todo collection.
// Implemented by the ACL adapter; called by the application layer.
// Each method issues exactly one HTTP request.
type TodoClient interface {
	// ListTodos returns the todos matching filter. A zero-value Filter lists
	// the whole collection by requesting the bare collection URL.
	ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// GetTodo returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id string) (*todo.Todo, error)

	// AddTodo creates a todo and returns the identifier the backend assigned.
	// Returns domain.ErrValidation if the backend rejects the payload.
	AddTodo(ctx context.Context, t *todo.Todo) (string, error)
}
