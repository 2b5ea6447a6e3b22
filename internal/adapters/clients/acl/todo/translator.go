package todo

import (
	domtodo "github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
)

// ToDomainTodo converts a backend TodoDTO to a domain Todo.
func ToDomainTodo(dto *TodoDTO) domtodo.Todo {
	return domtodo.Todo{
		ID:       dto.ID.String(),
		Owner:    dto.Owner,
		Status:   dto.Status,
		Body:     dto.Body,
		Category: dto.Category,
	}
}

// ToDomainTodoList converts a backend list payload to domain todos. A nil
// payload yields an empty, non-nil slice.
func ToDomainTodoList(dtos []TodoDTO) []domtodo.Todo {
	todos := make([]domtodo.Todo, len(dtos))
	for i := range dtos {
		todos[i] = ToDomainTodo(&dtos[i])
	}
	return todos
}

// ToNewTodoRequest converts a domain Todo to the create request body. The ID
// is assigned by the backend and never sent.
func ToNewTodoRequest(t *domtodo.Todo) NewTodoRequestDTO {
	return NewTodoRequestDTO{
		Owner:    t.Owner,
		Status:   t.Status,
		Body:     t.Body,
		Category: t.Category,
	}
}
