// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// TodoResponse represents a single todo in HTTP responses. The field names
// match the backend documents so browser clients see one shape.
type TodoResponse struct {
	ID       string `json:"_id"`
	Owner    string `json:"owner"`
	Status   bool   `json:"status"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

// ToTodoResponse converts a domain Todo to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:       t.ID,
		Owner:    t.Owner,
		Status:   t.Status,
		Body:     t.Body,
		Category: t.Category,
	}
}

// ToTodoListResponse converts domain todos to the JSON array returned by the
// list endpoint. The result is never nil so it encodes as [] rather than null.
func ToTodoListResponse(todos []todo.Todo) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return items
}

// CreatedResponse is the body of a successful create.
type CreatedResponse struct {
	ID string `json:"id"`
}

// BatchTodosResponse represents the result of fetching several todos by id.
// It includes both the todos found and per-id errors.
type BatchTodosResponse struct {
	Todos     []TodoResponse   `json:"todos"`
	Errors    []BatchErrorItem `json:"errors"`
	Total     int              `json:"total"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
}

// BatchErrorItem represents one id that could not be fetched.
type BatchErrorItem struct {
	ID      string `json:"id"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ToBatchTodosResponse converts per-id results to an HTTP response DTO.
// Todos and Errors keep the order of the requested ids.
func ToBatchTodosResponse(results []ports.TodoResult) BatchTodosResponse {
	resp := BatchTodosResponse{
		Todos:  []TodoResponse{},
		Errors: []BatchErrorItem{},
		Total:  len(results),
	}

	for _, r := range results {
		if r.Err != nil {
			resp.Errors = append(resp.Errors, BatchErrorItem{
				ID:      r.ID,
				Status:  problemFor(r.Err).status,
				Message: r.Err.Error(),
			})
			continue
		}
		resp.Todos = append(resp.Todos, ToTodoResponse(r.Todo))
	}

	resp.Succeeded = len(resp.Todos)
	resp.Failed = len(resp.Errors)
	return resp
}
