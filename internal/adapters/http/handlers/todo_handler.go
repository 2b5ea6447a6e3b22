package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// TodoHandler handles the /api/todos routes by delegating to the todo
// service.
type TodoHandler struct {
	service ports.TodoService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// ListTodos handles GET /api/todos?category=&status=.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	filter, err := dto.ParseListQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	todos, err := h.service.ListTodos(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoListResponse(todos))
}

// GetTodo handles GET /api/todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.GetTodoByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(t))
}

// GetTodosBatch handles GET /api/todos/batch?id=a&id=b. Partial failures are
// reported per id in a 200 response.
func (h *TodoHandler) GetTodosBatch(w http.ResponseWriter, r *http.Request) {
	ids, err := dto.ParseBatchIDs(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	results := h.service.GetTodosByIDs(r.Context(), ids)
	writeJSON(w, r, http.StatusOK, dto.ToBatchTodosResponse(results))
}

// AddNewTodo handles POST /api/todos/new.
func (h *TodoHandler) AddNewTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.NewTodoRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	id, err := h.service.AddNewTodo(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/todos/"+url.PathEscape(id))
	writeJSON(w, r, http.StatusCreated, dto.CreatedResponse{ID: id})
}
