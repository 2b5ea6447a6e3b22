// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/todo-list-service/internal/app/fanout"
	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// defaultMaxConcurrency bounds GetTodosByIDs when no option overrides it.
const defaultMaxConcurrency = 4

// Operation names recorded in logs and the todo.operation.total metric.
const (
	opList = "list"
	opGet  = "get"
	opAdd  = "add"
)

// TodoService implements ports.TodoService on top of the TodoClient port.
// It adds structured logging, operation metrics and the multi-id fan-out;
// every request it makes is a single call to the client.
type TodoService struct {
	client         ports.TodoClient
	logger         *slog.Logger
	metrics        *telemetry.Metrics
	maxConcurrency int
}

// TodoServiceOption configures optional TodoService behavior.
type TodoServiceOption func(*TodoService)

// WithMaxConcurrency bounds how many fetches GetTodosByIDs runs at once.
// Values below 1 are ignored.
func WithMaxConcurrency(n int) TodoServiceOption {
	return func(s *TodoService) {
		if n >= 1 {
			s.maxConcurrency = n
		}
	}
}

// WithMetrics records every client operation on m.TodoOperationTotal.
func WithMetrics(m *telemetry.Metrics) TodoServiceOption {
	return func(s *TodoService) {
		s.metrics = m
	}
}

// NewTodoService creates a TodoService. A nil logger is replaced by one that
// discards everything.
func NewTodoService(client ports.TodoClient, logger *slog.Logger, opts ...TodoServiceOption) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &TodoService{
		client:         client,
		logger:         logger,
		maxConcurrency: defaultMaxConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetTodos lists todos, restricted to category when it is non-empty. With no
// category the backend receives the bare collection URL.
func (s *TodoService) GetTodos(ctx context.Context, category string) ([]todo.Todo, error) {
	return s.ListTodos(ctx, todo.Filter{}.WithCategory(category))
}

// ListTodos lists todos matching filter.
func (s *TodoService) ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	s.logger.InfoContext(ctx, "listing todos", slog.String("filter", filter.Encode()))

	todos, err := s.client.ListTodos(ctx, filter)
	s.record(ctx, opList, !filter.IsZero(), err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "ListTodos"),
			slog.String("filter", filter.Encode()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return todos, nil
}

// GetTodoByID returns the todo with the given id.
func (s *TodoService) GetTodoByID(ctx context.Context, id string) (*todo.Todo, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"id": "is required"}}
	}

	s.logger.InfoContext(ctx, "fetching todo", slog.String("todo_id", id))

	t, err := s.client.GetTodo(ctx, id)
	s.record(ctx, opGet, false, err)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, domain.ErrNotFound) {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "failed to fetch todo",
			slog.String("operation", "GetTodoByID"),
			slog.String("todo_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return t, nil
}

// FilterByCategory returns filter with its category replaced by category, or
// removed when category is empty. Other parameters keep their order.
func (s *TodoService) FilterByCategory(filter todo.Filter, category string) todo.Filter {
	return filter.WithCategory(category)
}

// AddNewTodo creates t on the backend and returns the id it was assigned.
func (s *TodoService) AddNewTodo(ctx context.Context, t *todo.Todo) (string, error) {
	if t == nil {
		return "", fmt.Errorf("todo is required: %w", domain.ErrValidation)
	}

	s.logger.InfoContext(ctx, "adding todo",
		slog.String("owner", t.Owner),
		slog.String("category", t.Category),
	)

	id, err := s.client.AddTodo(ctx, t)
	s.record(ctx, opAdd, false, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to add todo",
			slog.String("operation", "AddNewTodo"),
			slog.Any("error", err),
		)
		return "", err
	}

	s.logger.InfoContext(ctx, "todo added", slog.String("todo_id", id))
	return id, nil
}

// GetTodosByIDs fetches each id with at most maxConcurrency requests in
// flight. One failure does not affect the others.
func (s *TodoService) GetTodosByIDs(ctx context.Context, ids []string) []ports.TodoResult {
	s.logger.InfoContext(ctx, "fetching todos by id", slog.Int("count", len(ids)))

	outcomes := fanout.Run(ctx, s.maxConcurrency, ids, s.GetTodoByID)

	results := make([]ports.TodoResult, len(ids))
	failed := 0
	for i, o := range outcomes {
		results[i] = ports.TodoResult{ID: ids[i], Todo: o.Value, Err: o.Err}
		if o.Err != nil {
			failed++
		}
	}

	if failed > 0 {
		s.logger.WarnContext(ctx, "some todos could not be fetched",
			slog.String("operation", "GetTodosByIDs"),
			slog.Int("failed", failed),
			slog.Int("total", len(ids)),
		)
	}
	return results
}

// record counts one client operation. Safe to call with nil metrics.
func (s *TodoService) record(ctx context.Context, op string, filtered bool, err error) {
	if s.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	case errors.Is(err, domain.ErrValidation):
		result = "invalid"
	case err != nil:
		result = "error"
	}

	s.metrics.TodoOperationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperation.String(op),
		telemetry.AttrFiltered.Bool(filtered),
		telemetry.AttrResult.String(result),
	))
}
