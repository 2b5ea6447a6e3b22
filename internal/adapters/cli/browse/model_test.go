package browse

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-list-service/mocks"
)

func sampleTodos() []todo.Todo {
	return []todo.Todo{
		{ID: "58895985099029320e5242a0", Owner: "Blanche", Body: "Read chapter 4", Category: "homework"},
		{ID: "58895985099029320e5242a1", Owner: "Pat", Body: "Buy milk", Category: "groceries", Status: true},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return got, cmd
}

// drain executes cmd and feeds the resulting messages back into the model.
// Spinner ticks are skipped so the loop terminates.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	pending := []tea.Cmd{cmd}
	for len(pending) > 0 {
		c := pending[0]
		pending = pending[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			pending = append(pending, msg...)
		case todosLoadedMsg, todoAddedMsg, todoOpenedMsg:
			var next tea.Cmd
			m, next = update(t, m, msg)
			pending = append(pending, next)
		}
	}
	return m
}

func withEncoded(want string) any {
	return mock.MatchedBy(func(f todo.Filter) bool { return f.Encode() == want })
}

func expectFilterByCategory(svc *mocks.MockTodoService) {
	svc.EXPECT().FilterByCategory(mock.Anything, mock.Anything).
		RunAndReturn(func(f todo.Filter, c string) todo.Filter { return f.WithCategory(c) })
}

func loaded(t *testing.T, svc *mocks.MockTodoService, filter todo.Filter) Model {
	t.Helper()
	m := New(context.Background(), svc, filter)
	require.True(t, m.loading)
	return drain(t, m, m.Init())
}

func TestModel_InitLoadsTodos(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTodoService(t)
	svc.EXPECT().ListTodos(mock.Anything, withEncoded("")).Return(sampleTodos(), nil).Once()

	m := loaded(t, svc, todo.Filter{})

	assert.False(t, m.loading)
	assert.Len(t, m.list.Items(), 2)
	view := m.View()
	assert.Contains(t, view, "all todos")
	assert.Contains(t, view, "Read chapter 4")
}

func TestModel_LoadError(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTodoService(t)
	svc.EXPECT().ListTodos(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	m := loaded(t, svc, todo.Filter{})

	require.Error(t, m.err)
	assert.Contains(t, m.View(), "error: connection refused")
}

func TestModel_CategoryFilter(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTodoService(t)
	expectFilterByCategory(svc)
	svc.EXPECT().ListTodos(mock.Anything, withEncoded("")).Return(sampleTodos(), nil).Once()
	svc.EXPECT().ListTodos(mock.Anything, withEncoded("category=groceries&")).Return(sampleTodos()[1:], nil).Once()

	m := loaded(t, svc, todo.Filter{})

	m, _ = update(t, m, runes("c"))
	require.Equal(t, modeCategory, m.mode)

	m, _ = update(t, m, runes("groceries"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeList, m.mode)
	assert.True(t, m.loading)

	m = drain(t, m, cmd)
	assert.Equal(t, "groceries", m.Filter().Category())
	assert.Len(t, m.list.Items(), 1)
	assert.Contains(t, m.View(), "?category=groceries&")
}

func TestModel_CategoryEscKeepsFilter(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTodoService(t)
	svc.EXPECT().ListTodos(mock.Anything, mock.Anything).Return(sampleTodos(), nil).Once()

	m := loaded(t, svc, todo.Filter{}.WithCategory("homework"))

	m, _ = update(t, m, runes("c"))
	assert.Equal(t, "homework", m.category.Value())

	m, _ = update(t, m, runes("x"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "homework", m.Filter().Category())
}

func TestModel_ClearCategory(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTodoService(t)
	expectFilterByCategory(svc)
	svc.EXPECT().ListTodos(mock.Anything, withEncoded("category=homework&")).Return(sampleTodos()[:1], nil).Once()
	svc.EXPECT().ListTodos(mock.Anything, withEncoded("")).Return(sampleTodos(), nil).Once()

	m := loaded(t, svc, todo.Filter{}.WithCategory("homework"))

	m, cmd := update(t, m, runes("x"))
	m = drain(t, m, cmd)

	assert.True(t, m.Filter().IsZero())
	assert.Len(t, m.list.Items(), 2)
}

func TestModel_StatusCycleKeepsCategoryLast(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTodoService(t)
	expectFilterByCategory(svc)
	svc.EXPECT().ListTodos(mock.Anything, mock.Anything).Return(sampleTodos(), nil)

	m := loaded(t, svc, todo.Filter{}.WithCategory("v"))

	want := []string{
		"status=false&category=v&",
		"status=true&category=v&",
		"category=v&",
	}
	for _, w := range want {
		var cmd tea.Cmd
		m, cmd = update(t, m, runes("s"))
		m = drain(t, m, cmd)
		assert.Equal(t, w, m.Filter().Encode())
	}
}

func TestModel_StaleResultsIgnored(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTodoService(t)
	svc.EXPECT().ListTodos(mock.Anything, mock.Anything).Return(sampleTodos(), nil).Once()

	m := loaded(t, svc, todo.Filter{})

	m, _ = update(t, m, todosLoadedMsg{filter: todo.Filter{}.WithCategory("old")})
	assert.Len(t, m.list.Items(), 2)
	assert.Len(t, m.todos, 2)
}

func TestModel_AddTodo(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTodoService(t)
	svc.EXPECT().ListTodos(mock.Anything, mock.Anything).Return(sampleTodos(), nil).Twice()
	svc.EXPECT().AddNewTodo(mock.Anything, &todo.Todo{Owner: "Blanche", Body: "Water plants", Category: "homework"}).
		Return("58895985099029320e5242ff", nil).Once()

	m := loaded(t, svc, todo.Filter{}.WithCategory("homework"))

	m, _ = update(t, m, runes("a"))
	require.Equal(t, modeAdd, m.mode)
	assert.Equal(t, "homework", m.form[fieldCategory].Value())

	m, _ = update(t, m, runes("Blanche"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, runes("Water plants"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, fieldCategory, m.focus)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeList, m.mode)

	m = drain(t, m, cmd)
	assert.Equal(t, "added 58895985099029320e5242ff", m.notice)
	assert.Contains(t, m.View(), "added 58895985099029320e5242ff")
}

func TestModel_AddTodoError(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTodoService(t)
	svc.EXPECT().ListTodos(mock.Anything, mock.Anything).Return(nil, nil).Once()
	svc.EXPECT().AddNewTodo(mock.Anything, mock.Anything).Return("", errors.New("rejected")).Once()

	m := loaded(t, svc, todo.Filter{})

	m, _ = update(t, m, runes("a"))
	m.focus = fieldCategory
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = drain(t, m, cmd)

	assert.False(t, m.loading)
	assert.EqualError(t, m.err, "rejected")
	assert.Empty(t, m.notice)
}

func TestModel_OpenDetail(t *testing.T) {
	t.Parallel()

	todos := sampleTodos()
	svc := mocks.NewMockTodoService(t)
	svc.EXPECT().ListTodos(mock.Anything, mock.Anything).Return(todos, nil).Once()
	svc.EXPECT().GetTodoByID(mock.Anything, todos[0].ID).Return(&todos[0], nil).Once()

	m := loaded(t, svc, todo.Filter{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = drain(t, m, cmd)

	require.Equal(t, modeDetail, m.mode)
	view := m.View()
	assert.Contains(t, view, todos[0].ID)
	assert.Contains(t, view, "incomplete")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeList, m.mode)
	assert.Nil(t, m.detail)
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTodoService(t)
	m := New(context.Background(), svc, todo.Filter{})

	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := update(t, m, msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_WindowResize(t *testing.T) {
	t.Parallel()

	m := New(context.Background(), mocks.NewMockTodoService(t), todo.Filter{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 116, m.list.Width())
	assert.Equal(t, 40-chromeHeight, m.list.Height())
}
