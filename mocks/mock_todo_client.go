package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
)

// MockTodoClient is a testify mock of ports.TodoClient.
type MockTodoClient struct {
	mock.Mock
}

type MockTodoClient_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTodoClient) EXPECT() *MockTodoClient_Expecter {
	return &MockTodoClient_Expecter{mock: &_m.Mock}
}

// AddTodo provides a mock function with the given fields: ctx, t
func (_m *MockTodoClient) AddTodo(ctx context.Context, t *todo.Todo) (string, error) {
	ret := _m.Called(ctx, t)
	if len(ret) == 0 {
		panic("no return value specified for AddTodo")
	}
	if rf, ok := ret.Get(0).(func(context.Context, *todo.Todo) (string, error)); ok {
		return rf(ctx, t)
	}
	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, *todo.Todo) string); ok {
		r0 = rf(ctx, t)
	} else {
		r0 = ret.Get(0).(string)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *todo.Todo) error); ok {
		r1 = rf(ctx, t)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockTodoClient_AddTodo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AddTodo'
type MockTodoClient_AddTodo_Call struct {
	*mock.Call
}

// AddTodo is a helper method to define mock.On call
func (_e *MockTodoClient_Expecter) AddTodo(ctx interface{}, t interface{}) *MockTodoClient_AddTodo_Call {
	return &MockTodoClient_AddTodo_Call{Call: _e.mock.On("AddTodo", ctx, t)}
}

func (_c *MockTodoClient_AddTodo_Call) Run(run func(ctx context.Context, t *todo.Todo)) *MockTodoClient_AddTodo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*todo.Todo))
	})
	return _c
}

func (_c *MockTodoClient_AddTodo_Call) Return(_a0 string, _a1 error) *MockTodoClient_AddTodo_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTodoClient_AddTodo_Call) RunAndReturn(run func(context.Context, *todo.Todo) (string, error)) *MockTodoClient_AddTodo_Call {
	_c.Call.Return(run)
	return _c
}

// GetTodo provides a mock function with the given fields: ctx, id
func (_m *MockTodoClient) GetTodo(ctx context.Context, id string) (*todo.Todo, error) {
	ret := _m.Called(ctx, id)
	if len(ret) == 0 {
		panic("no return value specified for GetTodo")
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) (*todo.Todo, error)); ok {
		return rf(ctx, id)
	}
	var r0 *todo.Todo
	if rf, ok := ret.Get(0).(func(context.Context, string) *todo.Todo); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*todo.Todo)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockTodoClient_GetTodo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetTodo'
type MockTodoClient_GetTodo_Call struct {
	*mock.Call
}

// GetTodo is a helper method to define mock.On call
func (_e *MockTodoClient_Expecter) GetTodo(ctx interface{}, id interface{}) *MockTodoClient_GetTodo_Call {
	return &MockTodoClient_GetTodo_Call{Call: _e.mock.On("GetTodo", ctx, id)}
}

func (_c *MockTodoClient_GetTodo_Call) Run(run func(ctx context.Context, id string)) *MockTodoClient_GetTodo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockTodoClient_GetTodo_Call) Return(_a0 *todo.Todo, _a1 error) *MockTodoClient_GetTodo_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTodoClient_GetTodo_Call) RunAndReturn(run func(context.Context, string) (*todo.Todo, error)) *MockTodoClient_GetTodo_Call {
	_c.Call.Return(run)
	return _c
}

// ListTodos provides a mock function with the given fields: ctx, filter
func (_m *MockTodoClient) ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	ret := _m.Called(ctx, filter)
	if len(ret) == 0 {
		panic("no return value specified for ListTodos")
	}
	if rf, ok := ret.Get(0).(func(context.Context, todo.Filter) ([]todo.Todo, error)); ok {
		return rf(ctx, filter)
	}
	var r0 []todo.Todo
	if rf, ok := ret.Get(0).(func(context.Context, todo.Filter) []todo.Todo); ok {
		r0 = rf(ctx, filter)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]todo.Todo)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, todo.Filter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockTodoClient_ListTodos_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListTodos'
type MockTodoClient_ListTodos_Call struct {
	*mock.Call
}

// ListTodos is a helper method to define mock.On call
func (_e *MockTodoClient_Expecter) ListTodos(ctx interface{}, filter interface{}) *MockTodoClient_ListTodos_Call {
	return &MockTodoClient_ListTodos_Call{Call: _e.mock.On("ListTodos", ctx, filter)}
}

func (_c *MockTodoClient_ListTodos_Call) Run(run func(ctx context.Context, filter todo.Filter)) *MockTodoClient_ListTodos_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(todo.Filter))
	})
	return _c
}

func (_c *MockTodoClient_ListTodos_Call) Return(_a0 []todo.Todo, _a1 error) *MockTodoClient_ListTodos_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTodoClient_ListTodos_Call) RunAndReturn(run func(context.Context, todo.Filter) ([]todo.Todo, error)) *MockTodoClient_ListTodos_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTodoClient creates a new instance of MockTodoClient. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTodoClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTodoClient {
	m := &MockTodoClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
