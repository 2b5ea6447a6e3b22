package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// MockTodoService is a testify mock of ports.TodoService.
type MockTodoService struct {
	mock.Mock
}

type MockTodoService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTodoService) EXPECT() *MockTodoService_Expecter {
	return &MockTodoService_Expecter{mock: &_m.Mock}
}

// AddNewTodo provides a mock function with the given fields: ctx, t
func (_m *MockTodoService) AddNewTodo(ctx context.Context, t *todo.Todo) (string, error) {
	ret := _m.Called(ctx, t)
	if len(ret) == 0 {
		panic("no return value specified for AddNewTodo")
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

// MockTodoService_AddNewTodo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AddNewTodo'
type MockTodoService_AddNewTodo_Call struct {
	*mock.Call
}

// AddNewTodo is a helper method to define mock.On call
func (_e *MockTodoService_Expecter) AddNewTodo(ctx interface{}, t interface{}) *MockTodoService_AddNewTodo_Call {
	return &MockTodoService_AddNewTodo_Call{Call: _e.mock.On("AddNewTodo", ctx, t)}
}

func (_c *MockTodoService_AddNewTodo_Call) Run(run func(ctx context.Context, t *todo.Todo)) *MockTodoService_AddNewTodo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*todo.Todo))
	})
	return _c
}

func (_c *MockTodoService_AddNewTodo_Call) Return(_a0 string, _a1 error) *MockTodoService_AddNewTodo_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTodoService_AddNewTodo_Call) RunAndReturn(run func(context.Context, *todo.Todo) (string, error)) *MockTodoService_AddNewTodo_Call {
	_c.Call.Return(run)
	return _c
}

// FilterByCategory provides a mock function with the given fields: filter, category
func (_m *MockTodoService) FilterByCategory(filter todo.Filter, category string) todo.Filter {
	ret := _m.Called(filter, category)
	if len(ret) == 0 {
		panic("no return value specified for FilterByCategory")
	}
	var r0 todo.Filter
	if rf, ok := ret.Get(0).(func(todo.Filter, string) todo.Filter); ok {
		r0 = rf(filter, category)
	} else {
		r0 = ret.Get(0).(todo.Filter)
	}
	return r0
}

// MockTodoService_FilterByCategory_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FilterByCategory'
type MockTodoService_FilterByCategory_Call struct {
	*mock.Call
}

// FilterByCategory is a helper method to define mock.On call
func (_e *MockTodoService_Expecter) FilterByCategory(filter interface{}, category interface{}) *MockTodoService_FilterByCategory_Call {
	return &MockTodoService_FilterByCategory_Call{Call: _e.mock.On("FilterByCategory", filter, category)}
}

func (_c *MockTodoService_FilterByCategory_Call) Run(run func(filter todo.Filter, category string)) *MockTodoService_FilterByCategory_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(todo.Filter), args[1].(string))
	})
	return _c
}

func (_c *MockTodoService_FilterByCategory_Call) Return(_a0 todo.Filter) *MockTodoService_FilterByCategory_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTodoService_FilterByCategory_Call) RunAndReturn(run func(todo.Filter, string) todo.Filter) *MockTodoService_FilterByCategory_Call {
	_c.Call.Return(run)
	return _c
}

// GetTodoByID provides a mock function with the given fields: ctx, id
func (_m *MockTodoService) GetTodoByID(ctx context.Context, id string) (*todo.Todo, error) {
	ret := _m.Called(ctx, id)
	if len(ret) == 0 {
		panic("no return value specified for GetTodoByID")
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

// MockTodoService_GetTodoByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetTodoByID'
type MockTodoService_GetTodoByID_Call struct {
	*mock.Call
}

// GetTodoByID is a helper method to define mock.On call
func (_e *MockTodoService_Expecter) GetTodoByID(ctx interface{}, id interface{}) *MockTodoService_GetTodoByID_Call {
	return &MockTodoService_GetTodoByID_Call{Call: _e.mock.On("GetTodoByID", ctx, id)}
}

func (_c *MockTodoService_GetTodoByID_Call) Run(run func(ctx context.Context, id string)) *MockTodoService_GetTodoByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockTodoService_GetTodoByID_Call) Return(_a0 *todo.Todo, _a1 error) *MockTodoService_GetTodoByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTodoService_GetTodoByID_Call) RunAndReturn(run func(context.Context, string) (*todo.Todo, error)) *MockTodoService_GetTodoByID_Call {
	_c.Call.Return(run)
	return _c
}

// GetTodos provides a mock function with the given fields: ctx, category
func (_m *MockTodoService) GetTodos(ctx context.Context, category string) ([]todo.Todo, error) {
	ret := _m.Called(ctx, category)
	if len(ret) == 0 {
		panic("no return value specified for GetTodos")
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]todo.Todo, error)); ok {
		return rf(ctx, category)
	}
	var r0 []todo.Todo
	if rf, ok := ret.Get(0).(func(context.Context, string) []todo.Todo); ok {
		r0 = rf(ctx, category)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]todo.Todo)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, category)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockTodoService_GetTodos_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetTodos'
type MockTodoService_GetTodos_Call struct {
	*mock.Call
}

// GetTodos is a helper method to define mock.On call
func (_e *MockTodoService_Expecter) GetTodos(ctx interface{}, category interface{}) *MockTodoService_GetTodos_Call {
	return &MockTodoService_GetTodos_Call{Call: _e.mock.On("GetTodos", ctx, category)}
}

func (_c *MockTodoService_GetTodos_Call) Run(run func(ctx context.Context, category string)) *MockTodoService_GetTodos_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockTodoService_GetTodos_Call) Return(_a0 []todo.Todo, _a1 error) *MockTodoService_GetTodos_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTodoService_GetTodos_Call) RunAndReturn(run func(context.Context, string) ([]todo.Todo, error)) *MockTodoService_GetTodos_Call {
	_c.Call.Return(run)
	return _c
}

// GetTodosByIDs provides a mock function with the given fields: ctx, ids
func (_m *MockTodoService) GetTodosByIDs(ctx context.Context, ids []string) []ports.TodoResult {
	ret := _m.Called(ctx, ids)
	if len(ret) == 0 {
		panic("no return value specified for GetTodosByIDs")
	}
	var r0 []ports.TodoResult
	if rf, ok := ret.Get(0).(func(context.Context, []string) []ports.TodoResult); ok {
		r0 = rf(ctx, ids)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]ports.TodoResult)
	}
	return r0
}

// MockTodoService_GetTodosByIDs_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetTodosByIDs'
type MockTodoService_GetTodosByIDs_Call struct {
	*mock.Call
}

// GetTodosByIDs is a helper method to define mock.On call
func (_e *MockTodoService_Expecter) GetTodosByIDs(ctx interface{}, ids interface{}) *MockTodoService_GetTodosByIDs_Call {
	return &MockTodoService_GetTodosByIDs_Call{Call: _e.mock.On("GetTodosByIDs", ctx, ids)}
}

func (_c *MockTodoService_GetTodosByIDs_Call) Run(run func(ctx context.Context, ids []string)) *MockTodoService_GetTodosByIDs_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]string))
	})
	return _c
}

func (_c *MockTodoService_GetTodosByIDs_Call) Return(_a0 []ports.TodoResult) *MockTodoService_GetTodosByIDs_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTodoService_GetTodosByIDs_Call) RunAndReturn(run func(context.Context, []string) []ports.TodoResult) *MockTodoService_GetTodosByIDs_Call {
	_c.Call.Return(run)
	return _c
}

// ListTodos provides a mock function with the given fields: ctx, filter
func (_m *MockTodoService) ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
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

// MockTodoService_ListTodos_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListTodos'
type MockTodoService_ListTodos_Call struct {
	*mock.Call
}

// ListTodos is a helper method to define mock.On call
func (_e *MockTodoService_Expecter) ListTodos(ctx interface{}, filter interface{}) *MockTodoService_ListTodos_Call {
	return &MockTodoService_ListTodos_Call{Call: _e.mock.On("ListTodos", ctx, filter)}
}

func (_c *MockTodoService_ListTodos_Call) Run(run func(ctx context.Context, filter todo.Filter)) *MockTodoService_ListTodos_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(todo.Filter))
	})
	return _c
}

func (_c *MockTodoService_ListTodos_Call) Return(_a0 []todo.Todo, _a1 error) *MockTodoService_ListTodos_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTodoService_ListTodos_Call) RunAndReturn(run func(context.Context, todo.Filter) ([]todo.Todo, error)) *MockTodoService_ListTodos_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTodoService creates a new instance of MockTodoService. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTodoService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTodoService {
	m := &MockTodoService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
