package browse

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
)

// todoItem adapts a todo to bubbles/list.
type todoItem struct {
	todo todo.Todo
}

func (i todoItem) Title() string {
	box := boxUnchecked
	if i.todo.Status {
		box = boxChecked
	}
	return fmt.Sprintf("%s %s", box, i.todo.Body)
}

func (i todoItem) Description() string {
	return fmt.Sprintf("%s · %s", i.todo.Category, i.todo.Owner)
}

func (i todoItem) FilterValue() string { return i.todo.Body }

func toItems(todos []todo.Todo) []list.Item {
	items := make([]list.Item, len(todos))
	for i := range todos {
		items[i] = todoItem{todo: todos[i]}
	}
	return items
}

// counts returns how many todos are complete and incomplete.
func counts(todos []todo.Todo) (done, pending int) {
	for i := range todos {
		if todos[i].Status {
			done++
		} else {
			pending++
		}
	}
	return done, pending
}
