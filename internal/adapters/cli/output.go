package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// todoJSON is the JSON shape printed by --json, matching the backend document.
type todoJSON struct {
	ID       string `json:"_id"`
	Owner    string `json:"owner"`
	Status   bool   `json:"status"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

func toJSON(t *todo.Todo) todoJSON {
	return todoJSON{ID: t.ID, Owner: t.Owner, Status: t.Status, Body: t.Body, Category: t.Category}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTodoTable(w io.Writer, todos []todo.Todo) error {
	if len(todos) == 0 {
		_, err := fmt.Fprintln(w, "no todos")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "STATUS", "CATEGORY", "OWNER", "BODY").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for i := range todos {
		td := &todos[i]
		status := td.StatusLabel()
		if td.Status {
			status = doneStyle.Render(status)
		}
		t.Row(td.ID, status, td.Category, td.Owner, td.Body)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("error: "+err.Error()))
}

func printSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render(msg))
}
