package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
)

func newListCommand(r *runner) *cobra.Command {
	var (
		category string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos, optionally filtered by category and status",
		Example: `  todos list
  todos list --category homework
  todos list --status false --category groceries --json`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := listFilter(status)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svc, err := r.service(ctx)
			if err != nil {
				return err
			}

			filter = svc.FilterByCategory(filter, category)
			todos, err := svc.ListTodos(ctx, filter)
			if err != nil {
				return fmt.Errorf("listing todos: %w", err)
			}

			if r.opts.JSON {
				out := make([]todoJSON, len(todos))
				for i := range todos {
					out[i] = toJSON(&todos[i])
				}
				return writeJSON(r.stdout, out)
			}
			return writeTodoTable(r.stdout, todos)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only todos in this category")
	cmd.Flags().StringVarP(&status, "status", "s", "", "only complete (true) or incomplete (false) todos")
	return cmd
}

// listFilter starts the list filter from the --status flag. Category is
// applied afterwards so it ends up last in the query.
func listFilter(status string) (todo.Filter, error) {
	switch status {
	case "":
		return todo.Filter{}, nil
	case "true", "false":
		return todo.Filter{}.WithStatus(status == "true"), nil
	default:
		return todo.Filter{}, &usageError{err: fmt.Errorf("--status must be true or false, got %q", status)}
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &usageError{err: fmt.Errorf("%s takes no arguments, got %q", cmd.CommandPath(), args)}
	}
	return nil
}
