package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
)

func newAddCommand(r *runner) *cobra.Command {
	var t todo.Todo

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Create a todo and print its id",
		Example: `  todos add --owner Blanche --category homework --body "Read chapter 4"`,
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var missing []string
			for _, name := range []string{"owner", "body", "category"} {
				if !cmd.Flags().Changed(name) {
					missing = append(missing, "--"+name)
				}
			}
			if len(missing) > 0 {
				return &usageError{err: fmt.Errorf("missing required flags: %s", strings.Join(missing, ", "))}
			}

			ctx := cmd.Context()
			svc, err := r.service(ctx)
			if err != nil {
				return err
			}

			id, err := svc.AddNewTodo(ctx, &t)
			if err != nil {
				return fmt.Errorf("adding todo: %w", err)
			}

			if r.opts.JSON {
				return writeJSON(r.stdout, map[string]string{"id": id})
			}
			printSuccess(r.stdout, "added "+id)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&t.Owner, "owner", "", "todo owner (required)")
	f.StringVar(&t.Body, "body", "", "todo text (required)")
	f.StringVar(&t.Category, "category", "", "todo category (required)")
	f.BoolVar(&t.Status, "status", false, "create the todo as complete")
	return cmd
}
