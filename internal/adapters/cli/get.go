package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
)

type getResultJSON struct {
	ID    string    `json:"id"`
	Todo  *todoJSON `json:"todo,omitempty"`
	Error string    `json:"error,omitempty"`
}

func newGetCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Fetch todos by id",
		Long:  "Fetch one or more todos by id. Several ids are fetched concurrently; each id succeeds or fails on its own.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &usageError{err: errors.New("get requires at least one id")}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := r.service(ctx)
			if err != nil {
				return err
			}

			results := svc.GetTodosByIDs(ctx, args)

			var (
				found []todo.Todo
				errs  []error
				out   = make([]getResultJSON, 0, len(results))
			)
			for _, res := range results {
				if res.Err != nil {
					errs = append(errs, fmt.Errorf("todo %s: %w", res.ID, res.Err))
					out = append(out, getResultJSON{ID: res.ID, Error: res.Err.Error()})
					continue
				}
				found = append(found, *res.Todo)
				tj := toJSON(res.Todo)
				out = append(out, getResultJSON{ID: res.ID, Todo: &tj})
			}

			if r.opts.JSON {
				if err := writeJSON(r.stdout, out); err != nil {
					return err
				}
			} else if len(found) > 0 {
				if err := writeTodoTable(r.stdout, found); err != nil {
					return err
				}
			}

			return errors.Join(errs...)
		},
	}
}
