package cli

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/cli/browse"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
)

func newBrowseCommand(r *runner) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse todos interactively and filter them by category",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc, err := r.service(ctx)
			if err != nil {
				return err
			}
			return browse.Run(ctx, svc, svc.FilterByCategory(todo.Filter{}, category))
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "start filtered to this category")
	return cmd
}
