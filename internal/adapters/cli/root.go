// Package cli provides the todos command line client: cobra commands that
// drive the todo service against a configured backend, plus the interactive
// browser in the browse subpackage.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// Exit codes returned by Execute.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitUsage       = 2
	ExitNotFound    = 4
	ExitUnavailable = 5
)

const defaultProfile = "local"

// GlobalOptions are the persistent flags shared by every command.
type GlobalOptions struct {
	Profile   string
	ConfigDir string
	BaseURL   string
	JSON      bool
	Verbose   bool
}

// ServiceBuilder creates the todo service for a command run. It is called
// lazily so "--help" works without a reachable config.
type ServiceBuilder func(ctx context.Context, opts GlobalOptions, stderr io.Writer) (ports.TodoService, error)

type runner struct {
	build  ServiceBuilder
	opts   GlobalOptions
	stdout io.Writer
	stderr io.Writer
}

func (r *runner) service(ctx context.Context) (ports.TodoService, error) {
	return r.build(ctx, r.opts, r.stderr)
}

// NewRootCommand builds the todos command tree.
func NewRootCommand(build ServiceBuilder, stdout, stderr io.Writer) *cobra.Command {
	r := &runner{build: build, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "todos",
		Short:         "List, fetch and add todos on a todo backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}

	pf := root.PersistentFlags()
	pf.StringVar(&r.opts.Profile, "profile", profile, "config profile (configs/<profile>.yaml)")
	pf.StringVar(&r.opts.ConfigDir, "config-dir", "configs", "directory holding the config YAML files")
	pf.StringVar(&r.opts.BaseURL, "base-url", "", "todo backend root URL, overrides client.base_url")
	pf.BoolVar(&r.opts.JSON, "json", false, "print JSON instead of a table")
	pf.BoolVarP(&r.opts.Verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		newListCommand(r),
		newGetCommand(r),
		newAddCommand(r),
		newBrowseCommand(r),
	)
	return root
}

// Execute runs the command tree with args and returns a process exit code.
func Execute(ctx context.Context, build ServiceBuilder, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(build, stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	printError(stderr, err)
	return ExitCode(err)
}

// usageError marks flag and argument mistakes.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	var uerr *usageError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &uerr):
		return ExitUsage
	case errors.Is(err, domain.ErrValidation):
		return ExitUsage
	case errors.Is(err, domain.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, domain.ErrUnavailable):
		return ExitUnavailable
	default:
		return ExitError
	}
}
