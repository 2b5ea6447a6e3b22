// Package main is the entry point for the todos command line client. It loads
// the same layered config as the server and talks to the todo backend
// directly through the todo service.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/cli"
	"github.com/jsamuelsen11/todo-list-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/todo-list-service/internal/app"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// backendServiceName labels outbound spans and the circuit breaker.
const backendServiceName = "todo-backend"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Execute(ctx, buildService, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func buildService(_ context.Context, opts cli.GlobalOptions, stderr io.Writer) (ports.TodoService, error) {
	cfg, err := config.Load(opts.Profile,
		config.WithConfigDir(opts.ConfigDir),
		config.WithBaseURL(opts.BaseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Request logs only go to the terminal with --verbose.
	level := "warn"
	if opts.Verbose {
		level = "debug"
	}
	logger := logging.New(level, "text", stderr)

	client := httpclient.New(&cfg.Client, backendServiceName, nil, logger)
	todos := acl.NewTodoClient(client, cfg.Client.TodosURL(), logger)

	return app.NewTodoService(todos, logger, app.WithMaxConcurrency(cfg.Client.MaxConcurrency)), nil
}
