package ports

import (
	"context"
	"errors"
)

// ErrDegraded is wrapped by a HealthCheck error when the component still
// serves requests at reduced confidence, such as the todo backend while its
// circuit breaker lets trial requests through.
var ErrDegraded = errors.New("degraded")

// HealthChecker is implemented by any component that can report its health.
// The downstream todo backend client is the main implementation.
type HealthChecker interface {
	// Name returns a human-readable identifier for this component
	// (e.g., "todo-backend").
	Name() string

	// HealthCheck returns nil if healthy, an error wrapping ErrDegraded if
	// the component still serves requests, or any other error if it does
	// not. Implementations should respect context cancellation.
	HealthCheck(ctx context.Context) error
}

// HealthState classifies one component in a readiness report.
type HealthState string

// Component health states.
const (
	HealthUp       HealthState = "up"
	HealthDegraded HealthState = "degraded"
	HealthDown     HealthState = "down"
)

// ComponentHealth is one component's entry in a readiness report.
type ComponentHealth struct {
	Name   string
	State  HealthState
	Detail string
}

// HealthRegistry manages registration and execution of health checkers.
// Used by the readiness endpoint handler to determine service readiness.
type HealthRegistry interface {
	// Register adds a HealthChecker to the registry.
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns one entry per
	// component name, sorted by name.
	CheckAll(ctx context.Context) []ComponentHealth
}
