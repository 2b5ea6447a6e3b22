package acl

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// healthName identifies the backend in the readiness report.
const healthName = "todo-backend"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *TodoClient) Name() string {
	return healthName
}

// HealthCheck reports the backend's availability from the circuit breaker
// state; no network call is made. A half-open breaker still lets trial
// list and lookup calls through, so it is reported as degraded.
func (c *TodoClient) HealthCheck(_ context.Context) error {
	state := c.req.CircuitBreakerState()
	switch state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: %w (circuit breaker half-open)", healthName, ports.ErrDegraded)
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open, calls to %s rejected)", healthName, c.CollectionURL())
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", healthName, state)
	}
}
