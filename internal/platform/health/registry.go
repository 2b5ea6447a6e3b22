// Package health keeps the components consulted by GET /health/ready. The
// todo backend client registers itself here at startup.
package health

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe [ports.HealthRegistry]. A component registered
// twice under the same name reports the last registration.
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{checkers: make(map[string]ports.HealthChecker)}
}

// Register adds checker under its Name. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[checker.Name()] = checker
}

// CheckAll runs each check outside the lock and classifies the result.
func (r *Registry) CheckAll(ctx context.Context) []ports.ComponentHealth {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, 0, len(r.checkers))
	for _, c := range r.checkers {
		checkers = append(checkers, c)
	}
	r.mu.RUnlock()

	results := make([]ports.ComponentHealth, 0, len(checkers))
	for _, c := range checkers {
		results = append(results, classify(c.Name(), c.HealthCheck(ctx)))
	}
	slices.SortFunc(results, func(a, b ports.ComponentHealth) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return results
}

// classify turns a HealthCheck result into a report entry.
func classify(name string, err error) ports.ComponentHealth {
	switch {
	case err == nil:
		return ports.ComponentHealth{Name: name, State: ports.HealthUp}
	case errors.Is(err, ports.ErrDegraded):
		return ports.ComponentHealth{Name: name, State: ports.HealthDegraded, Detail: err.Error()}
	default:
		return ports.ComponentHealth{Name: name, State: ports.HealthDown, Detail: err.Error()}
	}
}
