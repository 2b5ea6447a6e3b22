package health_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-list-service/internal/platform/health"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
	"github.com/jsamuelsen11/todo-list-service/mocks"
)

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	results := health.New().CheckAll(context.Background())

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestCheckAll_ClassifiesTodoBackendStates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantState  ports.HealthState
		wantDetail string
	}{
		{name: "closed", err: nil, wantState: ports.HealthUp},
		{
			name:       "half-open",
			err:        fmt.Errorf("todo-backend: %w (circuit breaker half-open)", ports.ErrDegraded),
			wantState:  ports.HealthDegraded,
			wantDetail: "todo-backend: degraded (circuit breaker half-open)",
		},
		{
			name:       "open",
			err:        errors.New("todo-backend: failing (circuit breaker open)"),
			wantState:  ports.HealthDown,
			wantDetail: "todo-backend: failing (circuit breaker open)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			r.Register(checker(t, "todo-backend", tt.err))

			assert.Equal(t, []ports.ComponentHealth{{
				Name:   "todo-backend",
				State:  tt.wantState,
				Detail: tt.wantDetail,
			}}, r.CheckAll(context.Background()))
		})
	}
}

func TestCheckAll_SortedByName(t *testing.T) {
	t.Parallel()

	r := health.New()
	r.Register(checker(t, "todo-backend", nil))
	r.Register(checker(t, "otel-collector", errors.New("connection refused")))

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	assert.Equal(t, "otel-collector", results[0].Name)
	assert.Equal(t, ports.HealthDown, results[0].State)
	assert.Equal(t, "todo-backend", results[1].Name)
	assert.Equal(t, ports.HealthUp, results[1].State)
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("todo-backend")
	c.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(c)

	results := r.CheckAll(ctx)

	assert.Equal(t, ports.HealthDown, results[0].State)
	assert.Equal(t, context.Canceled.Error(), results[0].Detail)
}

func TestCheckAll_ReRegisterReplaces(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("todo-backend")

	r := health.New()
	r.Register(first)
	r.Register(checker(t, "todo-backend", errors.New("second failure")))

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	assert.Equal(t, "second failure", results[0].Detail)
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 50 {
		if i%2 == 0 {
			wg.Go(func() {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return(fmt.Sprintf("todo-mirror-%d", i)).Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			})
		} else {
			wg.Go(func() {
				r.CheckAll(context.Background())
			})
		}
	}
	wg.Wait()

	assert.Len(t, r.CheckAll(context.Background()), 25)
}
