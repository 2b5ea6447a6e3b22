package httpclient_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/todo-list-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

const backendName = "todo-backend"

// fakeBackend stands in for the todo backend and counts the requests that
// reach it.
type fakeBackend struct {
	*httptest.Server
	hits atomic.Int32
}

func newFakeBackend(t *testing.T, h http.HandlerFunc) *fakeBackend {
	t.Helper()

	b := &fakeBackend{}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.hits.Add(1)
		h(w, r)
	}))
	t.Cleanup(b.Close)
	return b
}

// status answers every request with code.
func status(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(code) }
}

// stall holds the request until the client gives up or a second passes.
func stall(w http.ResponseWriter, r *http.Request) {
	select {
	case <-r.Context().Done():
	case <-time.After(time.Second):
	}
	w.WriteHeader(http.StatusOK)
}

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL:   baseURL,
		TodosPath: "/api/todos",
		Timeout:   5 * time.Second,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func newClient(cfg *config.ClientConfig, metrics *telemetry.Metrics) *httpclient.Client {
	return httpclient.New(cfg, backendName, metrics, slog.New(slog.DiscardHandler))
}

// send issues method url through c and returns the body read from any
// response the backend produced.
func send(t *testing.T, ctx context.Context, c *httpclient.Client, method, url string, body io.Reader) (int, string, error) {
	t.Helper()

	if body == nil {
		body = http.NoBody
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	resp, err := c.Do(ctx, req)
	if err != nil {
		if resp != nil {
			t.Errorf("Do() returned a response alongside error %v", err)
			_ = resp.Body.Close()
		}
		return 0, "", err
	}
	defer func() { _ = resp.Body.Close() }()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b), nil
}

func TestDo_ListTodos(t *testing.T) {
	t.Parallel()

	var gotQuery string
	b := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = io.WriteString(w, `[{"_id":"1","category":"homework"}]`)
	})
	c := newClient(testConfig(b.URL), nil)

	code, body, err := send(t, context.Background(), c, http.MethodGet, b.URL+"/api/todos?status=false&category=homework&", nil)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if code != http.StatusOK || body != `[{"_id":"1","category":"homework"}]` {
		t.Errorf("Do() = %d %q, want 200 with the todo list", code, body)
	}
	if gotQuery != "status=false&category=homework&" {
		t.Errorf("backend saw query %q, want it unchanged", gotQuery)
	}
}

func TestDo_ErrorStatusesAreResponsesSentOnce(t *testing.T) {
	t.Parallel()

	for _, code := range []int{
		http.StatusBadRequest,
		http.StatusNotFound,
		http.StatusTooManyRequests,
		http.StatusServiceUnavailable,
	} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			t.Parallel()

			b := newFakeBackend(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(code)
				_, _ = io.WriteString(w, `{"title":"detail"}`)
			})
			c := newClient(testConfig(b.URL), nil)

			got, body, err := send(t, context.Background(), c, http.MethodGet, b.URL+"/api/todos/58895985a22c04e761776d54", nil)
			if err != nil {
				t.Fatalf("Do() error = %v, want the response", err)
			}
			if got != code || body != `{"title":"detail"}` {
				t.Errorf("Do() = %d %q, want %d with the body", got, body, code)
			}
			if n := b.hits.Load(); n != 1 {
				t.Errorf("backend hits = %d, want 1", n)
			}
		})
	}
}

func TestDo_AddTodoBodyDelivered(t *testing.T) {
	t.Parallel()

	var got string
	b := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		got = string(raw)
		w.WriteHeader(http.StatusCreated)
	})
	c := newClient(testConfig(b.URL), nil)

	const todo = `{"owner":"Pat","body":"read ch. 4","category":"homework","status":false}`
	if _, _, err := send(t, context.Background(), c, http.MethodPost, b.URL+"/api/todos/new", strings.NewReader(todo)); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if got != todo {
		t.Errorf("backend body = %q, want %q", got, todo)
	}
}

func TestDo_UnreachableBackend(t *testing.T) {
	t.Parallel()

	b := newFakeBackend(t, status(http.StatusOK))
	url := b.URL
	b.Close()

	c := newClient(testConfig(url), nil)
	if _, _, err := send(t, context.Background(), c, http.MethodGet, url+"/api/todos", nil); err == nil {
		t.Fatal("Do() error = nil, want transport error")
	}
}

func TestDo_RateLimitedCallerGivesUp(t *testing.T) {
	t.Parallel()

	b := newFakeBackend(t, status(http.StatusOK))
	cfg := testConfig(b.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1}
	cfg.CircuitBreaker.MaxFailures = 1
	c := newClient(cfg, nil)

	if _, _, err := send(t, context.Background(), c, http.MethodGet, b.URL+"/api/todos", nil); err != nil {
		t.Fatalf("first Do() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, _, err := send(t, ctx, c, http.MethodGet, b.URL+"/api/todos", nil); err == nil {
		t.Fatal("second Do() error = nil, want rate limiter error")
	}
	if n := b.hits.Load(); n != 1 {
		t.Errorf("backend hits = %d, want 1", n)
	}
	if got := c.CircuitBreakerState(); got != "closed" {
		t.Errorf("CircuitBreakerState() = %q after a limiter wait gave up, want closed", got)
	}
}

func TestDo_PropagatesRequestIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ctx      context.Context
		wantReq  string
		wantCorr string
	}{
		{
			name:     "ids from the inbound request",
			ctx:      httpclient.WithCorrelationID(httpclient.WithRequestID(context.Background(), "req-123"), "corr-456"),
			wantReq:  "req-123",
			wantCorr: "corr-456",
		},
		{name: "no ids on a bare context", ctx: context.Background()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotReq, gotCorr string
			b := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
				gotReq = r.Header.Get("X-Request-ID")
				gotCorr = r.Header.Get("X-Correlation-ID")
				w.WriteHeader(http.StatusOK)
			})
			c := newClient(testConfig(b.URL), nil)

			if _, _, err := send(t, tt.ctx, c, http.MethodGet, b.URL+"/api/todos", nil); err != nil {
				t.Fatalf("Do() error = %v", err)
			}
			if gotReq != tt.wantReq || gotCorr != tt.wantCorr {
				t.Errorf("backend saw ids (%q, %q), want (%q, %q)", gotReq, gotCorr, tt.wantReq, tt.wantCorr)
			}
		})
	}
}

func TestDo_BreakerOpensOnBackendFailures(t *testing.T) {
	t.Parallel()

	b := newFakeBackend(t, status(http.StatusInternalServerError))
	cfg := testConfig(b.URL)
	cfg.CircuitBreaker.MaxFailures = 2
	c := newClient(cfg, nil)

	for range 2 {
		code, _, err := send(t, context.Background(), c, http.MethodGet, b.URL+"/api/todos", nil)
		if err != nil || code != http.StatusInternalServerError {
			t.Fatalf("Do() = %d, %v; want the 500 response", code, err)
		}
	}

	_, _, err := send(t, context.Background(), c, http.MethodGet, b.URL+"/api/todos", nil)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("Do() error = %v, want gobreaker.ErrOpenState", err)
	}
	if n := b.hits.Load(); n != 2 {
		t.Errorf("backend hits = %d, want 2 (open breaker sends nothing)", n)
	}
}

func TestDo_BreakerRecoversWhenBackendReturns(t *testing.T) {
	t.Parallel()

	var down atomic.Bool
	down.Store(true)
	b := newFakeBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		if down.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `[]`)
	})
	cfg := testConfig(b.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	c := newClient(cfg, nil)

	_, _, _ = send(t, context.Background(), c, http.MethodGet, b.URL+"/api/todos", nil)
	if _, _, err := send(t, context.Background(), c, http.MethodGet, b.URL+"/api/todos", nil); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("Do() error = %v, want gobreaker.ErrOpenState", err)
	}

	time.Sleep(150 * time.Millisecond)
	down.Store(false)

	code, body, err := send(t, context.Background(), c, http.MethodGet, b.URL+"/api/todos", nil)
	if err != nil || code != http.StatusOK || body != `[]` {
		t.Fatalf("Do() = %d %q, %v; want 200 [] once the backend is back", code, body, err)
	}
	if got := c.CircuitBreakerState(); got != "closed" {
		t.Errorf("CircuitBreakerState() = %q, want closed", got)
	}
}

func TestDo_CallerCancellationDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	b := newFakeBackend(t, status(http.StatusOK))
	c := newClient(testConfig(b.URL), nil)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	for range 5 {
		if _, _, err := send(t, canceled, c, http.MethodGet, b.URL+"/api/todos", nil); !errors.Is(err, context.Canceled) {
			t.Fatalf("Do() error = %v, want context.Canceled", err)
		}
	}

	if got := c.CircuitBreakerState(); got != "closed" {
		t.Fatalf("CircuitBreakerState() = %q after caller cancellations, want closed", got)
	}
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck() = %v, want nil", err)
	}
	if _, _, err := send(t, context.Background(), c, http.MethodGet, b.URL+"/api/todos", nil); err != nil {
		t.Fatalf("Do() with a live context error = %v", err)
	}
	if n := b.hits.Load(); n != 1 {
		t.Errorf("backend hits = %d, want 1", n)
	}
}

func TestDo_CallerDeadlineDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	b := newFakeBackend(t, stall)
	cfg := testConfig(b.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	c := newClient(cfg, nil)

	for range 3 {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		_, _, err := send(t, ctx, c, http.MethodGet, b.URL+"/api/todos/58895985a22c04e761776d54", nil)
		cancel()
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("Do() error = %v, want context.DeadlineExceeded", err)
		}
	}

	if got := c.CircuitBreakerState(); got != "closed" {
		t.Errorf("CircuitBreakerState() = %q after caller deadlines, want closed", got)
	}
}

func TestDo_BackendTimeoutStillTripsBreaker(t *testing.T) {
	t.Parallel()

	b := newFakeBackend(t, stall)
	cfg := testConfig(b.URL)
	cfg.Timeout = 10 * time.Millisecond
	cfg.CircuitBreaker.MaxFailures = 1
	c := newClient(cfg, nil)

	if _, _, err := send(t, context.Background(), c, http.MethodGet, b.URL+"/api/todos", nil); err == nil {
		t.Fatal("Do() error = nil, want client timeout")
	}
	if got := c.CircuitBreakerState(); got != "open" {
		t.Errorf("CircuitBreakerState() = %q after a backend timeout, want open", got)
	}
}

func TestClient_Accessors(t *testing.T) {
	t.Parallel()

	c := newClient(testConfig("http://localhost:4567"), nil)

	if got := c.Name(); got != backendName {
		t.Errorf("Name() = %q, want %q", got, backendName)
	}
	if got := c.BaseURL(); got != "http://localhost:4567" {
		t.Errorf("BaseURL() = %q, want %q", got, "http://localhost:4567")
	}
}

func TestClient_HealthCheckFollowsBreaker(t *testing.T) {
	t.Parallel()

	b := newFakeBackend(t, status(http.StatusInternalServerError))
	cfg := testConfig(b.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	c := newClient(cfg, nil)

	if err := c.HealthCheck(context.Background()); err != nil {
		t.Fatalf("fresh client HealthCheck() = %v, want nil", err)
	}

	_, _, _ = send(t, context.Background(), c, http.MethodGet, b.URL+"/api/todos", nil)
	err := c.HealthCheck(context.Background())
	if err == nil || errors.Is(err, ports.ErrDegraded) || !strings.Contains(err.Error(), "failing") {
		t.Fatalf("open breaker HealthCheck() = %v, want a failing error", err)
	}

	time.Sleep(150 * time.Millisecond)
	if err := c.HealthCheck(context.Background()); !errors.Is(err, ports.ErrDegraded) {
		t.Errorf("half-open breaker HealthCheck() = %v, want ports.ErrDegraded", err)
	}
}

func TestDo_RecordsClientMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "todo-list-service")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	b := newFakeBackend(t, status(http.StatusServiceUnavailable))
	cfg := testConfig(b.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	c := newClient(cfg, metrics)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, _ = send(t, canceled, c, http.MethodGet, b.URL+"/api/todos", nil)
	_, _, _ = send(t, context.Background(), c, http.MethodGet, b.URL+"/api/todos", nil)
	_, _, _ = send(t, context.Background(), c, http.MethodGet, b.URL+"/api/todos", nil)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	results := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.client.request.total" {
				continue
			}
			for _, dp := range m.Data.(metricdata.Sum[int64]).DataPoints {
				peer, _ := dp.Attributes.Value(telemetry.AttrPeerService)
				if peer.AsString() != backendName {
					t.Errorf("peer.service = %q, want %q", peer.AsString(), backendName)
				}
				result, _ := dp.Attributes.Value(telemetry.AttrResult)
				results[result.AsString()] += dp.Value
			}
		}
	}

	want := map[string]int64{"canceled": 1, "error": 1, "circuit_open": 1}
	for k, v := range want {
		if results[k] != v {
			t.Errorf("results[%q] = %d, want %d (all: %v)", k, results[k], v, results)
		}
	}
}
