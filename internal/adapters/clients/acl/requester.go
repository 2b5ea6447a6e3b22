package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/httpclient"
)

// maxResponseSize bounds how much of a success body is read.
const maxResponseSize = 10 << 20 // 10 MB

// Requester centralizes the HTTP request lifecycle for ACL clients:
// request creation, JSON marshaling, execution via httpclient.Client,
// response body cleanup, status code validation, error translation and
// decoding. Each call sends exactly one request.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// GetJSON sends GET rawURL and decodes a 2xx JSON body into respBody.
// rawURL is used as given; its query string is not re-encoded.
func (r *Requester) GetJSON(ctx context.Context, rawURL string, respBody any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating GET request for %s: %w", rawURL, err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := r.execute(req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, respBody); err != nil {
		return fmt.Errorf("decoding response from GET %s: %w", req.URL.Path, err)
	}
	return nil
}

// PostJSON sends reqBody as JSON to rawURL and returns the raw 2xx response
// body for the caller to decode.
func (r *Requester) PostJSON(ctx context.Context, rawURL string, reqBody any) ([]byte, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling POST body for %s: %w", rawURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating POST request for %s: %w", rawURL, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return r.execute(req)
}

// CircuitBreakerState returns the circuit breaker state from the underlying
// HTTP client.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, maps non-2xx statuses to domain errors and
// returns the success body. Transport failures wrap both domain.ErrUnavailable
// and the cause, unless ctx ended first: then only the cause is wrapped. It
// ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request) ([]byte, error) {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil && ctx.Err() != nil {
		r.logger.DebugContext(ctx, "request abandoned by caller",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	if err != nil {
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		translateErr := translateBackendError(resp)
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", translateErr),
		)
		return nil, translateErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	return body, nil
}
