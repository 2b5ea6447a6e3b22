package middleware

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/http/dto"
)

var errRequestTimeout = fmt.Errorf("request timed out: %w", context.DeadlineExceeded)

// Timeout bounds each todo request by timeout. The deadline rides on the
// request context, so the outbound backend call is canceled with it. The
// handler's response is buffered; if the deadline passes first, a 504
// problem is written and anything the handler writes later is discarded.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case p := <-panicked:
				// Re-raise on the serving goroutine so Recovery sees it.
				panic(p)
			case <-done:
				bw.copyTo(w)
			case <-ctx.Done():
				bw.abandon()
				dto.WriteErrorResponse(w, r, errRequestTimeout)
			}
		})
	}
}

// bufferedWriter holds a todo handler's response until Timeout decides
// whether it is delivered.
type bufferedWriter struct {
	mu        sync.Mutex
	header    http.Header
	body      bytes.Buffer
	code      int
	abandoned bool
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.code == 0 {
		bw.code = code
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if bw.code == 0 {
		bw.code = http.StatusOK
	}
	return bw.body.Write(b)
}

// abandon makes later handler writes fail with http.ErrHandlerTimeout. The
// header map is never read after this, so the handler may keep using it.
func (bw *bufferedWriter) abandon() {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	bw.abandoned = true
}

// copyTo writes the buffered response to w. A handler that wrote nothing
// yields an empty 200.
func (bw *bufferedWriter) copyTo(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	maps.Copy(w.Header(), bw.header)
	if bw.code != 0 {
		w.WriteHeader(bw.code)
	}
	if bw.body.Len() > 0 {
		_, _ = w.Write(bw.body.Bytes())
	}
}
