// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// Standard returns the pipeline used by the front-end API:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, Timeout, handler
//
// Request and correlation IDs are copied into the outbound httpclient context
// keys, so every call to the todo backend carries the same IDs as the browser
// request that caused it.
package middleware

import "net/http"

// statusRecorder remembers the first status a todo handler committed and how
// many body bytes followed. Recovery, OpenTelemetry and Logging share one
// recorder per request.
type statusRecorder struct {
	http.ResponseWriter
	code  int
	bytes int64
}

// record wraps w, reusing w itself when an outer middleware already did.
func record(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w}
}

// WriteHeader forwards only the first status; a handler that writes a
// problem response and then a second status keeps the first.
func (r *statusRecorder) WriteHeader(code int) {
	if r.code != 0 {
		return
	}
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.code == 0 {
		r.code = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += int64(n)
	return n, err
}

// status is the committed status, or 200 when the handler wrote nothing.
func (r *statusRecorder) status() int {
	if r.code == 0 {
		return http.StatusOK
	}
	return r.code
}

// committed reports whether the status line has been sent.
func (r *statusRecorder) committed() bool {
	return r.code != 0
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
