// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The middleware chain processes requests in this order:
//
//	Recovery, RequestID, CorrelationID, AppContext, OpenTelemetry, Logging, Timeout
//
// Each middleware is a func(http.Handler) http.Handler and is registered on
// the chi router in that order.
package middleware

import "net/http"

// recorder remembers the status and body size a handler produced, for the
// recovery, otel and logging middleware.
type recorder struct {
	http.ResponseWriter
	status  int
	started bool
	bytes   int64
}

func record(w http.ResponseWriter) *recorder {
	return &recorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader keeps the first status; later calls are dropped like net/http
// would.
func (rw *recorder) WriteHeader(code int) {
	if rw.started {
		return
	}
	rw.status, rw.started = code, true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *recorder) Write(b []byte) (int, error) {
	rw.started = true
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *recorder) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
