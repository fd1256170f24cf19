// Package middleware provides HTTP middleware for the story server.
//
// The middleware chain processes requests in this order:
//
//	Recovery → RequestID → OpenTelemetry → Logging → Timeout → Handler
//
// Stack returns that chain for chi's Use. Each middleware is a
// func(http.Handler) http.Handler.
package middleware

import (
	"net/http"
	"time"
)

// responseWriter records what a handler sent: the status, the body size and
// the moment the header was committed. Recovery, OpenTelemetry and Logging
// wrap the writer they receive with one.
type responseWriter struct {
	http.ResponseWriter
	status    int
	bytes     int64
	committed time.Time
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, status: http.StatusOK}
}

// headerWritten reports whether the status line has been sent.
func (rw *responseWriter) headerWritten() bool {
	return !rw.committed.IsZero()
}

// WriteHeader records code and forwards it. Only the first call counts.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten() {
		return
	}
	rw.status = code
	rw.committed = time.Now()
	rw.ResponseWriter.WriteHeader(code)
}

// Write forwards b. The first write commits an implicit 200.
func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.headerWritten() {
		rw.committed = time.Now()
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += int64(n)
	return n, err
}

// timeToFirstByte returns the delay between start and the header commit, or
// zero if nothing was written.
func (rw *responseWriter) timeToFirstByte(start time.Time) time.Duration {
	if !rw.headerWritten() {
		return 0
	}
	return rw.committed.Sub(start)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
