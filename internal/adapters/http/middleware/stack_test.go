package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/game-narrative-script/internal/adapters/http/middleware"
)

// stackRouter mounts handler at /api/v1/acts/{name} behind the full stack.
func stackRouter(buf *bytes.Buffer, timeout time.Duration, handler http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Stack(testLogger(buf), nil, timeout)...)
	r.Get("/api/v1/acts/{name}", handler)
	return r
}

func TestStack_Length(t *testing.T) {
	t.Parallel()

	if got := len(middleware.Stack(discardLogger(), nil, time.Second)); got != 5 {
		t.Errorf("len(Stack()) = %d, want 5", got)
	}
}

func TestStack_FullPipeline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := stackRouter(&buf, 5*time.Second, func(w http.ResponseWriter, r *http.Request) {
		if middleware.RequestIDFromContext(r.Context()) == "" {
			t.Error("request ID not in context")
		}
		if _, ok := r.Context().Deadline(); !ok {
			t.Error("context has no deadline")
		}
		if got := chi.URLParam(r, "name"); got != "intro" {
			t.Errorf("URLParam(name) = %q, want intro", got)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/acts/intro", http.NoBody)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID header")
	}

	logOutput := buf.String()
	if !strings.Contains(logOutput, "request started") {
		t.Error("log output missing 'request started'")
	}
	if !strings.Contains(logOutput, "request completed") {
		t.Error("log output missing 'request completed'")
	}
}

func TestStack_TimeoutProducesProblem(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := stackRouter(&buf, 10*time.Millisecond, func(_ http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/acts/intro", http.NoBody)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusGatewayTimeout)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID header")
	}
}

func TestStack_PanicBehindTimeoutIsRecovered(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := stackRouter(&buf, time.Second, func(_ http.ResponseWriter, _ *http.Request) {
		panic("act decoder exploded")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/acts/intro", http.NoBody)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(buf.String(), "act decoder exploded") {
		t.Error("log output missing panic value")
	}
}
