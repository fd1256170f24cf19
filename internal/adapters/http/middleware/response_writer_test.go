package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestResponseWriter_DefaultStatus(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())

	if rw.status != http.StatusOK {
		t.Errorf("status = %d, want %d", rw.status, http.StatusOK)
	}
	if rw.headerWritten() {
		t.Error("headerWritten() = true before any write")
	}
	if got := rw.timeToFirstByte(time.Now()); got != 0 {
		t.Errorf("timeToFirstByte() = %v, want 0 before any write", got)
	}
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		codes []int
		want  int
	}{
		{name: "unknown act", codes: []int{http.StatusNotFound}, want: http.StatusNotFound},
		{name: "first call wins", codes: []int{http.StatusGatewayTimeout, http.StatusOK}, want: http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)
			for _, code := range tt.codes {
				rw.WriteHeader(code)
			}

			if rw.status != tt.want {
				t.Errorf("status = %d, want %d", rw.status, tt.want)
			}
			if rec.Code != tt.want {
				t.Errorf("recorder Code = %d, want %d", rec.Code, tt.want)
			}
			if !rw.headerWritten() {
				t.Error("headerWritten() = false, want true")
			}
		})
	}
}

func TestResponseWriter_WriteCountsBytes(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	_, _ = rw.Write([]byte(`{"act":"intro",`))
	_, _ = rw.Write([]byte(`"items":[]}`))

	if rw.bytes != 26 {
		t.Errorf("bytes = %d, want 26", rw.bytes)
	}
	if rw.status != http.StatusOK {
		t.Errorf("status = %d, want implicit %d", rw.status, http.StatusOK)
	}
	if rec.Body.String() != `{"act":"intro","items":[]}` {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestResponseWriter_TimeToFirstByte(t *testing.T) {
	t.Parallel()

	start := time.Now()
	rw := newResponseWriter(httptest.NewRecorder())
	time.Sleep(5 * time.Millisecond)
	rw.WriteHeader(http.StatusOK)
	committed := rw.timeToFirstByte(start)
	time.Sleep(5 * time.Millisecond)
	_, _ = rw.Write([]byte("later"))

	if committed < 5*time.Millisecond {
		t.Errorf("timeToFirstByte() = %v, want >= 5ms", committed)
	}
	if got := rw.timeToFirstByte(start); got != committed {
		t.Errorf("timeToFirstByte() moved to %v after a later write, want %v", got, committed)
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	if rw.Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
