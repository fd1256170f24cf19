package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/game-narrative-script/internal/adapters/http/dto"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{
			name:       "unknown scene maps to 404",
			err:        &domain.UnknownSceneError{Act: "nowhere"},
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
		{
			name:       "wrapped unknown scene preserves mapping",
			err:        fmt.Errorf("serving act: %w", &domain.UnknownSceneError{Act: "nowhere"}),
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
		{
			name:       "decode failure maps to 500",
			err:        &domain.DecodeError{Act: "intro", Op: "decode", Err: errors.New("corrupt input")},
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
		},
		{
			name:       "deadline maps to 504",
			err:        fmt.Errorf("reading act: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantTitle:  "Gateway Timeout",
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("oops"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/acts/nowhere", nil)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}

func TestNewErrorResponse_Fields(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/acts/nowhere", nil)
	err := &domain.UnknownSceneError{Act: "nowhere"}

	got := dto.NewErrorResponse(r, err)

	if got.Type != "about:blank" {
		t.Errorf("Type = %q, want %q", got.Type, "about:blank")
	}
	if got.Instance != "/api/v1/acts/nowhere" {
		t.Errorf("Instance = %q, want %q", got.Instance, "/api/v1/acts/nowhere")
	}
	if got.Detail != err.Error() {
		t.Errorf("Detail = %q, want %q", got.Detail, err.Error())
	}
}

func TestNewErrorResponse_ServerErrorsHideDetail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/acts/intro", nil)
	err := &domain.DecodeError{Path: "/srv/stories/source.gcstree", Op: "read", Err: errors.New("EOF")}

	if got := dto.NewErrorResponse(r, err); got.Detail != "" {
		t.Errorf("Detail = %q, want empty for server errors", got.Detail)
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/acts/nowhere", nil)

	dto.WriteErrorResponse(w, r, &domain.UnknownSceneError{Act: "nowhere"})

	if w.Code != http.StatusNotFound {
		t.Errorf("status code = %d, want %d", w.Code, http.StatusNotFound)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if resp.Status != http.StatusNotFound {
		t.Errorf("body status = %d, want %d", resp.Status, http.StatusNotFound)
	}
}
