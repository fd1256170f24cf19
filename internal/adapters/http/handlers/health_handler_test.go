package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/game-narrative-script/internal/adapters/http/dto"
	"github.com/jsamuelsen11/game-narrative-script/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/game-narrative-script/mocks"
)

// --- Liveness ---

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.HealthResponse](t, rec)
	if resp.Status != dto.HealthOK {
		t.Errorf("status = %q, want %q", resp.Status, dto.HealthOK)
	}
	if resp.Checks != nil {
		t.Errorf("checks = %v, want none for liveness", resp.Checks)
	}
}

// --- Readiness ---

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantCode   int
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name:       "story loaded",
			results:    map[string]error{"story": nil},
			wantCode:   http.StatusOK,
			wantStatus: dto.HealthReady,
			wantChecks: map[string]string{"story": "ok"},
		},
		{
			name: "object store down",
			results: map[string]error{
				"story":        nil,
				"object-store": errors.New("object-store: failing (circuit breaker open)"),
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: dto.HealthNotReady,
			wantChecks: map[string]string{
				"story":        "ok",
				"object-store": "object-store: failing (circuit breaker open)",
			},
		},
		{
			name:       "no checkers",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: dto.HealthReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)
			h := handlers.NewHealthHandler(registry)

			rec := httptest.NewRecorder()
			h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantCode)

			resp := decodeJSON[dto.HealthResponse](t, rec)
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			for name, want := range tt.wantChecks {
				if resp.Checks[name] != want {
					t.Errorf("%s check = %q, want %q", name, resp.Checks[name], want)
				}
			}
		})
	}
}
