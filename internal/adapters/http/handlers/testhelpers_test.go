package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/game-narrative-script/internal/domain/narrative"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/symbol"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func introItems() []narrative.Item {
	attrs := []symbol.Attribute{{Key: "name", Value: "Alice A."}}
	return []narrative.Item{
		{Kind: narrative.KindDialogue, Character: "alice", DisplayName: "Alice A.", Text: "Hello", Attributes: attrs},
		{Kind: narrative.KindChoiceSet, Character: "alice", DisplayName: "Alice A.", Attributes: attrs, Choices: []narrative.Choice{
			{Text: "Go left", Jump: "left"},
			{Text: "Stay", Jump: "intro"},
		}},
	}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
