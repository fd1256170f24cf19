package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/game-narrative-script/internal/platform/logging"
)

// storyCacheControl applies to act responses. A loaded story does not change
// for the lifetime of the process.
const storyCacheControl = "public, max-age=300"

// writeJSON writes v as JSON with the given status code. An encoding failure
// is logged through the request logger since the status line is already out.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}

// writeStoryJSON writes a cacheable 200 response for story content.
func writeStoryJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Cache-Control", storyCacheControl)
	writeJSON(w, r, http.StatusOK, v)
}
