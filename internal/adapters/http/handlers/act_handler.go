package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/game-narrative-script/internal/adapters/http/dto"
	"github.com/jsamuelsen11/game-narrative-script/internal/ports"
)

// ActHandler serves the acts of the loaded story.
type ActHandler struct {
	story ports.StoryService
}

// NewActHandler creates a new ActHandler backed by the given story service.
func NewActHandler(story ports.StoryService) *ActHandler {
	return &ActHandler{story: story}
}

// ListActs handles GET /api/v1/acts.
func (h *ActHandler) ListActs(w http.ResponseWriter, r *http.Request) {
	writeStoryJSON(w, r, dto.ToActListResponse(h.story.ListActs(r.Context())))
}

// GetAct handles GET /api/v1/acts/{name}. An act that is not part of the
// story yields 404; a block that cannot be read yields 500.
func (h *ActHandler) GetAct(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	items, err := h.story.Traverse(r.Context(), name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeStoryJSON(w, r, dto.ToActResponse(name, items))
}
