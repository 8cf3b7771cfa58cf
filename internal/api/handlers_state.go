package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jarvis-assistant/jarvisd/internal/assistant"
	"github.com/jarvis-assistant/jarvisd/internal/memory"
)

// StateHandler serves relationship, streak, profile and preference state.
type StateHandler struct {
	mem  *memory.Service
	asst *assistant.Service
}

// NewStateHandler creates a new state handler.
func NewStateHandler(mem *memory.Service, asst *assistant.Service) *StateHandler {
	return &StateHandler{mem: mem, asst: asst}
}

// Relationship handles GET /relationship
func (h *StateHandler) Relationship(w http.ResponseWriter, r *http.Request) {
	rel := h.mem.Relationship()
	writeJSON(w, http.StatusOK, map[string]any{
		"relationship": rel,
		"progress":     memory.LevelProgress(rel),
	})
}

// Streak handles GET /streak
func (h *StateHandler) Streak(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.mem.Streak())
}

// Profile handles GET /profile
func (h *StateHandler) Profile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.mem.Profile())
}

// UpdateProfile handles PATCH /profile. Only fields present in the body are
// changed.
func (h *StateHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch memory.ProfilePatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.mem.UpdateProfile(patch))
}

// Preferences handles GET /preferences
func (h *StateHandler) Preferences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.mem.Preferences())
}

// UpdatePreferences handles PATCH /preferences. Only fields present in the
// body are changed.
func (h *StateHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var patch memory.PreferencesPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if patch.PersonalityMode != nil && !patch.PersonalityMode.IsValid() {
		writeError(w, http.StatusBadRequest, "unknown personality mode: "+string(*patch.PersonalityMode))
		return
	}
	writeJSON(w, http.StatusOK, h.mem.SetPreferences(patch))
}

// ToolClick handles POST /tools/{id}/click
func (h *StateHandler) ToolClick(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.mem.TrackToolClick(id)
	writeJSON(w, http.StatusOK, map[string]any{
		"tool":   id,
		"clicks": h.mem.ToolUsage(id),
	})
}

// UpdateToolPref handles PATCH /tools/{id}
func (h *StateHandler) UpdateToolPref(w http.ResponseWriter, r *http.Request) {
	var patch memory.ToolPrefPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.mem.SetToolPref(chi.URLParam(r, "id"), patch))
}

// Greeting handles GET /greeting
func (h *StateHandler) Greeting(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"greeting": h.asst.Greeting()})
}

// Suggestion handles GET /suggestion
func (h *StateHandler) Suggestion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"suggestion": h.asst.Suggestion()})
}
