package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jarvis-assistant/jarvisd/internal/assistant"
	"github.com/jarvis-assistant/jarvisd/internal/memory"
)

// ChatHandler handles conversational turns and chat management requests.
type ChatHandler struct {
	mem  *memory.Service
	asst *assistant.Service
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(mem *memory.Service, asst *assistant.Service) *ChatHandler {
	return &ChatHandler{mem: mem, asst: asst}
}

type turnRequest struct {
	Input string `json:"input"`
}

// Turn handles POST /chat. It runs one full conversational turn against the
// active chat, creating one if none exists.
func (h *ChatHandler) Turn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.asst.ProcessTurn(r.Context(), req.Input)
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyInput) {
			writeError(w, http.StatusBadRequest, "input is required")
			return
		}
		writeError(w, http.StatusInternalServerError, "process turn: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// List handles GET /chats
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.mem.Chats())
}

// Create handles POST /chats
func (h *ChatHandler) Create(w http.ResponseWriter, r *http.Request) {
	chat := h.mem.NewChat()
	writeJSON(w, http.StatusCreated, chat)
}

// Active handles GET /chats/active
func (h *ChatHandler) Active(w http.ResponseWriter, r *http.Request) {
	chat := h.mem.ActiveChat()
	if chat == nil {
		writeError(w, http.StatusNotFound, "no active chat")
		return
	}
	writeJSON(w, http.StatusOK, chat)
}

// Activate handles POST /chats/{id}/activate
func (h *ChatHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.mem.SetActive(id) {
		writeError(w, http.StatusNotFound, "chat not found: "+id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"active": id})
}

// Delete handles DELETE /chats/{id}
func (h *ChatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.mem.DeleteChat(id)
	w.WriteHeader(http.StatusNoContent)
}
