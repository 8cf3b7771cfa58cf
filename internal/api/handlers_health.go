package api

import (
	"net/http"

	"github.com/jarvis-assistant/jarvisd/internal/store"
)

// HealthHandler reports daemon and database health.
type HealthHandler struct {
	db *store.DB
	kv *store.KV
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *store.DB, kv *store.KV) *HealthHandler {
	return &HealthHandler{db: db, kv: kv}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	keys, err := h.db.KeyCount()
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"keys":   keys,
	})
}
