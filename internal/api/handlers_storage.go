package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jarvis-assistant/jarvisd/internal/memory"
	"github.com/jarvis-assistant/jarvisd/internal/store"
)

// StorageHandler serves storage health, cleanup, export and wipe requests.
type StorageHandler struct {
	kv  *store.KV
	mem *memory.Service
}

// NewStorageHandler creates a new storage handler.
func NewStorageHandler(kv *store.KV, mem *memory.Service) *StorageHandler {
	return &StorageHandler{kv: kv, mem: mem}
}

// Status handles GET /storage/status
func (h *StorageHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.kv.StorageStatus(r.Context()))
}

// Clean handles POST /storage/clean. It evicts old conversations and returns
// the storage status after cleanup.
func (h *StorageHandler) Clean(w http.ResponseWriter, r *http.Request) {
	h.kv.AutoCleanStorage()
	writeJSON(w, http.StatusOK, h.kv.StorageStatus(r.Context()))
}

// Export handles GET /export. The snapshot is served as a file download so a
// browser client saves it directly.
func (h *StorageHandler) Export(w http.ResponseWriter, r *http.Request) {
	snapshot := h.mem.ExportAllData()

	filename := fmt.Sprintf("jarvis-backup-%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(snapshot)
}

// Wipe handles DELETE /data. All stored state is removed.
func (h *StorageHandler) Wipe(w http.ResponseWriter, r *http.Request) {
	if err := h.mem.DeleteAllData(); err != nil {
		writeError(w, http.StatusInternalServerError, "delete data: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
