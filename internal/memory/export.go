package memory

import (
	"time"

	"github.com/jarvis-assistant/jarvisd/internal/models"
	"github.com/jarvis-assistant/jarvisd/internal/store"
)

// ExportAllData assembles the full-state backup snapshot. It is a pure read
// and never mutates state.
func (s *Service) ExportAllData() models.Snapshot {
	return models.Snapshot{
		Chats:        s.Chats(),
		Preferences:  s.Preferences(),
		Relationship: s.Relationship(),
		Streak:       s.Streak(),
		Analytics:    store.Get(s.kv, store.KeyAnalytics, map[string]any{}),
		Profile:      s.Profile(),
		Exported:     s.now().UTC().Format(time.RFC3339),
		Version:      models.ExportVersion,
	}
}

// DeleteAllData removes every key in the persisted namespace. Total and
// irreversible.
func (s *Service) DeleteAllData() error {
	return s.kv.DeleteAll()
}
