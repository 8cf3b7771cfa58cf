// Package memory owns all durable client-side state: conversations, the
// relationship progression, engagement streaks, the free-text-derived user
// profile, preferences, and the export/wipe lifecycle.
package memory

import (
	"log/slog"
	"time"

	"github.com/jarvis-assistant/jarvisd/internal/store"
)

// Service is the facade for all persistent-state operations. All state lives
// in the KV store; the service itself is stateless apart from its clock.
type Service struct {
	kv     *store.KV
	logger *slog.Logger

	// now is replaceable in tests; streak logic is calendar-date sensitive.
	now func() time.Time
}

// NewService creates the memory service.
func NewService(kv *store.KV, logger *slog.Logger) *Service {
	return &Service{
		kv:     kv,
		logger: logger,
		now:    time.Now,
	}
}
