package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jarvis-assistant/jarvisd/internal/models"
)

// Persisted key namespace. Every key is independently readable and writable
// with defaulting on absence or corruption.
const (
	KeyChats        = "jarvis_chats"
	KeyActiveChat   = "jarvis_active_chat"
	KeyLinkPrefs    = "jarvis_link_prefs"
	KeyPreferences  = "jarvis_preferences"
	KeyRelationship = "jarvis_relationship"
	KeyAnalytics    = "jarvis_owner_analytics"
	KeyProfile      = "jarvis_user_profile"
	KeyWorkflows    = "jarvis_workflows"
	KeyDeadLinks    = "jarvis_dead_links"
	KeyStreak       = "jarvis_streak"
)

// keepRecentChats is how many conversations survive the quota degrade path.
const keepRecentChats = 20

// ErrQuotaExceeded is returned by put when a write would push the store past
// its configured soft quota.
var ErrQuotaExceeded = errors.New("store quota exceeded")

// KV is a typed JSON get/set layer over the kv table. Reads never fail: any
// absence or malformed value yields the caller-supplied fallback. Writes are
// best-effort: quota failures on the chats key degrade by eviction, all other
// failures are logged and absorbed.
type KV struct {
	db     *DB
	quota  int64
	logger *slog.Logger
}

// NewKV creates the adapter. quotaBytes <= 0 disables quota enforcement.
func NewKV(db *DB, quotaBytes int64, logger *slog.Logger) *KV {
	return &KV{db: db, quota: quotaBytes, logger: logger}
}

// Get deserializes the stored JSON value for key, or returns fallback on any
// absence or malformed-data condition. It never raises to the caller.
func Get[T any](kv *KV, key string, fallback T) T {
	var raw string
	err := kv.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		if err != sql.ErrNoRows {
			kv.logger.Warn("kv read failed", "key", key, "error", err)
		}
		return fallback
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		kv.logger.Warn("kv value malformed", "key", key, "error", err)
		return fallback
	}
	return v
}

// Set serializes and writes value under key. A quota failure on the chats key
// degrades by retaining only the most recent conversations and retrying once;
// every other failure is logged, never surfaced.
func (kv *KV) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		kv.logger.Warn("kv marshal failed", "key", key, "error", err)
		return
	}

	if err := kv.put(key, string(data)); err != nil {
		if key == KeyChats {
			kv.degradeChats(data)
			return
		}
		kv.logger.Warn("kv write failed", "key", key, "error", err)
	}
}

// degradeChats handles a failed chats write by keeping only the most recent
// conversations and retrying once.
func (kv *KV) degradeChats(data []byte) {
	var chats []models.Chat
	if err := json.Unmarshal(data, &chats); err != nil {
		kv.logger.Warn("kv chats degrade: undecodable value", "error", err)
		return
	}
	if len(chats) > keepRecentChats {
		chats = chats[len(chats)-keepRecentChats:]
	}
	trimmed, err := json.Marshal(chats)
	if err != nil {
		kv.logger.Warn("kv chats degrade: marshal failed", "error", err)
		return
	}
	if err := kv.put(KeyChats, string(trimmed)); err != nil {
		kv.logger.Warn("kv chats degrade: retry failed", "error", err)
		return
	}
	kv.logger.Info("kv chats degraded under quota pressure", "kept", len(chats))
}

func (kv *KV) put(key, value string) error {
	if kv.quota > 0 {
		var others int64
		err := kv.db.QueryRow(
			`SELECT COALESCE(SUM((length(key) + length(value)) * 2), 0) FROM kv WHERE key != ?`,
			key).Scan(&others)
		if err != nil {
			return fmt.Errorf("measure store: %w", err)
		}
		if others+int64(len(key)+len(value))*2 > kv.quota {
			return ErrQuotaExceeded
		}
	}

	_, err := kv.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("upsert kv: %w", err)
	}
	return nil
}

// Delete removes a single key. Missing keys are not an error.
func (kv *KV) Delete(key string) {
	if _, err := kv.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		kv.logger.Warn("kv delete failed", "key", key, "error", err)
	}
}

// DeleteAll removes every key in the persisted namespace, leaving the store
// identical to a never-used device.
func (kv *KV) DeleteAll() error {
	if _, err := kv.db.Exec(`DELETE FROM kv`); err != nil {
		return fmt.Errorf("wipe kv: %w", err)
	}
	return nil
}

// Keys lists every persisted key.
func (kv *KV) Keys() ([]string, error) {
	rows, err := kv.db.Query(`SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// usedBytes sums the wide-character-accounted byte length of every persisted
// key/value pair.
func (kv *KV) usedBytes() (int64, error) {
	var used int64
	err := kv.db.QueryRow(
		`SELECT COALESCE(SUM((length(key) + length(value)) * 2), 0) FROM kv`).Scan(&used)
	return used, err
}
