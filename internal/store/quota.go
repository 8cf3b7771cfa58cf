package store

import (
	"context"
	"math"
	"sort"

	"github.com/jarvis-assistant/jarvisd/internal/models"
)

const (
	// assumedCeiling is the fixed capacity assumed when no platform estimate
	// is available (5 MiB, mirroring browser localStorage).
	assumedCeiling = 5 * 1024 * 1024

	warningPercent  = 70
	criticalPercent = 90

	// cleanThreshold is the conversation count above which eviction runs.
	cleanThreshold = 10
)

// StorageStatus estimates used and total capacity and classifies pressure.
// The primary path asks SQLite for its page accounting; on any fault it falls
// back to summing the wide-character byte length of every key/value pair
// against the assumed ceiling.
func (kv *KV) StorageStatus(ctx context.Context) models.StorageStatus {
	total := kv.quota
	if total <= 0 {
		total = assumedCeiling
	}

	var pageCount, pageSize int64
	err := kv.db.QueryRowContext(ctx, `PRAGMA page_count`).Scan(&pageCount)
	if err == nil {
		err = kv.db.QueryRowContext(ctx, `PRAGMA page_size`).Scan(&pageSize)
	}
	if err == nil {
		return statusFor(pageCount*pageSize, total)
	}

	used, err := kv.usedBytes()
	if err != nil {
		kv.logger.Warn("storage estimate failed", "error", err)
		used = 0
	}
	return statusFor(used, assumedCeiling)
}

func statusFor(used, total int64) models.StorageStatus {
	percent := int(math.Round(float64(used) / float64(total) * 100))
	return models.StorageStatus{
		Used:     used,
		Total:    total,
		Percent:  percent,
		Warning:  percent >= warningPercent,
		Critical: percent >= criticalPercent,
	}
}

// AutoCleanStorage evicts the least-recently-updated conversations: when more
// than cleanThreshold chats are stored, the oldest third (rounded up) by
// updatedAt is discarded. Recency of use, not creation order, determines
// survival.
func (kv *KV) AutoCleanStorage() {
	chats := Get(kv, KeyChats, []models.Chat{})
	if len(chats) <= cleanThreshold {
		return
	}

	sorted := make([]models.Chat, len(chats))
	copy(sorted, chats)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt < sorted[j].UpdatedAt
	})

	drop := (len(sorted) + 2) / 3 // ceil(n/3)
	kv.Set(KeyChats, sorted[drop:])
	kv.logger.Info("storage auto-clean evicted chats", "dropped", drop, "kept", len(sorted)-drop)
}
