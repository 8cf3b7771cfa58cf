package memory

import (
	"github.com/jarvis-assistant/jarvisd/internal/models"
	"github.com/jarvis-assistant/jarvisd/internal/store"
)

// levelThresholds and nextThresholds define the interaction counts at which
// each level begins and ends. Index = level - 1.
var (
	levelThresholds = [5]int{0, 5, 25, 100, 500}
	nextThresholds  = [5]int{5, 25, 100, 500, 1000}
)

// ComputeLevel maps a cumulative interaction count onto a level 1..5. It is
// non-decreasing in n.
func ComputeLevel(n int) int {
	switch {
	case n >= 500:
		return 5
	case n >= 100:
		return 4
	case n >= 25:
		return 3
	case n >= 5:
		return 2
	default:
		return 1
	}
}

// Relationship returns the singleton relationship state, initialized on first
// read.
func (s *Service) Relationship() models.Relationship {
	now := s.now().UnixMilli()
	return store.Get(s.kv, store.KeyRelationship, models.Relationship{
		TotalInteractions: 0,
		Level:             1,
		FirstMet:          now,
		LastSeen:          now,
		PersonalFacts:     []string{},
		XP:                0,
	})
}

// IncrementInteraction records one interaction, recomputes the level, and
// reports whether a level boundary was just crossed. Levels never demote.
func (s *Service) IncrementInteraction() (models.Relationship, bool) {
	r := s.Relationship()
	r.TotalInteractions++
	r.XP++
	r.LastSeen = s.now().UnixMilli()

	oldLevel := r.Level
	r.Level = ComputeLevel(r.TotalInteractions)

	s.kv.Set(store.KeyRelationship, r)
	return r, r.Level > oldLevel
}

// LevelProgress maps the interaction count into a 0-100 percentage of
// progress toward the next level threshold.
func LevelProgress(r models.Relationship) float64 {
	i := r.Level - 1
	if i < 0 {
		i = 0
	}
	if i > 4 {
		i = 4
	}
	span := float64(nextThresholds[i] - levelThresholds[i])
	progress := float64(r.TotalInteractions-levelThresholds[i]) / span * 100
	if progress > 100 {
		return 100
	}
	if progress < 0 {
		return 0
	}
	return progress
}
