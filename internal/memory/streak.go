package memory

import (
	"github.com/jarvis-assistant/jarvisd/internal/models"
	"github.com/jarvis-assistant/jarvisd/internal/store"
)

// dateLayout is the device-local calendar-day format used for streak
// comparison.
const dateLayout = "2006-01-02"

// Streak returns the persisted streak state.
func (s *Service) Streak() models.Streak {
	return store.Get(s.kv, store.KeyStreak, models.Streak{})
}

// UpdateStreak advances the consecutive-day streak. Repeated calls on the
// same calendar day are no-ops. A day directly following the last active day
// extends the streak; any larger gap (or first ever use) resets it to 1.
// LongestStreak is the running maximum.
func (s *Service) UpdateStreak() models.Streak {
	now := s.now()
	today := now.Format(dateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)

	streak := s.Streak()
	if streak.LastActiveDate == today {
		return streak
	}

	if streak.LastActiveDate == yesterday {
		streak.CurrentStreak++
	} else {
		streak.CurrentStreak = 1
	}
	streak.LastActiveDate = today
	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}

	s.kv.Set(store.KeyStreak, streak)
	return streak
}
