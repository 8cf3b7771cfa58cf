package memory

import (
	"testing"
	"time"
)

func TestUpdateStreak(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 9, 30, 0, 0, time.Local)
	}

	t.Run("first ever use starts at 1", func(t *testing.T) {
		svc := setupService(t)
		svc.now = fixedClock(day(1))

		s := svc.UpdateStreak()
		if s.CurrentStreak != 1 || s.LongestStreak != 1 {
			t.Fatalf("expected streak 1/1, got %+v", s)
		}
		if s.LastActiveDate != "2025-03-01" {
			t.Fatalf("unexpected lastActiveDate %q", s.LastActiveDate)
		}
	})

	t.Run("same-day calls are idempotent", func(t *testing.T) {
		svc := setupService(t)
		svc.now = fixedClock(day(1))

		first := svc.UpdateStreak()
		svc.now = fixedClock(day(1).Add(8 * time.Hour))
		second := svc.UpdateStreak()
		if first != second {
			t.Fatalf("same-day update changed streak: %+v vs %+v", first, second)
		}
	})

	t.Run("consecutive days increment", func(t *testing.T) {
		svc := setupService(t)
		for d := 1; d <= 4; d++ {
			svc.now = fixedClock(day(d))
			s := svc.UpdateStreak()
			if s.CurrentStreak != d {
				t.Fatalf("day %d: expected streak %d, got %d", d, d, s.CurrentStreak)
			}
		}
	})

	t.Run("gap of two or more days resets to 1", func(t *testing.T) {
		svc := setupService(t)
		svc.now = fixedClock(day(1))
		svc.UpdateStreak()
		svc.now = fixedClock(day(2))
		svc.UpdateStreak()

		svc.now = fixedClock(day(5))
		s := svc.UpdateStreak()
		if s.CurrentStreak != 1 {
			t.Fatalf("expected reset to 1 after gap, got %d", s.CurrentStreak)
		}
		if s.LongestStreak != 2 {
			t.Fatalf("longest streak should persist at 2, got %d", s.LongestStreak)
		}
	})

	t.Run("longest streak never decreases", func(t *testing.T) {
		svc := setupService(t)
		longest := 0
		days := []int{1, 2, 3, 7, 8, 12, 13, 14, 15, 20}
		for _, d := range days {
			svc.now = fixedClock(day(d))
			s := svc.UpdateStreak()
			if s.LongestStreak < longest {
				t.Fatalf("longest streak decreased from %d to %d on day %d", longest, s.LongestStreak, d)
			}
			longest = s.LongestStreak
		}
		if longest != 4 {
			t.Fatalf("expected longest run of 4 (days 12-15), got %d", longest)
		}
	})

	t.Run("month boundary counts as consecutive", func(t *testing.T) {
		svc := setupService(t)
		svc.now = fixedClock(time.Date(2025, 3, 31, 23, 0, 0, 0, time.Local))
		svc.UpdateStreak()

		svc.now = fixedClock(time.Date(2025, 4, 1, 7, 0, 0, 0, time.Local))
		s := svc.UpdateStreak()
		if s.CurrentStreak != 2 {
			t.Fatalf("expected streak 2 across month boundary, got %d", s.CurrentStreak)
		}
	})
}
