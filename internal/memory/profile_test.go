package memory

import (
	"fmt"
	"testing"

	"github.com/jarvis-assistant/jarvisd/internal/models"
)

func TestExtractProfileInfo(t *testing.T) {
	t.Run("english name declaration", func(t *testing.T) {
		svc := setupService(t)
		svc.ExtractProfileInfo("Hi there, my name is Arjun Mehta. Nice to meet you")

		if got := svc.Profile().Name; got != "Arjun Mehta" {
			t.Fatalf("expected name 'Arjun Mehta', got %q", got)
		}
	})

	t.Run("hinglish name declaration", func(t *testing.T) {
		svc := setupService(t)
		svc.ExtractProfileInfo("mera naam Priya hai")

		if got := svc.Profile().Name; got != "Priya" {
			t.Fatalf("expected name 'Priya', got %q", got)
		}
	})

	t.Run("later declaration overwrites", func(t *testing.T) {
		svc := setupService(t)
		svc.ExtractProfileInfo("my name is Arjun.")
		svc.ExtractProfileInfo("mera naam AJ hai")

		if got := svc.Profile().Name; got != "AJ" {
			t.Fatalf("expected overwritten name 'AJ', got %q", got)
		}
	})

	t.Run("non-match leaves profile untouched", func(t *testing.T) {
		svc := setupService(t)
		svc.ExtractProfileInfo("what's the weather like today")

		p := svc.Profile()
		if p.Name != "" || len(p.Goals) != 0 {
			t.Fatalf("expected untouched profile, got %+v", p)
		}
	})

	t.Run("goal declarations slide a window of 5", func(t *testing.T) {
		svc := setupService(t)
		for i := 1; i <= 6; i++ {
			svc.ExtractProfileInfo(fmt.Sprintf("i want to build project %d!", i))
		}

		goals := svc.Profile().Goals
		if len(goals) != 5 {
			t.Fatalf("expected 5 goals, got %d: %v", len(goals), goals)
		}
		for i, want := range []string{"build project 2", "build project 3", "build project 4", "build project 5", "build project 6"} {
			if goals[i] != want {
				t.Fatalf("goals[%d] = %q, want %q (oldest first, newest last)", i, goals[i], want)
			}
		}
	})

	t.Run("duplicate goals are not re-added", func(t *testing.T) {
		svc := setupService(t)
		svc.ExtractProfileInfo("i want to learn go!")
		svc.ExtractProfileInfo("i want to learn go!")

		if goals := svc.Profile().Goals; len(goals) != 1 {
			t.Fatalf("expected deduped single goal, got %v", goals)
		}
	})

	t.Run("hinglish goal declaration", func(t *testing.T) {
		svc := setupService(t)
		svc.ExtractProfileInfo("mujhe ek website banana hai")

		goals := svc.Profile().Goals
		if len(goals) != 1 || goals[0] != "ek website" {
			t.Fatalf("expected goal 'ek website', got %v", goals)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	svc := setupService(t)

	name := "Arjun"
	style := "formal"
	got := svc.UpdateProfile(ProfilePatch{Name: &name, ChatStyle: &style})

	if got.Name != "Arjun" {
		t.Errorf("name = %q, want Arjun", got.Name)
	}
	if got.ChatStyle != "formal" {
		t.Errorf("chatStyle = %q, want formal", got.ChatStyle)
	}
	if got.Language != models.LanguageHinglish {
		t.Errorf("untouched language = %q, want hinglish default", got.Language)
	}

	t.Run("later patch keeps earlier change", func(t *testing.T) {
		likes := []string{"chai", "cricket"}
		got := svc.UpdateProfile(ProfilePatch{Likes: &likes})
		if got.Name != "Arjun" {
			t.Errorf("name = %q, want Arjun after unrelated patch", got.Name)
		}
		if len(got.Likes) != 2 {
			t.Errorf("likes = %v, want two entries", got.Likes)
		}
	})
}
