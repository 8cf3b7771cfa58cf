package intel

import (
	"strings"
	"testing"

	"github.com/jarvis-assistant/jarvisd/internal/models"
)

func msgs(contents ...string) []models.Message {
	out := make([]models.Message, len(contents))
	for i, c := range contents {
		out[i] = models.Message{Content: c}
	}
	return out
}

func TestDetectTone(t *testing.T) {
	t.Run("casual markers win", func(t *testing.T) {
		if got := DetectTone(msgs("arre yaar kya kar raha hai")); got != models.ToneHinglish {
			t.Fatalf("expected hinglish, got %s", got)
		}
	})

	t.Run("politeness markers", func(t *testing.T) {
		if got := DetectTone(msgs("could you explain this concept to me")); got != models.ToneFormal {
			t.Fatalf("expected formal, got %s", got)
		}
	})

	t.Run("short messages are brief", func(t *testing.T) {
		if got := DetectTone(msgs("ok", "hm", "sure")); got != models.ToneBrief {
			t.Fatalf("expected brief, got %s", got)
		}
	})

	t.Run("long messages are detailed", func(t *testing.T) {
		long := strings.Repeat("words and more words ", 10)
		if got := DetectTone(msgs(long, long, long)); got != models.ToneDetailed {
			t.Fatalf("expected detailed, got %s", got)
		}
	})

	t.Run("only the last three messages count", func(t *testing.T) {
		history := msgs("bhai sun na", "first", "second message here padding", "third message here padding")
		// The casual marker is in the 4th-from-last message and must be
		// ignored.
		if got := DetectTone(history); got == models.ToneHinglish {
			t.Fatal("older casual marker should not influence tone")
		}
	})

	t.Run("empty history falls back to brief", func(t *testing.T) {
		if got := DetectTone(nil); got != models.ToneBrief {
			t.Fatalf("expected brief for empty history, got %s", got)
		}
	})
}
