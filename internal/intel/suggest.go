package intel

import (
	"fmt"
	"time"

	"github.com/jarvis-assistant/jarvisd/internal/models"
)

// ProactiveSuggestion produces a single suggested action from the local clock
// and the profile's first goal. It reads no other state.
func ProactiveSuggestion(now time.Time, profile models.UserProfile) string {
	h := now.Hour()
	switch {
	case h >= 6 && h < 10:
		return "☀️ Subah ho gayi! Aaj ka kaam plan karein?"
	case h >= 12 && h < 14:
		return "🍽️ Lunch break mein kuch useful karna hai?"
	case h >= 17 && h < 19:
		return "📊 Din kaisa raha? Journal likhein?"
	case h >= 22 || h < 2:
		return "🌙 Der ho rahi hai Sir — rest karo, kal continue!"
	}
	if len(profile.Goals) > 0 {
		return fmt.Sprintf("🎯 Aaj %q pe kuch progress hua?", profile.Goals[0])
	}
	return "💡 Koi tool dhundhna hai ya koi kaam?"
}

// greetings is indexed by relationship level; higher levels are more
// familiar.
var greetings = []string{
	"Hello%s! Main JARVIS hoon. Kya karna hai?",
	"Wapas aaye%s! Kya karna hai aaj?%s",
	"Aye bhai%s! Kya scene hai aaj? 😎%s",
	"AAYO%s! Aaj kya banayenge? 🔥%s",
	"Boss%s aa gaye! Bolo kya karna hai 🤖%s",
}

// Greeting returns the session-start greeting for a relationship level,
// personalized with the profile name and streak when available.
func Greeting(level int, profile models.UserProfile, streak int) string {
	name := ""
	if profile.Name != "" {
		name = ", " + profile.Name
	}
	streakText := ""
	if streak > 1 {
		streakText = fmt.Sprintf(" 🔥 %d din streak!", streak)
	}

	i := level - 1
	if i < 0 {
		i = 0
	}
	if i >= len(greetings) {
		i = len(greetings) - 1
	}
	if i == 0 {
		return fmt.Sprintf(greetings[0], name)
	}
	return fmt.Sprintf(greetings[i], name, streakText)
}
