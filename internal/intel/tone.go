package intel

import (
	"regexp"
	"strings"

	"github.com/jarvis-assistant/jarvisd/internal/models"
)

// toneWindow is how many trailing messages influence tone. Older context is
// deliberately ignored.
const toneWindow = 3

var (
	casualMarkers = regexp.MustCompile(`bhai|yaar|bro|dude|chill|boss|abe`)
	politeMarkers = regexp.MustCompile(`please|kindly|could you|would you|thank you`)
)

// DetectTone inspects the last messages for register markers, falling back to
// a length heuristic.
func DetectTone(messages []models.Message) models.Tone {
	recent := messages
	if len(recent) > toneWindow {
		recent = recent[len(recent)-toneWindow:]
	}

	parts := make([]string, 0, len(recent))
	for _, m := range recent {
		parts = append(parts, m.Content)
	}
	text := strings.ToLower(strings.Join(parts, " "))

	if casualMarkers.MatchString(text) {
		return models.ToneHinglish
	}
	if politeMarkers.MatchString(text) {
		return models.ToneFormal
	}

	avgLen := len(text) / toneWindow
	switch {
	case avgLen < 20:
		return models.ToneBrief
	case avgLen > 100:
		return models.ToneDetailed
	default:
		return models.ToneCasual
	}
}
