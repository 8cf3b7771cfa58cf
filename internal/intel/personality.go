package intel

import "github.com/jarvis-assistant/jarvisd/internal/models"

// personalityPrompts maps each personality mode to the style directive sent
// to the remote backend. The table is the full contract; this is data, not
// logic.
var personalityPrompts = map[models.PersonalityMode]string{
	models.PersonalityDefault:     "Be helpful, friendly, and professional. Mix Hindi and English naturally (Hinglish).",
	models.PersonalityMotivation:  `Be extremely motivating and energetic! Use emojis. "Tu kar sakta hai Sir! 💪🔥"`,
	models.PersonalityChill:       `Be super chill. Like a cool friend. "Arre yaar, tension mat le 😎"`,
	models.PersonalityFocus:       "Be concise and direct. No fluff. Only essential info. No emojis.",
	models.PersonalityPhilosopher: "Be thoughtful and deep. Ask meaningful questions. Share wisdom. 🤔",
	models.PersonalityRoast:       `Be witty and sarcastic like Tony Stark JARVIS. Playful roasts but always helpful. "Sir, aap phir wahi galti — fascinating 😏"`,
}

// PersonalityPrompt returns the style directive for a personality mode,
// defaulting to the default persona for unknown values.
func PersonalityPrompt(mode models.PersonalityMode) string {
	if p, ok := personalityPrompts[mode]; ok {
		return p
	}
	return personalityPrompts[models.PersonalityDefault]
}
