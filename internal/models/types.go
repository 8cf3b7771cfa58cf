package models

// Mode is the coarse intent category assigned to a user turn.
type Mode string

const (
	ModeToolFinder Mode = "tool-finder"
	ModeCode       Mode = "code"
	ModeTranslate  Mode = "translate"
	ModeSummary    Mode = "summary"
	ModeWorkflow   Mode = "workflow"
	ModeJournal    Mode = "journal"
	ModeReminder   Mode = "reminder"
	ModeChat       Mode = "chat"
)

// Tone is the conversational register detected from recent messages.
type Tone string

const (
	ToneHinglish Tone = "hinglish"
	ToneFormal   Tone = "formal"
	ToneBrief    Tone = "brief"
	ToneDetailed Tone = "detailed"
	ToneCasual   Tone = "casual"
)

// Emotion is the emotional tone detected in a user turn.
type Emotion string

const (
	EmotionHappy      Emotion = "happy"
	EmotionSad        Emotion = "sad"
	EmotionUrgent     Emotion = "urgent"
	EmotionFrustrated Emotion = "frustrated"
	EmotionExcited    Emotion = "excited"
	EmotionNeutral    Emotion = "neutral"
)

// PersonalityMode is a selectable response-style directive applied to the
// remote backend's generation.
type PersonalityMode string

const (
	PersonalityDefault     PersonalityMode = "default"
	PersonalityMotivation  PersonalityMode = "motivation"
	PersonalityChill       PersonalityMode = "chill"
	PersonalityFocus       PersonalityMode = "focus"
	PersonalityPhilosopher PersonalityMode = "philosopher"
	PersonalityRoast       PersonalityMode = "roast"
)

var validPersonalities = map[PersonalityMode]bool{
	PersonalityDefault:     true,
	PersonalityMotivation:  true,
	PersonalityChill:       true,
	PersonalityFocus:       true,
	PersonalityPhilosopher: true,
	PersonalityRoast:       true,
}

func (p PersonalityMode) IsValid() bool {
	return validPersonalities[p]
}
