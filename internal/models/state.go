package models

// Relationship is the gamified progression singleton. Level is a pure
// function of TotalInteractions and is recomputed, never assigned directly.
type Relationship struct {
	TotalInteractions int      `json:"totalInteractions"`
	Level             int      `json:"level"`
	FirstMet          int64    `json:"firstMet"`
	LastSeen          int64    `json:"lastSeen"`
	NicknamePref      string   `json:"nicknamePref,omitempty"`
	PersonalFacts     []string `json:"personalFacts"`
	XP                int      `json:"xp"`
}

// Language is the user's preferred conversational register.
type Language string

const (
	LanguageHindi    Language = "hindi"
	LanguageEnglish  Language = "english"
	LanguageHinglish Language = "hinglish"
)

// UserProfile holds facts derived from free-text user input. Mutated only by
// merge-update; the goals list is a sliding window of the 5 most recent.
type UserProfile struct {
	Name        string   `json:"name,omitempty"`
	Language    Language `json:"language"`
	Goals       []string `json:"goals"`
	Likes       []string `json:"likes"`
	Dislikes    []string `json:"dislikes"`
	Habits      []string `json:"habits"`
	ChatStyle   string   `json:"chatStyle"`
	LastUpdated int64    `json:"lastUpdated"`
}

// Preferences is the flat record of explicit user-chosen settings.
type Preferences struct {
	Theme                string          `json:"theme"`
	Language             string          `json:"language"`
	VoiceEnabled         bool            `json:"voiceEnabled"`
	AutoExecute          bool            `json:"autoExecute"`
	ShowConfidence       bool            `json:"showConfidence"`
	TTSEnabled           bool            `json:"ttsEnabled"`
	ShowAvatar           bool            `json:"showAvatar"`
	PersonalityMode      PersonalityMode `json:"personalityMode"`
	HapticEnabled        bool            `json:"hapticEnabled"`
	NotificationsEnabled bool            `json:"notificationsEnabled"`
	LowPowerMode         bool            `json:"lowPowerMode"`
}

// Streak tracks consecutive calendar days of use, device-local calendar.
// LongestStreak >= CurrentStreak always.
type Streak struct {
	CurrentStreak  int    `json:"currentStreak"`
	LastActiveDate string `json:"lastActiveDate"`
	LongestStreak  int    `json:"longestStreak"`
}

// ToolStats is the per-tool usage record kept under the link-prefs key.
type ToolStats struct {
	UsageCount int   `json:"usageCount"`
	LastUsed   int64 `json:"lastUsed"`
	IsFavorite bool  `json:"isFavorite"`
	IsHidden   bool  `json:"isHidden"`
}

// StorageStatus is the derived (never persisted) view of store capacity.
type StorageStatus struct {
	Used     int64 `json:"used"`
	Total    int64 `json:"total"`
	Percent  int   `json:"percent"`
	Warning  bool  `json:"warning"`
	Critical bool  `json:"critical"`
}

// ExportVersion identifies the backup snapshot format.
const ExportVersion = "6.0.0"

// Snapshot is the full-state export artifact.
type Snapshot struct {
	Chats        []Chat         `json:"chats"`
	Preferences  Preferences    `json:"preferences"`
	Relationship Relationship   `json:"relationship"`
	Streak       Streak         `json:"streak"`
	Analytics    map[string]any `json:"analytics"`
	Profile      UserProfile    `json:"profile"`
	Exported     string         `json:"exported"`
	Version      string         `json:"version"`
}
