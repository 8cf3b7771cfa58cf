package memory

import (
	"github.com/jarvis-assistant/jarvisd/internal/models"
	"github.com/jarvis-assistant/jarvisd/internal/store"
)

// PreferencesPatch applies field-by-field updates; nil fields are left as-is.
type PreferencesPatch struct {
	Theme                *string                 `json:"theme,omitempty"`
	Language             *string                 `json:"language,omitempty"`
	VoiceEnabled         *bool                   `json:"voiceEnabled,omitempty"`
	AutoExecute          *bool                   `json:"autoExecute,omitempty"`
	ShowConfidence       *bool                   `json:"showConfidence,omitempty"`
	TTSEnabled           *bool                   `json:"ttsEnabled,omitempty"`
	ShowAvatar           *bool                   `json:"showAvatar,omitempty"`
	PersonalityMode      *models.PersonalityMode `json:"personalityMode,omitempty"`
	HapticEnabled        *bool                   `json:"hapticEnabled,omitempty"`
	NotificationsEnabled *bool                   `json:"notificationsEnabled,omitempty"`
	LowPowerMode         *bool                   `json:"lowPowerMode,omitempty"`
}

// Preferences returns user preferences with documented defaults.
func (s *Service) Preferences() models.Preferences {
	return store.Get(s.kv, store.KeyPreferences, models.Preferences{
		Theme:                "dark",
		Language:             "auto",
		VoiceEnabled:         true,
		AutoExecute:          false,
		ShowConfidence:       true,
		TTSEnabled:           false,
		ShowAvatar:           true,
		PersonalityMode:      models.PersonalityDefault,
		HapticEnabled:        true,
		NotificationsEnabled: false,
		LowPowerMode:         false,
	})
}

// SetPreferences merges a patch into the current preferences.
func (s *Service) SetPreferences(patch PreferencesPatch) models.Preferences {
	p := s.Preferences()

	if patch.Theme != nil {
		p.Theme = *patch.Theme
	}
	if patch.Language != nil {
		p.Language = *patch.Language
	}
	if patch.VoiceEnabled != nil {
		p.VoiceEnabled = *patch.VoiceEnabled
	}
	if patch.AutoExecute != nil {
		p.AutoExecute = *patch.AutoExecute
	}
	if patch.ShowConfidence != nil {
		p.ShowConfidence = *patch.ShowConfidence
	}
	if patch.TTSEnabled != nil {
		p.TTSEnabled = *patch.TTSEnabled
	}
	if patch.ShowAvatar != nil {
		p.ShowAvatar = *patch.ShowAvatar
	}
	if patch.PersonalityMode != nil && patch.PersonalityMode.IsValid() {
		p.PersonalityMode = *patch.PersonalityMode
	}
	if patch.HapticEnabled != nil {
		p.HapticEnabled = *patch.HapticEnabled
	}
	if patch.NotificationsEnabled != nil {
		p.NotificationsEnabled = *patch.NotificationsEnabled
	}
	if patch.LowPowerMode != nil {
		p.LowPowerMode = *patch.LowPowerMode
	}

	s.kv.Set(store.KeyPreferences, p)
	return p
}

// TrackToolClick bumps the usage counter for a recommended tool.
func (s *Service) TrackToolClick(toolID string) {
	prefs := store.Get(s.kv, store.KeyLinkPrefs, map[string]models.ToolStats{})
	stats := prefs[toolID]
	stats.UsageCount++
	stats.LastUsed = s.now().UnixMilli()
	prefs[toolID] = stats
	s.kv.Set(store.KeyLinkPrefs, prefs)
}

// ToolPrefPatch updates the user-facing flags on a tool link; nil fields are
// left as-is.
type ToolPrefPatch struct {
	IsFavorite *bool `json:"isFavorite,omitempty"`
	IsHidden   *bool `json:"isHidden,omitempty"`
}

// SetToolPref merges the patch into the tool's stats and returns the result.
func (s *Service) SetToolPref(toolID string, patch ToolPrefPatch) models.ToolStats {
	prefs := store.Get(s.kv, store.KeyLinkPrefs, map[string]models.ToolStats{})
	stats := prefs[toolID]
	if patch.IsFavorite != nil {
		stats.IsFavorite = *patch.IsFavorite
	}
	if patch.IsHidden != nil {
		stats.IsHidden = *patch.IsHidden
	}
	prefs[toolID] = stats
	s.kv.Set(store.KeyLinkPrefs, prefs)
	return stats
}

// ToolUsage reports how many times a tool link was clicked.
func (s *Service) ToolUsage(toolID string) int {
	prefs := store.Get(s.kv, store.KeyLinkPrefs, map[string]models.ToolStats{})
	return prefs[toolID].UsageCount
}
