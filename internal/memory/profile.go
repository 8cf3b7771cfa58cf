package memory

import (
	"regexp"
	"strings"

	"github.com/jarvis-assistant/jarvisd/internal/models"
	"github.com/jarvis-assistant/jarvisd/internal/store"
)

// maxGoals bounds the profile's goal list: the newest entry plus the four
// most recent prior ones.
const maxGoals = 5

// Declaration patterns: one phrasing per supported language register.
var (
	namePattern = regexp.MustCompile(`(?i)mera naam (.+?) hai|my name is (.+?)[.,!]`)
	goalPattern = regexp.MustCompile(`(?i)mujhe (.+?) banana hai|i want to (.+?)[.!]`)
)

// Profile returns the user profile, initialized with defaults on first read.
func (s *Service) Profile() models.UserProfile {
	return store.Get(s.kv, store.KeyProfile, models.UserProfile{
		Language:    models.LanguageHinglish,
		Goals:       []string{},
		Likes:       []string{},
		Dislikes:    []string{},
		Habits:      []string{},
		ChatStyle:   "casual",
		LastUpdated: s.now().UnixMilli(),
	})
}

// SaveProfile persists the profile, stamping LastUpdated.
func (s *Service) SaveProfile(p models.UserProfile) {
	p.LastUpdated = s.now().UnixMilli()
	s.kv.Set(store.KeyProfile, p)
}

// ProfilePatch applies field-by-field profile updates; nil fields are left
// as-is.
type ProfilePatch struct {
	Name      *string          `json:"name,omitempty"`
	Language  *models.Language `json:"language,omitempty"`
	Goals     *[]string        `json:"goals,omitempty"`
	Likes     *[]string        `json:"likes,omitempty"`
	Dislikes  *[]string        `json:"dislikes,omitempty"`
	Habits    *[]string        `json:"habits,omitempty"`
	ChatStyle *string          `json:"chatStyle,omitempty"`
}

// UpdateProfile merges the patch into the stored profile and returns the
// result.
func (s *Service) UpdateProfile(patch ProfilePatch) models.UserProfile {
	profile := s.Profile()
	if patch.Name != nil {
		profile.Name = *patch.Name
	}
	if patch.Language != nil {
		profile.Language = *patch.Language
	}
	if patch.Goals != nil {
		profile.Goals = *patch.Goals
	}
	if patch.Likes != nil {
		profile.Likes = *patch.Likes
	}
	if patch.Dislikes != nil {
		profile.Dislikes = *patch.Dislikes
	}
	if patch.Habits != nil {
		profile.Habits = *patch.Habits
	}
	if patch.ChatStyle != nil {
		profile.ChatStyle = *patch.ChatStyle
	}
	s.SaveProfile(profile)
	return s.Profile()
}

// ExtractProfileInfo runs the name and goal declaration patterns over raw
// free text and merges any matches into the profile. A non-match leaves the
// corresponding field untouched; this never fails and never blocks.
func (s *Service) ExtractProfileInfo(message string) {
	profile := s.Profile()
	changed := false

	if name := firstGroup(namePattern, message); name != "" {
		profile.Name = name
		changed = true
	}

	if goal := firstGroup(goalPattern, message); goal != "" {
		if !contains(profile.Goals, goal) {
			goals := profile.Goals
			if len(goals) > maxGoals-1 {
				goals = goals[len(goals)-(maxGoals-1):]
			}
			profile.Goals = append(append([]string{}, goals...), goal)
			changed = true
		}
	}

	if changed {
		s.SaveProfile(profile)
	}
}

// firstGroup returns the first non-empty capture group of the match, trimmed.
func firstGroup(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	for _, g := range m[1:] {
		if g != "" {
			return strings.TrimSpace(g)
		}
	}
	return ""
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
