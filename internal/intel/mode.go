// Package intel is the heuristic classification engine: deterministic,
// explainable, keyword/regex-driven detection of mode, tone, and emotion,
// plus the table-driven local reply fallback.
package intel

import (
	"regexp"
	"strings"

	"github.com/jarvis-assistant/jarvisd/internal/models"
)

// modeEntry binds a mode to its keyword set. Table order is priority order:
// the first entry with any keyword hit wins.
type modeEntry struct {
	mode     models.Mode
	keywords []string
}

var modeTable = []modeEntry{
	{models.ModeToolFinder, []string{"tool", "app", "website", "banana", "chahiye", "suggest", "best", "free", "kaunsa"}},
	{models.ModeCode, []string{"code", "program", "function", "bug", "script", "python", "javascript", "error", "fix"}},
	{models.ModeTranslate, []string{"translate", "meaning", "anuvad", "matlab", "english mein", "hindi mein"}},
	{models.ModeSummary, []string{"summarize", "summary", "short", "tldr", "short karo", "brief"}},
	{models.ModeWorkflow, []string{"workflow", "steps", "process", "automate", "chain", "sequence"}},
	{models.ModeJournal, []string{"journal", "diary", "aaj ka din", "mood", "feeling", "kaisa raha"}},
	{models.ModeReminder, []string{"remind", "yaad dilana", "alarm", "schedule", "notification", "baje"}},
	{models.ModeChat, []string{"what", "how", "why", "explain", "kya", "kaise", "batao", "tell me"}},
}

// DetectMode assigns the coarse intent category for a user turn. The default
// is general chat.
func DetectMode(input string) models.Mode {
	lower := strings.ToLower(input)
	for _, entry := range modeTable {
		if matchAny(lower, entry.keywords) {
			return entry.mode
		}
	}
	return models.ModeChat
}

// matchAny reports whether any keyword occurs in the lower-cased input.
// Single words match on word boundaries so that e.g. "app" does not fire
// inside "happening"; multi-word phrases match as substrings.
func matchAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(k, " ") {
			if strings.Contains(lower, k) {
				return true
			}
			continue
		}
		if wordRegex(k).MatchString(lower) {
			return true
		}
	}
	return false
}

var wordRegexes = map[string]*regexp.Regexp{}

func wordRegex(word string) *regexp.Regexp {
	if re, ok := wordRegexes[word]; ok {
		return re
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
	wordRegexes[word] = re
	return re
}

func init() {
	// All single-word keywords compile at init; the map is read-only after
	// this point, so concurrent lookups need no locking.
	for _, entry := range modeTable {
		for _, k := range entry.keywords {
			if !strings.Contains(k, " ") {
				wordRegex(k)
			}
		}
	}
	for _, row := range keywordTable {
		if !strings.Contains(row.keyword, " ") {
			wordRegex(row.keyword)
		}
	}
}
