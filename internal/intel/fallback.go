package intel

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"

	"github.com/jarvis-assistant/jarvisd/internal/models"
)

// keywordRow is one entry of the local reply table. Scanned in declaration
// order; the first keyword found in the input wins.
type keywordRow struct {
	keyword  string
	category string
	tools    []string
	response string
}

var keywordTable = []keywordRow{
	{"logo", "image", []string{"Canva", "Looka", "AIFreeForever"}, "Logo ke liye yeh best free tools hain:"},
	{"image", "image", []string{"Flux AI", "Raphael", "Perchance"}, "AI image generate karne ke liye:"},
	{"video", "video", []string{"Pika Labs", "Dreamlux", "Upsampler Video"}, "Video banane ke liye:"},
	{"music", "audio", []string{"Suno", "Udio", "Riffusion"}, "Music ke liye:"},
	{"code", "code", []string{"Replit", "CodeSandbox", "GitHub"}, "Coding ke liye:"},
	{"design", "design", []string{"Canva", "Figma", "Penpot"}, "Design ke liye:"},
	{"write", "writing", []string{"Rytr", "Quillbot", "Writesonic"}, "Writing ke liye:"},
	{"translate", "chat", []string{"ChatGPT", "Gemini", "DeepSeek"}, "Translation ke liye:"},
	{"remove", "image-edit", []string{"Clipdrop BG", "Remove.bg", "Magic Studio"}, "Background remove ke liye:"},
	{"voice", "tts", []string{"ElevenLabs", "NaturalReaders", "Play.ht"}, "Voice/TTS ke liye:"},
	{"upscale", "upscale", []string{"Upsampler", "ImgUpscaler", "Nero AI"}, "Image upscale ke liye:"},
	{"weather", "productivity", []string{"Weather.com", "AccuWeather"}, "Weather check ke liye:"},
}

// FallbackReply is a keyword-grounded canned reply with recommended tools.
type FallbackReply struct {
	Category string
	Response string
	Tools    []models.ToolRef
}

// KeywordFallback scans the table in order and returns the first match, or
// nil when no keyword appears in the input.
func KeywordFallback(input string) *FallbackReply {
	lower := strings.ToLower(input)
	for _, row := range keywordTable {
		if !matchAny(lower, []string{row.keyword}) {
			continue
		}
		tools := make([]models.ToolRef, 0, len(row.tools))
		for _, name := range row.tools {
			tools = append(tools, toolRef(name))
		}
		return &FallbackReply{
			Category: row.category,
			Response: row.response,
			Tools:    tools,
		}
	}
	return nil
}

// ToolLinks synthesizes tool references for a list of tool names, e.g. from
// a backend response that carries names only.
func ToolLinks(names []string) []models.ToolRef {
	if len(names) == 0 {
		return nil
	}
	refs := make([]models.ToolRef, 0, len(names))
	for _, n := range names {
		refs = append(refs, toolRef(n))
	}
	return refs
}

// toolRef synthesizes a tool reference as a search-engine link from the tool
// name.
func toolRef(name string) models.ToolRef {
	return models.ToolRef{
		ID:   slug(name),
		Name: name,
		URL:  "https://www.google.com/search?q=" + url.QueryEscape(name),
	}
}

func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

// cannedReplies holds the emotion-conditioned canned responses used when
// neither the backend nor the keyword table produced anything.
var cannedReplies = map[models.Emotion][]string{
	models.EmotionHappy: {
		"Sir, aap khush hain — theoretically main bhi khush hoon. 😏",
		"Wah Sir! Mood ekdum mast hai aaj.",
	},
	models.EmotionSad: {
		"Sir, I've analyzed your situation. Technically it could be worse. Marginally. 🫂",
		"Tension mat lo Sir. JARVIS hai na. Bata do kya problem hai.",
	},
	models.EmotionUrgent: {
		"Urgent mode activated Sir. Bolo kya chahiye. ⚡",
		"Samajh gaya Sir — jaldi karte hain.",
	},
	models.EmotionFrustrated: {
		"Sir, frustration levels rising. Let me fix this before you throw something. 😅",
		"Arey yaar, kya ho gaya? Batao main handle karta hoon.",
	},
	models.EmotionExcited: {
		"Sir's excitement level: Maximum. Let's go! 🚀",
		"Yeh toh mast idea hai Sir! Shuru karte hain!",
	},
	models.EmotionNeutral: {
		"Sir, bolo kya karna hai. Main ready hoon.",
		"JARVIS at your service, Sir. 🤖",
	},
}

// streakBragThreshold is the streak length from which canned replies start
// mentioning it.
const streakBragThreshold = 7

// CannedReply produces an emotion-conditioned canned response, annotated with
// the streak length once it is worth bragging about.
func CannedReply(emotion models.Emotion, streak int) string {
	variants, ok := cannedReplies[emotion]
	if !ok {
		variants = cannedReplies[models.EmotionNeutral]
	}
	base := variants[rand.Intn(len(variants))]
	if streak >= streakBragThreshold {
		return base + fmt.Sprintf(" (%d din ki streak — impressive Sir! 🔥)", streak)
	}
	return base
}
