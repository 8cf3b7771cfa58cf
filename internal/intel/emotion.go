package intel

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/jarvis-assistant/jarvisd/internal/models"
)

// Sentiment is an optional best-effort polarity classifier. Implementations
// may be absent or fail at call time; correctness never depends on them, only
// precision.
type Sentiment interface {
	Polarity(ctx context.Context, text string) (positive, negative bool, err error)
}

// emotionRule is one step of the deterministic cascade, evaluated in fixed
// priority order.
type emotionRule struct {
	emotion models.Emotion
	pattern *regexp.Regexp
}

var emotionCascade = []emotionRule{
	{models.EmotionHappy, regexp.MustCompile(`😄|😊|😍|haha|lol|great|amazing|awesome|bahut accha|mast|khushi|happy`)},
	{models.EmotionSad, regexp.MustCompile(`😢|😭|sad|dukhi|bura|upset|akela|depressed|kuch nahi|chod do`)},
	{models.EmotionUrgent, regexp.MustCompile(`jaldi|asap|urgent|abhi|immediately|fast|quick|please help|zaruri`)},
	{models.EmotionFrustrated, regexp.MustCompile(`nahi chal|broken|galat|error|problem|issue|frustrated|pareshaan|😤|😠`)},
	{models.EmotionExcited, regexp.MustCompile(`wow|🔥|🚀|incredible|excited|kya baat|mazaa|fun`)},
}

// Engine bundles the optional sentiment enrichment with the deterministic
// cascade.
type Engine struct {
	sentiment Sentiment
	logger    *slog.Logger
}

// NewEngine creates the classification engine. sentiment may be nil.
func NewEngine(sentiment Sentiment, logger *slog.Logger) *Engine {
	return &Engine{sentiment: sentiment, logger: logger}
}

// DetectEmotion classifies the emotional tone of a user turn. The enrichment
// path is an optimization only: any fault or inconclusive answer falls
// through silently to the keyword cascade, which defaults to neutral.
func (e *Engine) DetectEmotion(ctx context.Context, input string) models.Emotion {
	if e.sentiment != nil {
		positive, negative, err := e.sentiment.Polarity(ctx, input)
		if err == nil {
			if positive && !negative {
				return models.EmotionHappy
			}
			if negative {
				return models.EmotionFrustrated
			}
		} else {
			e.logger.Debug("sentiment enrichment unavailable", "error", err)
		}
	}

	return cascadeEmotion(input)
}

func cascadeEmotion(input string) models.Emotion {
	lower := strings.ToLower(input)
	for _, rule := range emotionCascade {
		if rule.pattern.MatchString(lower) {
			return rule.emotion
		}
	}
	return models.EmotionNeutral
}
