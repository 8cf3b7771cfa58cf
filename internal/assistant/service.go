// Package assistant orchestrates a conversational turn: profile extraction,
// classification, the remote reply request, local fallback, and state
// recording.
package assistant

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jarvis-assistant/jarvisd/internal/backend"
	"github.com/jarvis-assistant/jarvisd/internal/intel"
	"github.com/jarvis-assistant/jarvisd/internal/memory"
	"github.com/jarvis-assistant/jarvisd/internal/models"
	"github.com/jarvis-assistant/jarvisd/internal/store"
)

// ErrEmptyInput rejects blank turns pre-flight: no state is mutated and no
// request is issued.
var ErrEmptyInput = errors.New("empty input")

// contextWindow is how many trailing messages accompany a backend request.
const contextWindow = 6

// technicalIssueNotice is the transient error indicator shown alongside the
// fallback reply when the backend fails. It is distinct from the assistant's
// own message.
const technicalIssueNotice = "Thoda technical issue aa gaya — dobara try karo."

// ReplyBackend abstracts the remote chat backend so it can be absent or
// stubbed.
type ReplyBackend interface {
	Reply(ctx context.Context, req *backend.ReplyRequest) (*backend.ReplyResponse, error)
}

// TurnResult is everything a caller needs to render one completed turn.
type TurnResult struct {
	UserMessage   models.Message `json:"userMessage"`
	Reply         models.Message `json:"reply"`
	Mode          models.Mode    `json:"mode"`
	Emotion       models.Emotion `json:"emotion"`
	Tone          models.Tone    `json:"tone"`
	Level         int            `json:"level"`
	JustLeveledUp bool           `json:"justLeveledUp"`
	Streak        int            `json:"streak"`
	Degraded      bool           `json:"degraded"`
	Notice        string         `json:"notice,omitempty"`
}

// Service wires the pipeline together.
type Service struct {
	mem     *memory.Service
	engine  *intel.Engine
	backend ReplyBackend
	kv      *store.KV
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates the assistant. replyBackend may be nil, in which case
// every turn uses the local fallback path.
func NewService(mem *memory.Service, engine *intel.Engine, replyBackend ReplyBackend, kv *store.KV, logger *slog.Logger) *Service {
	return &Service{
		mem:     mem,
		engine:  engine,
		backend: replyBackend,
		kv:      kv,
		logger:  logger,
		now:     time.Now,
	}
}

// ProcessTurn runs one full conversational turn for the given user input.
func (s *Service) ProcessTurn(ctx context.Context, input string) (*TurnResult, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyInput
	}

	// Side-effecting profile update; advisory and best-effort.
	s.mem.ExtractProfileInfo(input)

	mode := intel.DetectMode(input)
	emotion := s.engine.DetectEmotion(ctx, input)

	chat := s.mem.ActiveChat()
	if chat == nil {
		created := s.mem.NewChat()
		chat = &created
	}

	userMsg := models.Message{
		ID:        uuid.New().String(),
		Role:      models.RoleUser,
		Content:   input,
		Timestamp: s.now().UnixMilli(),
		Emotion:   emotion,
		Mode:      mode,
	}
	s.mem.AppendMessage(chat, userMsg)

	tone := intel.DetectTone(chat.Messages)

	reply, degraded := s.generateReply(ctx, input, chat, emotion)
	s.mem.AppendMessage(chat, reply)

	rel, leveledUp := s.mem.IncrementInteraction()
	streak := s.mem.UpdateStreak()

	if status := s.kv.StorageStatus(ctx); status.Critical {
		s.logger.Warn("storage critical, evicting old conversations", "percent", status.Percent)
		s.kv.AutoCleanStorage()
	}

	result := &TurnResult{
		UserMessage:   userMsg,
		Reply:         reply,
		Mode:          mode,
		Emotion:       emotion,
		Tone:          tone,
		Level:         rel.Level,
		JustLeveledUp: leveledUp,
		Streak:        streak.CurrentStreak,
		Degraded:      degraded,
	}
	if degraded {
		result.Notice = technicalIssueNotice
	}
	return result, nil
}

// generateReply asks the backend for a reply and falls back to the local
// keyword/canned table when the backend is absent, fails, or asks to be
// bypassed. The second return value reports degraded (failure) mode.
func (s *Service) generateReply(ctx context.Context, input string, chat *models.Chat, emotion models.Emotion) (models.Message, bool) {
	prefs := s.mem.Preferences()
	rel := s.mem.Relationship()

	if s.backend != nil {
		resp, err := s.backend.Reply(ctx, &backend.ReplyRequest{
			Input:             input,
			Context:           recentContext(chat.Messages),
			RelationshipLevel: rel.Level,
			PersonalityMode:   prefs.PersonalityMode,
		})
		if err != nil {
			s.logger.Warn("backend unavailable, using local fallback", "error", err)
			return s.localReply(input, emotion), true
		}
		if resp.UseKeywordFallback {
			return s.localReply(input, emotion), false
		}

		content := resp.Response
		if resp.TonyStarkComment != "" {
			content += "\n\n" + resp.TonyStarkComment
		}
		return models.Message{
			ID:         uuid.New().String(),
			Role:       models.RoleJarvis,
			Content:    content,
			Timestamp:  s.now().UnixMilli(),
			Confidence: resp.Confidence,
			Tools:      intel.ToolLinks(resp.Tools),
			Emotion:    models.Emotion(resp.Emotion),
		}, false
	}

	return s.localReply(input, emotion), false
}

// localReply produces the keyword-grounded reply, or an emotion-conditioned
// canned response when no keyword matches.
func (s *Service) localReply(input string, emotion models.Emotion) models.Message {
	msg := models.Message{
		ID:        uuid.New().String(),
		Role:      models.RoleJarvis,
		Timestamp: s.now().UnixMilli(),
		Emotion:   emotion,
	}

	if fb := intel.KeywordFallback(input); fb != nil {
		msg.Content = fb.Response
		msg.Intent = fb.Category
		msg.Tools = fb.Tools
		return msg
	}

	msg.Content = intel.CannedReply(emotion, s.mem.Streak().CurrentStreak)
	return msg
}

// recentContext converts the trailing messages into backend context pairs.
func recentContext(messages []models.Message) []backend.ContextMessage {
	if len(messages) > contextWindow {
		messages = messages[len(messages)-contextWindow:]
	}
	out := make([]backend.ContextMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, backend.ContextMessage{Role: string(m.Role), Content: m.Content})
	}
	return out
}

// Greeting returns the session-start greeting for the current state.
func (s *Service) Greeting() string {
	rel := s.mem.Relationship()
	return intel.Greeting(rel.Level, s.mem.Profile(), s.mem.Streak().CurrentStreak)
}

// Suggestion returns the proactive suggestion for the current clock and
// profile.
func (s *Service) Suggestion() string {
	return intel.ProactiveSuggestion(s.now(), s.mem.Profile())
}
