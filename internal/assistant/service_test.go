package assistant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/jarvis-assistant/jarvisd/internal/backend"
	"github.com/jarvis-assistant/jarvisd/internal/intel"
	"github.com/jarvis-assistant/jarvisd/internal/memory"
	"github.com/jarvis-assistant/jarvisd/internal/models"
	"github.com/jarvis-assistant/jarvisd/internal/store"
)

type stubBackend struct {
	resp *backend.ReplyResponse
	err  error
	last *backend.ReplyRequest
}

func (s *stubBackend) Reply(_ context.Context, req *backend.ReplyRequest) (*backend.ReplyResponse, error) {
	s.last = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func setupAssistant(t *testing.T, rb ReplyBackend) (*Service, *memory.Service) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv := store.NewKV(db, 0, logger)
	mem := memory.NewService(kv, logger)
	engine := intel.NewEngine(nil, logger)
	return NewService(mem, engine, rb, kv, logger), mem
}

func TestProcessTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("blank input is rejected pre-flight", func(t *testing.T) {
		svc, mem := setupAssistant(t, nil)

		if _, err := svc.ProcessTurn(ctx, "   \n\t"); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("expected ErrEmptyInput, got %v", err)
		}
		if len(mem.Chats()) != 0 {
			t.Fatal("blank input must not mutate state")
		}
		if mem.Relationship().TotalInteractions != 0 {
			t.Fatal("blank input must not count as an interaction")
		}
	})

	t.Run("backend reply is recorded with classification", func(t *testing.T) {
		rb := &stubBackend{resp: &backend.ReplyResponse{
			Response:   "Here you go Sir",
			Confidence: 0.9,
			Tools:      []string{"Canva"},
		}}
		svc, mem := setupAssistant(t, rb)

		result, err := svc.ProcessTurn(ctx, "best free tool for logo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Mode != models.ModeToolFinder {
			t.Fatalf("expected tool-finder mode, got %s", result.Mode)
		}
		if result.Reply.Content != "Here you go Sir" {
			t.Fatalf("unexpected reply %q", result.Reply.Content)
		}
		if len(result.Reply.Tools) != 1 || result.Reply.Tools[0].Name != "Canva" {
			t.Fatalf("expected synthesized tool links, got %+v", result.Reply.Tools)
		}
		if result.Degraded || result.Notice != "" {
			t.Fatal("successful backend turn should not be degraded")
		}

		chat := mem.ActiveChat()
		if chat == nil || len(chat.Messages) != 2 {
			t.Fatalf("expected user+reply persisted, got %+v", chat)
		}
		if chat.Title != "best free tool for logo" {
			t.Fatalf("expected title from first user message, got %q", chat.Title)
		}
		if mem.Relationship().TotalInteractions != 1 {
			t.Fatal("interaction not recorded")
		}
		if mem.Streak().CurrentStreak != 1 {
			t.Fatal("streak not recorded")
		}
	})

	t.Run("request carries context, level, and personality", func(t *testing.T) {
		rb := &stubBackend{resp: &backend.ReplyResponse{Response: "ok"}}
		svc, _ := setupAssistant(t, rb)

		for i := 0; i < 5; i++ {
			if _, err := svc.ProcessTurn(ctx, "hello again"); err != nil {
				t.Fatalf("turn %d: %v", i, err)
			}
		}

		if rb.last == nil {
			t.Fatal("backend never called")
		}
		if len(rb.last.Context) > 6 {
			t.Fatalf("context window exceeded: %d messages", len(rb.last.Context))
		}
		if rb.last.RelationshipLevel != 1 {
			t.Fatalf("expected level 1 in request, got %d", rb.last.RelationshipLevel)
		}
		if rb.last.PersonalityMode != models.PersonalityDefault {
			t.Fatalf("expected default personality, got %s", rb.last.PersonalityMode)
		}
	})

	t.Run("backend failure degrades to local fallback", func(t *testing.T) {
		rb := &stubBackend{err: errors.New("connection refused")}
		svc, _ := setupAssistant(t, rb)

		result, err := svc.ProcessTurn(ctx, "need a logo")
		if err != nil {
			t.Fatalf("backend failure must not surface: %v", err)
		}
		if !result.Degraded || result.Notice == "" {
			t.Fatal("expected degraded result with notice")
		}
		if result.Reply.Intent != "image" {
			t.Fatalf("expected keyword fallback category, got %q", result.Reply.Intent)
		}
		if len(result.Reply.Tools) != 3 || result.Reply.Tools[0].Name != "Canva" {
			t.Fatalf("expected keyword fallback tools, got %+v", result.Reply.Tools)
		}
	})

	t.Run("useKeywordFallback flag bypasses backend text", func(t *testing.T) {
		rb := &stubBackend{resp: &backend.ReplyResponse{
			Response:           "ignore me",
			UseKeywordFallback: true,
		}}
		svc, _ := setupAssistant(t, rb)

		result, err := svc.ProcessTurn(ctx, "need a logo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Reply.Content == "ignore me" {
			t.Fatal("backend text should have been bypassed")
		}
		if result.Degraded {
			t.Fatal("intentional bypass is not a degraded turn")
		}
	})

	t.Run("no backend uses canned reply for plain chat", func(t *testing.T) {
		svc, _ := setupAssistant(t, nil)

		result, err := svc.ProcessTurn(ctx, "achha theek hai")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Reply.Content == "" {
			t.Fatal("expected canned reply content")
		}
		if result.Reply.Role != models.RoleJarvis {
			t.Fatalf("expected jarvis role, got %s", result.Reply.Role)
		}
	})

	t.Run("tony stark comment is appended", func(t *testing.T) {
		rb := &stubBackend{resp: &backend.ReplyResponse{
			Response:         "Done Sir",
			TonyStarkComment: "As always, flawless execution.",
		}}
		svc, _ := setupAssistant(t, rb)

		result, err := svc.ProcessTurn(ctx, "schedule something")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "Done Sir\n\nAs always, flawless execution."
		if result.Reply.Content != want {
			t.Fatalf("expected appended aside, got %q", result.Reply.Content)
		}
	})
}

func TestGreetingAndSuggestion(t *testing.T) {
	svc, mem := setupAssistant(t, nil)
	mem.ExtractProfileInfo("my name is Arjun.")

	if g := svc.Greeting(); g == "" {
		t.Fatal("expected a greeting")
	}
	if s := svc.Suggestion(); s == "" {
		t.Fatal("expected a suggestion")
	}
}
