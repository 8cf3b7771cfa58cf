package memory

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jarvis-assistant/jarvisd/internal/models"
)

func userMessage(content string) models.Message {
	return models.Message{
		ID:      uuid.New().String(),
		Role:    models.RoleUser,
		Content: content,
	}
}

func TestChats(t *testing.T) {
	t.Run("new chat becomes active", func(t *testing.T) {
		svc := setupService(t)
		chat := svc.NewChat()

		active := svc.ActiveChat()
		if active == nil || active.ID != chat.ID {
			t.Fatalf("expected new chat to be active, got %+v", active)
		}
	})

	t.Run("title frozen from first user message", func(t *testing.T) {
		svc := setupService(t)
		chat := svc.NewChat()

		svc.AppendMessage(&chat, userMessage("help me plan a trip to Ladakh"))
		if chat.Title != "help me plan a trip to Ladakh" {
			t.Fatalf("unexpected title %q", chat.Title)
		}

		svc.AppendMessage(&chat, userMessage("actually something else entirely"))
		if chat.Title != "help me plan a trip to Ladakh" {
			t.Fatalf("title should be frozen, got %q", chat.Title)
		}
	})

	t.Run("long titles truncate to 40 characters", func(t *testing.T) {
		svc := setupService(t)
		chat := svc.NewChat()

		svc.AppendMessage(&chat, userMessage(strings.Repeat("x", 120)))
		if len(chat.Title) != 40 {
			t.Fatalf("expected 40-char title, got %d chars", len(chat.Title))
		}
	})

	t.Run("messages append in order", func(t *testing.T) {
		svc := setupService(t)
		chat := svc.NewChat()

		svc.AppendMessage(&chat, userMessage("one"))
		svc.AppendMessage(&chat, models.Message{ID: uuid.New().String(), Role: models.RoleJarvis, Content: "two"})
		svc.AppendMessage(&chat, userMessage("three"))

		stored := svc.ActiveChat()
		if stored == nil || len(stored.Messages) != 3 {
			t.Fatalf("expected 3 persisted messages, got %+v", stored)
		}
		if stored.Messages[0].Content != "one" || stored.Messages[2].Content != "three" {
			t.Fatal("messages out of insertion order")
		}
		if stored.UpdatedAt < stored.CreatedAt {
			t.Fatal("updatedAt must be >= createdAt")
		}
	})

	t.Run("delete clears active pointer", func(t *testing.T) {
		svc := setupService(t)
		chat := svc.NewChat()

		svc.DeleteChat(chat.ID)
		if svc.ActiveChat() != nil {
			t.Fatal("expected no active chat after delete")
		}
		if len(svc.Chats()) != 0 {
			t.Fatal("expected chat removed from list")
		}
	})

	t.Run("setActive rejects unknown ids", func(t *testing.T) {
		svc := setupService(t)
		chat := svc.NewChat()

		if svc.SetActive("chat_nope") {
			t.Fatal("unknown chat id should not become active")
		}
		if active := svc.ActiveChat(); active == nil || active.ID != chat.ID {
			t.Fatal("active pointer should be unchanged")
		}
	})
}
