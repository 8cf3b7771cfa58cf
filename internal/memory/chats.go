package memory

import (
	"github.com/google/uuid"

	"github.com/jarvis-assistant/jarvisd/internal/models"
	"github.com/jarvis-assistant/jarvisd/internal/store"
)

// defaultTitle is the placeholder until the first user message freezes the
// real title.
const defaultTitle = "New Chat"

// maxTitleLen is the character cap applied to frozen titles.
const maxTitleLen = 40

// Chats returns every stored conversation.
func (s *Service) Chats() []models.Chat {
	return store.Get(s.kv, store.KeyChats, []models.Chat{})
}

// SaveChat upserts a chat by ID.
func (s *Service) SaveChat(chat models.Chat) {
	chats := s.Chats()
	replaced := false
	for i := range chats {
		if chats[i].ID == chat.ID {
			chats[i] = chat
			replaced = true
			break
		}
	}
	if !replaced {
		chats = append(chats, chat)
	}
	s.kv.Set(store.KeyChats, chats)
}

// NewChat creates an empty conversation and makes it active.
func (s *Service) NewChat() models.Chat {
	now := s.now().UnixMilli()
	chat := models.Chat{
		ID:        "chat_" + uuid.New().String(),
		Title:     defaultTitle,
		Messages:  []models.Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.SaveChat(chat)
	s.kv.Set(store.KeyActiveChat, chat.ID)
	return chat
}

// ActiveChat returns the conversation the active pointer refers to, or nil
// when there is none.
func (s *Service) ActiveChat() *models.Chat {
	id := store.Get(s.kv, store.KeyActiveChat, "")
	if id == "" {
		return nil
	}
	for _, c := range s.Chats() {
		if c.ID == id {
			return &c
		}
	}
	return nil
}

// SetActive repoints the active-chat pointer. Unknown IDs are ignored so a
// stale pointer cannot be introduced.
func (s *Service) SetActive(chatID string) bool {
	for _, c := range s.Chats() {
		if c.ID == chatID {
			s.kv.Set(store.KeyActiveChat, chatID)
			return true
		}
	}
	return false
}

// DeleteChat removes a conversation. The active pointer is cleared when it
// referred to the deleted chat.
func (s *Service) DeleteChat(chatID string) {
	chats := s.Chats()
	kept := chats[:0]
	for _, c := range chats {
		if c.ID != chatID {
			kept = append(kept, c)
		}
	}
	s.kv.Set(store.KeyChats, kept)

	if store.Get(s.kv, store.KeyActiveChat, "") == chatID {
		s.kv.Delete(store.KeyActiveChat)
	}
}

// AppendMessage adds a message to a chat and persists it. The title is frozen
// from the first user message, truncated to maxTitleLen characters.
func (s *Service) AppendMessage(chat *models.Chat, msg models.Message) {
	chat.Messages = append(chat.Messages, msg)
	chat.UpdatedAt = s.now().UnixMilli()

	if chat.Title == defaultTitle && msg.Role == models.RoleUser {
		chat.Title = truncate(msg.Content, maxTitleLen)
	}

	s.SaveChat(*chat)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
