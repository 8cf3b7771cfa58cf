package models

// Role identifies who authored a message.
type Role string

const (
	RoleUser   Role = "user"
	RoleJarvis Role = "jarvis"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleJarvis
}

// ToolRef is a tool recommendation attached to an assistant message. The URL
// is synthesized as a search-engine link from the tool name.
type ToolRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Message is a single conversational turn. Immutable once created; belongs to
// exactly one Chat.
type Message struct {
	ID         string    `json:"id"`
	Role       Role      `json:"role"`
	Content    string    `json:"content"`
	Timestamp  int64     `json:"timestamp"`
	Intent     string    `json:"intent,omitempty"`
	Confidence float64   `json:"confidence,omitempty"`
	Tools      []ToolRef `json:"tools,omitempty"`
	Emotion    Emotion   `json:"emotion,omitempty"`
	Mode       Mode      `json:"mode,omitempty"`
}

// Chat is an append-only conversation. The title is set once, from the first
// user message (truncated to 40 characters), then frozen.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt int64     `json:"createdAt"`
	UpdatedAt int64     `json:"updatedAt"`
}
