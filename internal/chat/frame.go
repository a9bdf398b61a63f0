package chat

import (
	"time"

	"github.com/google/uuid"
	"github.com/skillsync/backend/internal/domain"
)

// Inbound message kinds. Every frame carries a "type" discriminator; the
// remaining fields are kind-specific.
const (
	KindMessage            = "message"
	KindTyping             = "typing"
	KindGetHistory         = "get_history"
	KindCheckOnline        = "check_online"
	KindGetConversations   = "get_conversations"
	KindMarkRead           = "mark_read"
	KindDeleteConversation = "delete_conversation"
	KindPing               = "ping"
)

// Delivery annotation on a message confirmation.
const (
	StatusDelivered = "delivered" // recipient was reachable at push time
	StatusSent      = "sent"      // recipient unreachable; message persisted only
)

// Frame is one decoded inbound unit.
type Frame struct {
	Type     string   `json:"type"`
	ToUser   string   `json:"to_user,omitempty"`
	WithUser string   `json:"with_user,omitempty"`
	FromUser string   `json:"from_user,omitempty"`
	Text     string   `json:"text,omitempty"`
	IsTyping bool     `json:"is_typing,omitempty"`
	Users    []string `json:"users,omitempty"`
}

type errorFrame struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func newErrorFrame(message string) errorFrame {
	return errorFrame{Type: "error", Message: message}
}

// messageFrame is pushed to the recipient of a chat message.
type messageFrame struct {
	Type      string    `json:"type"`
	ID        uuid.UUID `json:"id"`
	FromUser  string    `json:"from_user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// sentFrame confirms a send back to its author, annotated with the
// delivery status observed at push time.
type sentFrame struct {
	Type      string    `json:"type"`
	ID        uuid.UUID `json:"id"`
	ToUser    string    `json:"to_user"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type typingFrame struct {
	Type     string `json:"type"`
	FromUser string `json:"from_user"`
	IsTyping bool   `json:"is_typing"`
}

type historyFrame struct {
	Type     string               `json:"type"`
	WithUser string               `json:"with_user"`
	Messages []domain.ChatMessage `json:"messages"`
}

type onlineStatusFrame struct {
	Type     string          `json:"type"`
	Statuses map[string]bool `json:"statuses"`
}

type conversationsFrame struct {
	Type          string                `json:"type"`
	Conversations []domain.Conversation `json:"conversations"`
}

type readMarkedFrame struct {
	Type     string `json:"type"`
	FromUser string `json:"from_user"`
	Updated  int64  `json:"updated"`
}

type conversationDeletedFrame struct {
	Type     string `json:"type"`
	WithUser string `json:"with_user"`
	Deleted  int64  `json:"deleted"`
}

type pongFrame struct {
	Type string `json:"type"`
}
