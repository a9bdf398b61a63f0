package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one persisted chat utterance between two users.
// ID and CreatedAt are assigned by the store on insert and immutable after.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	FromUser  string    `json:"from_user"`
	ToUser    string    `json:"to_user"`
	Text      string    `json:"text"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation is a derived summary over the message log for one
// counterpart. It is never persisted; Online is computed live against
// the presence registry at query time.
type Conversation struct {
	WithUser        string    `json:"with_user"`
	LastMessage     string    `json:"last_message"`
	LastMessageTime time.Time `json:"last_message_time"`
	Online          bool      `json:"online"`
}
