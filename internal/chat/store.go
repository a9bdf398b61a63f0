package chat

import (
	"context"

	"github.com/skillsync/backend/internal/domain"
)

// MessageStore is the durable message log the router persists to and reads
// from. Implementations must order ListBetween ascending and ListInvolving
// descending by creation time; MarkRead only touches currently-unread rows.
type MessageStore interface {
	Insert(ctx context.Context, fromUser, toUser, text string) (*domain.ChatMessage, error)
	ListBetween(ctx context.Context, userA, userB string) ([]domain.ChatMessage, error)
	ListInvolving(ctx context.Context, user string) ([]domain.ChatMessage, error)
	MarkRead(ctx context.Context, fromUser, toUser string) (int64, error)
	DeleteBetween(ctx context.Context, userA, userB string) (int64, error)
}
