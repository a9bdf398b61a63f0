package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/skillsync/backend/internal/domain"
)

// ChatMessageRepository is the durable message log behind the chat core.
// It satisfies chat.MessageStore.
type ChatMessageRepository struct {
	db *DB
}

// NewChatMessageRepository creates a new chat message repository
func NewChatMessageRepository(db *DB) *ChatMessageRepository {
	return &ChatMessageRepository{db: db}
}

// Insert appends a message. The database assigns the creation timestamp so
// ordering follows insert order as observed by the store.
func (r *ChatMessageRepository) Insert(ctx context.Context, fromUser, toUser, text string) (*domain.ChatMessage, error) {
	query := `
		INSERT INTO chat_messages (id, from_user, to_user, text)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	msg := domain.ChatMessage{
		ID:       uuid.New(),
		FromUser: fromUser,
		ToUser:   toUser,
		Text:     text,
	}

	err := r.db.Pool.QueryRow(ctx, query, msg.ID, msg.FromUser, msg.ToUser, msg.Text).Scan(&msg.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert message: %w", err)
	}

	return &msg, nil
}

// ListBetween retrieves every message exchanged between two users, oldest first
func (r *ChatMessageRepository) ListBetween(ctx context.Context, userA, userB string) ([]domain.ChatMessage, error) {
	query := `
		SELECT id, from_user, to_user, text, read, created_at
		FROM chat_messages
		WHERE (from_user = $1 AND to_user = $2) OR (from_user = $2 AND to_user = $1)
		ORDER BY created_at ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// ListInvolving retrieves every message a user sent or received, newest first
func (r *ChatMessageRepository) ListInvolving(ctx context.Context, user string) ([]domain.ChatMessage, error) {
	query := `
		SELECT id, from_user, to_user, text, read, created_at
		FROM chat_messages
		WHERE from_user = $1 OR to_user = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, user)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// MarkRead flags all currently-unread messages from one sender to one
// recipient and returns the number of rows updated.
func (r *ChatMessageRepository) MarkRead(ctx context.Context, fromUser, toUser string) (int64, error) {
	query := `
		UPDATE chat_messages
		SET read = TRUE
		WHERE from_user = $1 AND to_user = $2 AND read = FALSE
	`

	tag, err := r.db.Pool.Exec(ctx, query, fromUser, toUser)
	if err != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DeleteBetween removes the whole conversation between two users and returns
// the number of rows deleted.
func (r *ChatMessageRepository) DeleteBetween(ctx context.Context, userA, userB string) (int64, error) {
	query := `
		DELETE FROM chat_messages
		WHERE (from_user = $1 AND to_user = $2) OR (from_user = $2 AND to_user = $1)
	`

	tag, err := r.db.Pool.Exec(ctx, query, userA, userB)
	if err != nil {
		return 0, fmt.Errorf("failed to delete conversation: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanMessages(rows pgx.Rows) ([]domain.ChatMessage, error) {
	var messages []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.FromUser, &m.ToUser, &m.Text, &m.Read, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
