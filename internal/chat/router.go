package chat

import (
	"context"

	"github.com/skillsync/backend/internal/domain"
)

// Router dispatches decoded inbound frames. It is stateless: every handler
// is a transformation of (frame, requesting user, registry, store) into zero
// or more pushes. Store failures come back to the requester as error frames
// and never kill the session.
type Router struct {
	registry *Registry
	store    MessageStore
}

// NewRouter creates a message router
func NewRouter(registry *Registry, store MessageStore) *Router {
	return &Router{registry: registry, store: store}
}

// Dispatch routes one inbound frame from the given user.
func (rt *Router) Dispatch(ctx context.Context, from string, f Frame) {
	switch f.Type {
	case KindMessage:
		rt.handleMessage(ctx, from, f)
	case KindTyping:
		rt.handleTyping(from, f)
	case KindGetHistory:
		rt.handleGetHistory(ctx, from, f)
	case KindCheckOnline:
		rt.handleCheckOnline(from, f)
	case KindGetConversations:
		rt.handleGetConversations(ctx, from)
	case KindMarkRead:
		rt.handleMarkRead(ctx, from, f)
	case KindDeleteConversation:
		rt.handleDeleteConversation(ctx, from, f)
	case KindPing:
		rt.registry.Send(from, pongFrame{Type: "pong"})
	default:
		rt.registry.Send(from, newErrorFrame("unknown message type: "+f.Type))
	}
}

func (rt *Router) handleMessage(ctx context.Context, from string, f Frame) {
	if f.ToUser == "" || f.Text == "" {
		rt.registry.Send(from, newErrorFrame("message requires to_user and text"))
		return
	}

	msg, err := rt.store.Insert(ctx, from, f.ToUser, f.Text)
	if err != nil {
		rt.registry.Send(from, newErrorFrame("failed to send message: "+err.Error()))
		return
	}

	// The recipient push doubles as the liveness check: its outcome at
	// push time decides the annotation on the sender's confirmation.
	status := StatusSent
	delivered := rt.registry.Send(f.ToUser, messageFrame{
		Type:      KindMessage,
		ID:        msg.ID,
		FromUser:  from,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	})
	if delivered {
		status = StatusDelivered
	}

	rt.registry.Send(from, sentFrame{
		Type:      "message_sent",
		ID:        msg.ID,
		ToUser:    f.ToUser,
		Status:    status,
		CreatedAt: msg.CreatedAt,
	})
}

func (rt *Router) handleTyping(from string, f Frame) {
	if f.ToUser == "" {
		rt.registry.Send(from, newErrorFrame("typing requires to_user"))
		return
	}

	// Ephemeral signal: dropped silently when the recipient is offline,
	// never persisted.
	rt.registry.Send(f.ToUser, typingFrame{
		Type:     KindTyping,
		FromUser: from,
		IsTyping: f.IsTyping,
	})
}

func (rt *Router) handleGetHistory(ctx context.Context, from string, f Frame) {
	if f.WithUser == "" {
		rt.registry.Send(from, newErrorFrame("get_history requires with_user"))
		return
	}

	messages, err := rt.store.ListBetween(ctx, from, f.WithUser)
	if err != nil {
		rt.registry.Send(from, newErrorFrame("failed to load history: "+err.Error()))
		return
	}
	if messages == nil {
		messages = []domain.ChatMessage{}
	}

	rt.registry.Send(from, historyFrame{
		Type:     "history",
		WithUser: f.WithUser,
		Messages: messages,
	})
}

func (rt *Router) handleCheckOnline(from string, f Frame) {
	statuses := make(map[string]bool, len(f.Users))
	for _, user := range f.Users {
		statuses[user] = rt.registry.IsOnline(user)
	}

	rt.registry.Send(from, onlineStatusFrame{
		Type:     "online_status",
		Statuses: statuses,
	})
}

func (rt *Router) handleGetConversations(ctx context.Context, from string) {
	messages, err := rt.store.ListInvolving(ctx, from)
	if err != nil {
		rt.registry.Send(from, newErrorFrame("failed to load conversations: "+err.Error()))
		return
	}

	// The store returns newest-first, so the first message seen per
	// partner is that conversation's latest.
	conversations := make([]domain.Conversation, 0)
	seen := make(map[string]struct{})
	for _, msg := range messages {
		partner := msg.FromUser
		if partner == from {
			partner = msg.ToUser
		}
		if _, ok := seen[partner]; ok {
			continue
		}
		seen[partner] = struct{}{}

		conversations = append(conversations, domain.Conversation{
			WithUser:        partner,
			LastMessage:     msg.Text,
			LastMessageTime: msg.CreatedAt,
			Online:          rt.registry.IsOnline(partner),
		})
	}

	rt.registry.Send(from, conversationsFrame{
		Type:          "conversations",
		Conversations: conversations,
	})
}

func (rt *Router) handleMarkRead(ctx context.Context, from string, f Frame) {
	if f.FromUser == "" {
		rt.registry.Send(from, newErrorFrame("mark_read requires from_user"))
		return
	}

	updated, err := rt.store.MarkRead(ctx, f.FromUser, from)
	if err != nil {
		rt.registry.Send(from, newErrorFrame("failed to mark read: "+err.Error()))
		return
	}

	rt.registry.Send(from, readMarkedFrame{
		Type:     "read_marked",
		FromUser: f.FromUser,
		Updated:  updated,
	})
}

func (rt *Router) handleDeleteConversation(ctx context.Context, from string, f Frame) {
	if f.WithUser == "" {
		rt.registry.Send(from, newErrorFrame("delete_conversation requires with_user"))
		return
	}

	deleted, err := rt.store.DeleteBetween(ctx, from, f.WithUser)
	if err != nil {
		rt.registry.Send(from, newErrorFrame("failed to delete conversation: "+err.Error()))
		return
	}

	rt.registry.Send(from, conversationDeletedFrame{
		Type:     "conversation_deleted",
		WithUser: f.WithUser,
		Deleted:  deleted,
	})
}
