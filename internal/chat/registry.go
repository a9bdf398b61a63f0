package chat

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
)

// Channel is the outbound half of a live connection. Send must be safe for
// concurrent use and must return an error once the channel is broken.
type Channel interface {
	Send(payload []byte) error
}

// Registry is the presence map: the single source of truth for which users
// are currently reachable. It holds at most one channel per username; it is
// the only state shared across sessions.
type Registry struct {
	mu    sync.RWMutex
	users map[string]Channel
}

// NewRegistry creates an empty presence registry
func NewRegistry() *Registry {
	return &Registry{users: make(map[string]Channel)}
}

// Register associates a user with a channel, replacing any prior
// association for that user.
func (r *Registry) Register(user string, ch Channel) {
	r.mu.Lock()
	r.users[user] = ch
	r.mu.Unlock()
}

// Deregister removes the user's association if present. No-op when absent.
func (r *Registry) Deregister(user string) {
	r.mu.Lock()
	delete(r.users, user)
	r.mu.Unlock()
}

// deregisterChannel removes the user only while it is still bound to ch,
// so a failed push never evicts a replacement session that registered in
// the meantime.
func (r *Registry) deregisterChannel(user string, ch Channel) {
	r.mu.Lock()
	if cur, ok := r.users[user]; ok && cur == ch {
		delete(r.users, user)
	}
	r.mu.Unlock()
}

// IsOnline reports whether the user currently has a live channel
func (r *Registry) IsOnline(user string) bool {
	r.mu.RLock()
	_, ok := r.users[user]
	r.mu.RUnlock()
	return ok
}

// Online returns a sorted snapshot of currently-registered usernames
func (r *Registry) Online() []string {
	r.mu.RLock()
	users := make([]string, 0, len(r.users))
	for user := range r.users {
		users = append(users, user)
	}
	r.mu.RUnlock()

	sort.Strings(users)
	return users
}

// Send pushes v, JSON-encoded, to the user's channel. Delivery is
// best-effort: a push failure deregisters the user and is swallowed.
// The return value reports whether the push succeeded.
func (r *Registry) Send(user string, v any) bool {
	r.mu.RLock()
	ch, ok := r.users[user]
	r.mu.RUnlock()
	if !ok {
		return false
	}

	payload, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("user", user).Msg("failed to encode outbound frame")
		return false
	}

	if err := ch.Send(payload); err != nil {
		// The target vanished between lookup and push; treat it as a
		// disconnect.
		r.deregisterChannel(user, ch)
		log.Debug().Err(err).Str("user", user).Msg("push failed, deregistered")
		return false
	}

	return true
}
