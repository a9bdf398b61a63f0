package chat

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
)

// transport is the connection surface a session needs. *Conn satisfies it;
// tests substitute scripted fakes.
type transport interface {
	Channel
	ReadMessage() (int, []byte, error)
	Close()
}

// Session owns one user's live channel. Frames are read, decoded and
// dispatched strictly sequentially: a slow handler delays this session's
// next receive but never blocks other sessions.
type Session struct {
	user     string
	conn     transport
	registry *Registry
	router   *Router

	closeOnce sync.Once
}

// NewSession binds a connection to a claimed username.
func NewSession(user string, conn transport, registry *Registry, router *Router) *Session {
	return &Session{
		user:     user,
		conn:     conn,
		registry: registry,
		router:   router,
	}
}

// Run registers the session and processes inbound frames until the
// connection drops or a frame fails to parse at the transport level.
// It always deregisters on the way out.
func (s *Session) Run(ctx context.Context) {
	s.registry.Register(s.user, s.conn)
	defer s.Close()

	log.Info().Str("user", s.user).Msg("chat session opened")

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			log.Debug().Err(err).Str("user", s.user).Msg("read ended")
			return
		}

		var frame Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			// Unparseable frame: the peer is speaking a different
			// protocol, so the session cannot continue.
			s.registry.Send(s.user, newErrorFrame("malformed frame"))
			log.Warn().Err(err).Str("user", s.user).Msg("malformed frame, closing session")
			return
		}

		s.router.Dispatch(ctx, s.user, frame)
	}
}

// Close deregisters the user and tears down the connection. Idempotent.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.registry.deregisterChannel(s.user, s.conn)
		s.conn.Close()
		log.Info().Str("user", s.user).Msg("chat session closed")
	})
}
