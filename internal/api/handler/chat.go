package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/skillsync/backend/internal/api/response"
	"github.com/skillsync/backend/internal/chat"
	"github.com/skillsync/backend/internal/config"
)

// ChatHandler upgrades websocket connections and exposes presence info
type ChatHandler struct {
	registry *chat.Registry
	router   *chat.Router
	cfg      config.ChatConfig
	upgrader websocket.Upgrader
}

// NewChatHandler creates a new chat handler
func NewChatHandler(registry *chat.Registry, router *chat.Router, cfg config.ChatConfig) *ChatHandler {
	return &ChatHandler{
		registry: registry,
		router:   router,
		cfg:      cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Serve handles GET /ws/{username}. The connection is registered under the
// given username and serviced until the client disconnects.
func (h *ChatHandler) Serve(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		response.Error(w, http.StatusBadRequest, "username is required")
		return
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Str("username", username).Msg("websocket upgrade failed")
		return
	}
	ws.SetReadLimit(h.cfg.MaxMessageSize)

	conn := chat.NewConn(ws, h.cfg.SendBufferSize, h.cfg.WriteTimeout, h.cfg.PingInterval)
	conn.Start()

	// the session logs its own lifecycle
	session := chat.NewSession(username, conn, h.registry, h.router)
	session.Run(r.Context())
}

// Online handles GET /chat/online
func (h *ChatHandler) Online(w http.ResponseWriter, r *http.Request) {
	users := h.registry.Online()
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
		"count": len(users),
	})
}
