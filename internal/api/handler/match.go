package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skillsync/backend/internal/api/response"
	"github.com/skillsync/backend/internal/domain"
	"github.com/skillsync/backend/internal/service"
)

// MatchHandler serves mentor/mentee matching endpoints
type MatchHandler struct {
	matchService *service.MatchService
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService *service.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// Match handles GET /matches/{username}
func (h *MatchHandler) Match(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	results, err := h.matchService.Match(r.Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "user not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to compute matches")
		return
	}
	response.JSON(w, http.StatusOK, results)
}
