package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/skillsync/backend/internal/api/response"
	"github.com/skillsync/backend/internal/domain"
	"github.com/skillsync/backend/internal/service"
)

// MentorshipHandler serves mentorship pairing endpoints
type MentorshipHandler struct {
	mentorshipService *service.MentorshipService
	validate          *validator.Validate
}

// NewMentorshipHandler creates a new mentorship handler
func NewMentorshipHandler(mentorshipService *service.MentorshipService, validate *validator.Validate) *MentorshipHandler {
	return &MentorshipHandler{mentorshipService: mentorshipService, validate: validate}
}

// Create handles POST /mentorships
func (h *MentorshipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.MentorshipCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.mentorshipService.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAMentor),
			errors.Is(err, service.ErrNotAMentee),
			errors.Is(err, service.ErrSelfMentorship):
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			response.Error(w, http.StatusInternalServerError, "failed to create mentorship")
		}
		return
	}
	response.JSON(w, http.StatusCreated, m)
}

// List handles GET /mentorships
func (h *MentorshipHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.mentorshipService.List(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to list mentorships")
		return
	}
	response.JSON(w, http.StatusOK, list)
}

// Get handles GET /mentorships/{id}
func (h *MentorshipHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid mentorship id")
		return
	}

	m, err := h.mentorshipService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "mentorship not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to get mentorship")
		return
	}
	response.JSON(w, http.StatusOK, m)
}

// Delete handles DELETE /mentorships/{id}
func (h *MentorshipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid mentorship id")
		return
	}

	if err := h.mentorshipService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "mentorship not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to delete mentorship")
		return
	}
	response.NoContent(w)
}
