package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/skillsync/backend/internal/api/response"
	"github.com/skillsync/backend/internal/domain"
	"github.com/skillsync/backend/internal/service"
)

// UserHandler serves user profile endpoints
type UserHandler struct {
	userService       *service.UserService
	assignmentService *service.AssignmentService
	validate          *validator.Validate
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService, assignmentService *service.AssignmentService, validate *validator.Validate) *UserHandler {
	return &UserHandler{
		userService:       userService,
		assignmentService: assignmentService,
		validate:          validate,
	}
}

// List handles GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	response.JSON(w, http.StatusOK, users)
}

// Get handles GET /users/{username}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.userService.Get(r.Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "user not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to get user")
		return
	}
	response.JSON(w, http.StatusOK, user)
}

// Update handles PATCH /users/{username}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var input domain.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Update(r.Context(), username, &input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "user not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to update user")
		return
	}
	response.JSON(w, http.StatusOK, user)
}

// Delete handles DELETE /users/{username}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.userService.Delete(r.Context(), username); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "user not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to delete user")
		return
	}
	response.NoContent(w)
}

type assignSkillsRequest struct {
	Skills []string `json:"skills" validate:"required,min=1,dive,required"`
}

// AssignSkills handles POST /users/{username}/skills
func (h *UserHandler) AssignSkills(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var input assignSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.assignmentService.AssignToUser(r.Context(), username, input.Skills)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "user not found")
			return
		}
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// ListSkills handles GET /users/{username}/skills
func (h *UserHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	skills, err := h.assignmentService.ListForUser(r.Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "user not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to list skills")
		return
	}
	response.JSON(w, http.StatusOK, skills)
}

// RemoveSkill handles DELETE /users/{username}/skills/{skill}
func (h *UserHandler) RemoveSkill(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	skillName := chi.URLParam(r, "skill")

	if err := h.assignmentService.RemoveFromUser(r.Context(), username, skillName); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "user or skill not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to remove skill")
		return
	}
	response.NoContent(w)
}
