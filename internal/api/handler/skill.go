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

// SkillHandler serves skill catalog endpoints
type SkillHandler struct {
	skillService *service.SkillService
	validate     *validator.Validate
}

// NewSkillHandler creates a new skill handler
func NewSkillHandler(skillService *service.SkillService, validate *validator.Validate) *SkillHandler {
	return &SkillHandler{skillService: skillService, validate: validate}
}

// Create handles POST /skills
func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.SkillCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	skill, err := h.skillService.Create(r.Context(), input)
	if err != nil {
		if err.Error() == "skill already exists" {
			response.Error(w, http.StatusConflict, err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to create skill")
		return
	}
	response.JSON(w, http.StatusCreated, skill)
}

// List handles GET /skills
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skillService.List(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to list skills")
		return
	}
	response.JSON(w, http.StatusOK, skills)
}

// Get handles GET /skills/{name}
func (h *SkillHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	skill, err := h.skillService.Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "skill not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to get skill")
		return
	}
	response.JSON(w, http.StatusOK, skill)
}

// Update handles PATCH /skills/{name}
func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var input domain.SkillUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	skill, err := h.skillService.Update(r.Context(), name, &input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "skill not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to update skill")
		return
	}
	response.JSON(w, http.StatusOK, skill)
}

// Delete handles DELETE /skills/{name}
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.skillService.Delete(r.Context(), name); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "skill not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to delete skill")
		return
	}
	response.NoContent(w)
}
