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

// OpportunityHandler serves opportunity posting endpoints
type OpportunityHandler struct {
	oppService        *service.OpportunityService
	assignmentService *service.AssignmentService
	validate          *validator.Validate
}

// NewOpportunityHandler creates a new opportunity handler
func NewOpportunityHandler(oppService *service.OpportunityService, assignmentService *service.AssignmentService, validate *validator.Validate) *OpportunityHandler {
	return &OpportunityHandler{
		oppService:        oppService,
		assignmentService: assignmentService,
		validate:          validate,
	}
}

func oppIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// Create handles POST /opportunities
func (h *OpportunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.OpportunityCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	opp, err := h.oppService.Create(r.Context(), input)
	if err != nil {
		if err.Error() == "posting user does not exist" {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to create opportunity")
		return
	}
	response.JSON(w, http.StatusCreated, opp)
}

// List handles GET /opportunities
func (h *OpportunityHandler) List(w http.ResponseWriter, r *http.Request) {
	opps, err := h.oppService.List(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to list opportunities")
		return
	}
	response.JSON(w, http.StatusOK, opps)
}

// Get handles GET /opportunities/{id}
func (h *OpportunityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := oppIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid opportunity id")
		return
	}

	opp, err := h.oppService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "opportunity not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to get opportunity")
		return
	}
	response.JSON(w, http.StatusOK, opp)
}

// Update handles PATCH /opportunities/{id}
func (h *OpportunityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := oppIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid opportunity id")
		return
	}

	var input domain.OpportunityUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	opp, err := h.oppService.Update(r.Context(), id, &input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "opportunity not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to update opportunity")
		return
	}
	response.JSON(w, http.StatusOK, opp)
}

// Delete handles DELETE /opportunities/{id}
func (h *OpportunityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := oppIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid opportunity id")
		return
	}

	if err := h.oppService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "opportunity not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to delete opportunity")
		return
	}
	response.NoContent(w)
}

// AssignSkills handles POST /opportunities/{id}/skills
func (h *OpportunityHandler) AssignSkills(w http.ResponseWriter, r *http.Request) {
	id, err := oppIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid opportunity id")
		return
	}

	var input assignSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.assignmentService.AssignToOpportunity(r.Context(), id, input.Skills)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "opportunity not found")
			return
		}
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// ListSkills handles GET /opportunities/{id}/skills
func (h *OpportunityHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	id, err := oppIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid opportunity id")
		return
	}

	skills, err := h.assignmentService.ListForOpportunity(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "opportunity not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to list skills")
		return
	}
	response.JSON(w, http.StatusOK, skills)
}

// RemoveSkill handles DELETE /opportunities/{id}/skills/{skill}
func (h *OpportunityHandler) RemoveSkill(w http.ResponseWriter, r *http.Request) {
	id, err := oppIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid opportunity id")
		return
	}
	skillName := chi.URLParam(r, "skill")

	if err := h.assignmentService.RemoveFromOpportunity(r.Context(), id, skillName); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "opportunity or skill not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to remove skill")
		return
	}
	response.NoContent(w)
}
