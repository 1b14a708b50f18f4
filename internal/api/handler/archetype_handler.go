package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/smartfit/fitness-api/internal/api/validation"
	"github.com/smartfit/fitness-api/internal/domain"
	"github.com/smartfit/fitness-api/internal/service"
	"github.com/smartfit/fitness-api/pkg/problem"
)

type ArchetypeHandler struct {
	service service.ArchetypeService
}

func NewArchetypeHandler(service service.ArchetypeService) *ArchetypeHandler {
	return &ArchetypeHandler{service: service}
}

// Classify handles POST /v1/profiles/classify
// @Summary Classify a fitness profile
// @Description Assign a fitness archetype from the full metrics profile. Rules are evaluated in fixed priority order.
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body domain.ClassifyRequest true "Metrics profile"
// @Success 200 {object} domain.ClassifyResult "Archetype assignment"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/classify [post]
func (h *ArchetypeHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req domain.ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	result, err := h.service.Classify(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid metrics profile").Write(w)
			return
		}
		problem.InternalError("Failed to classify profile").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// List handles GET /v1/archetypes
// @Summary List archetypes
// @Description Return all fitness archetype profiles in ID order.
// @Tags archetypes
// @Produce json
// @Success 200 {array} domain.ArchetypeProfile "Archetype profiles"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /archetypes [get]
func (h *ArchetypeHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.List(r.Context()))
}

// GetByID handles GET /v1/archetypes/{archetypeId}
// @Summary Get archetype
// @Description Return a single fitness archetype profile by numeric ID.
// @Tags archetypes
// @Produce json
// @Param archetypeId path integer true "Archetype ID" minimum(0) maximum(4) example(0)
// @Success 200 {object} domain.ArchetypeProfile "Archetype profile"
// @Failure 400 {object} problem.Problem "Invalid archetype ID"
// @Failure 404 {object} problem.Problem "Archetype not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /archetypes/{archetypeId} [get]
func (h *ArchetypeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "archetypeId"))
	if err != nil {
		problem.BadRequest("Invalid archetype ID format").Write(w)
		return
	}

	archetype, err := h.service.Get(r.Context(), domain.ArchetypeID(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Archetype not found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch archetype").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, archetype)
}
