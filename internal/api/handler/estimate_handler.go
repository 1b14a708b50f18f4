package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smartfit/fitness-api/internal/api/validation"
	"github.com/smartfit/fitness-api/internal/domain"
	"github.com/smartfit/fitness-api/internal/service"
	"github.com/smartfit/fitness-api/pkg/problem"
)

type EstimateHandler struct {
	calorieService    service.CalorieService
	bodyService       service.BodyCompositionService
	projectionService service.ProjectionService
}

func NewEstimateHandler(
	calorieService service.CalorieService,
	bodyService service.BodyCompositionService,
	projectionService service.ProjectionService,
) *EstimateHandler {
	return &EstimateHandler{
		calorieService:    calorieService,
		bodyService:       bodyService,
		projectionService: projectionService,
	}
}

// EstimateCalories handles POST /v1/estimates/calories
// @Summary Estimate calorie burn
// @Description Estimate calories burned in one workout session from MET values, adjusted by gender and workout type.
// @Tags estimates
// @Accept json
// @Produce json
// @Param request body domain.CalorieEstimateRequest true "Session parameters"
// @Success 200 {object} domain.CalorieEstimate "Calorie estimate"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /estimates/calories [post]
func (h *EstimateHandler) EstimateCalories(w http.ResponseWriter, r *http.Request) {
	var req domain.CalorieEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	estimate, err := h.calorieService.Estimate(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid session parameters").Write(w)
			return
		}
		problem.InternalError("Failed to estimate calories").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, estimate)
}

// EstimateBodyComposition handles POST /v1/estimates/body-composition
// @Summary Estimate body composition
// @Description Compute BMI, its category and an estimated body fat percentage from age, gender, weight and height.
// @Tags estimates
// @Accept json
// @Produce json
// @Param request body domain.BodyCompositionRequest true "Body parameters"
// @Success 200 {object} domain.BodyComposition "Body composition estimate"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /estimates/body-composition [post]
func (h *EstimateHandler) EstimateBodyComposition(w http.ResponseWriter, r *http.Request) {
	var req domain.BodyCompositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	body, err := h.bodyService.Estimate(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid body parameters").Write(w)
			return
		}
		problem.InternalError("Failed to estimate body composition").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, body)
}

// ProjectWeight handles POST /v1/estimates/weight-projection
// @Summary Project weight over time
// @Description Project body weight week by week from the training routine and goal calorie adjustment.
// @Tags estimates
// @Accept json
// @Produce json
// @Param request body domain.WeightProjectionRequest true "Routine and goal parameters"
// @Success 200 {object} domain.WeightProjection "Projected weight series"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /estimates/weight-projection [post]
func (h *EstimateHandler) ProjectWeight(w http.ResponseWriter, r *http.Request) {
	var req domain.WeightProjectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	projection, err := h.projectionService.Project(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid projection parameters").Write(w)
			return
		}
		problem.InternalError("Failed to project weight").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, projection)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
