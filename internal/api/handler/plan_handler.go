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

type PlanHandler struct {
	dietService    service.DietPlanService
	workoutService service.WorkoutPlanService
}

func NewPlanHandler(dietService service.DietPlanService, workoutService service.WorkoutPlanService) *PlanHandler {
	return &PlanHandler{
		dietService:    dietService,
		workoutService: workoutService,
	}
}

// BuildDietPlan handles POST /v1/plans/diet
// @Summary Build a diet plan
// @Description Select the diet plan for the goal and resolve daily calorie targets, macro ranges, meal suggestions and a shopping list.
// @Tags plans
// @Accept json
// @Produce json
// @Param request body domain.DietPlanRequest true "Profile and goal"
// @Success 200 {object} domain.DietPlanResult "Diet plan"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /plans/diet [post]
func (h *PlanHandler) BuildDietPlan(w http.ResponseWriter, r *http.Request) {
	var req domain.DietPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	plan, err := h.dietService.Plan(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid diet plan parameters").Write(w)
			return
		}
		problem.InternalError("Failed to build diet plan").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

// BuildWorkoutPlan handles POST /v1/plans/workout
// @Summary Build a workout plan
// @Description Build a Monday-to-Sunday schedule from the experience level, difficulty and training days per week.
// @Tags plans
// @Accept json
// @Produce json
// @Param request body domain.WorkoutPlanRequest true "Experience and schedule parameters"
// @Success 200 {object} domain.WorkoutPlan "Weekly workout plan"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /plans/workout [post]
func (h *PlanHandler) BuildWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	var req domain.WorkoutPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	plan, err := h.workoutService.Build(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid workout plan parameters").Write(w)
			return
		}
		problem.InternalError("Failed to build workout plan").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}
