package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smartfit/fitness-api/internal/api/validation"
	"github.com/smartfit/fitness-api/internal/domain"
	"github.com/smartfit/fitness-api/internal/langfuse"
	"github.com/smartfit/fitness-api/internal/llm"
	"github.com/smartfit/fitness-api/internal/service"
	"github.com/smartfit/fitness-api/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

// InsightsHandler handles coaching insights endpoints.
type InsightsHandler struct {
	coachService   service.CoachService
	langfuseClient langfuse.Client
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(coachService service.CoachService, langfuseClient langfuse.Client) *InsightsHandler {
	return &InsightsHandler{
		coachService:   coachService,
		langfuseClient: langfuseClient,
	}
}

// Coach handles POST /v1/insights/coach
// @Summary Get LLM-powered coaching advice
// @Description Generate personalized coaching advice from the user's metrics, archetype, body composition and weight projection using LLM analysis.
// @Tags insights
// @Accept json
// @Produce json
// @Param request body domain.CoachRequest true "Metrics profile and goal"
// @Success 200 {object} domain.CoachResult "Coaching advice with supporting estimates"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM error"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /insights/coach [post]
func (h *InsightsHandler) Coach(w http.ResponseWriter, r *http.Request) {
	var req domain.CoachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	result, err := h.coachService.Generate(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid metrics profile").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.BadGateway("Failed to generate advice from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate coaching advice").Write(w)
		return
	}

	// Attach OTEL trace ID (if present) to response for feedback linking
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		result.TraceID = span.SpanContext().TraceID().String()
	}

	writeJSON(w, http.StatusOK, result)
}

// FeedbackRequest is the request body for coaching feedback.
// @Description Request body for submitting feedback on coaching advice.
type FeedbackRequest struct {
	// Trace ID from the coach response
	TraceID string `json:"trace_id" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"The advice was actionable!"`
}

// Feedback handles POST /v1/insights/feedback
// @Summary Submit feedback on coaching advice
// @Description Submit a user rating and optional comment for a previous coach response.
// @Tags insights
// @Accept json
// @Produce json
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /insights/feedback [post]
func (h *InsightsHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	// Create score in Langfuse (errors are logged but don't fail the request)
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}
