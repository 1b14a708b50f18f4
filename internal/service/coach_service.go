package service

import (
	"context"
	"encoding/json"

	"github.com/smartfit/fitness-api/internal/domain"
	"github.com/smartfit/fitness-api/internal/llm"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CoachProjectionWeeks is the fixed projection horizon fed to the coach.
const CoachProjectionWeeks = 12

// CoachService generates LLM-backed coaching advice from the engine's
// computed estimates.
type CoachService interface {
	// Generate runs the estimators for the request and asks the LLM for advice.
	Generate(ctx context.Context, req *domain.CoachRequest) (*domain.CoachResult, error)
}

type coachService struct {
	calorieService    CalorieService
	bodyService       BodyCompositionService
	archetypeService  ArchetypeService
	projectionService ProjectionService
	llmClient         llm.CoachLLM
}

// NewCoachService creates a new CoachService.
func NewCoachService(
	calorieService CalorieService,
	bodyService BodyCompositionService,
	archetypeService ArchetypeService,
	projectionService ProjectionService,
	llmClient llm.CoachLLM,
) CoachService {
	return &coachService{
		calorieService:    calorieService,
		bodyService:       bodyService,
		archetypeService:  archetypeService,
		projectionService: projectionService,
		llmClient:         llmClient,
	}
}

func (s *coachService) Generate(ctx context.Context, req *domain.CoachRequest) (*domain.CoachResult, error) {
	tracer := otel.Tracer("fitness-api/coach")
	ctx, span := tracer.Start(ctx, "CoachService.Generate",
		trace.WithAttributes(
			attribute.String("coach.goal", string(req.Goal)),
			attribute.String("coach.experience", string(req.Experience)),
		),
	)
	defer span.End()

	// Attach input payload for Langfuse
	if inputJSON, err := json.Marshal(req); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	body, err := s.bodyService.Estimate(ctx, &domain.BodyCompositionRequest{
		WeightKg: req.WeightKg,
		HeightM:  req.HeightM,
		Age:      req.Age,
		Gender:   req.Gender,
	})
	if err != nil {
		return nil, err
	}

	session, err := s.calorieService.Estimate(ctx, &domain.CalorieEstimateRequest{
		DurationMinutes: req.DurationMinutes,
		Intensity:       req.Intensity,
		WeightKg:        req.WeightKg,
		Age:             req.Age,
		Gender:          req.Gender,
		WorkoutType:     req.WorkoutType,
	})
	if err != nil {
		return nil, err
	}

	classification, err := s.archetypeService.Classify(ctx, &domain.ClassifyRequest{
		Age:             req.Age,
		WeightKg:        req.WeightKg,
		HeightM:         req.HeightM,
		MaxBPM:          req.MaxBPM,
		DurationMinutes: req.DurationMinutes,
		WeeklyFrequency: req.WeeklyFrequency,
		Experience:      req.Experience,
		Intensity:       req.Intensity,
	})
	if err != nil {
		return nil, err
	}

	// Endurance has no projection delta of its own and projects flat.
	projection, err := s.projectionService.Project(ctx, &domain.WeightProjectionRequest{
		CurrentWeightKg:    req.WeightKg,
		WeeklyWorkouts:     req.WeeklyFrequency,
		AvgDurationMinutes: req.DurationMinutes,
		Goal:               req.Goal,
		Weeks:              CoachProjectionWeeks,
	})
	if err != nil {
		return nil, err
	}

	coachCtx := &domain.CoachContext{
		Goal:       req.Goal,
		Body:       *body,
		Session:    *session,
		Archetype:  classification.Profile,
		Projection: *projection,
	}

	advice, err := s.llmClient.GenerateAdvice(ctx, coachCtx)
	if err != nil {
		return nil, err
	}

	result := &domain.CoachResult{
		Archetype:  classification.Profile,
		Body:       *body,
		Session:    *session,
		Projection: *projection,
		Insights:   *advice,
	}

	// Attach output payload for Langfuse
	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return result, nil
}
