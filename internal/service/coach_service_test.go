package service

import (
	"context"
	"errors"
	"testing"

	"github.com/smartfit/fitness-api/internal/domain"
	"github.com/smartfit/fitness-api/internal/llm"
)

// mockCoachLLM is a hand-rolled CoachLLM for testing.
type mockCoachLLM struct {
	output  *domain.CoachOutput
	err     error
	lastCtx *domain.CoachContext
	calls   int
}

func (m *mockCoachLLM) GenerateAdvice(ctx context.Context, coachCtx *domain.CoachContext) (*domain.CoachOutput, error) {
	m.calls++
	m.lastCtx = coachCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

func newCoachServiceForTest(llmClient llm.CoachLLM) CoachService {
	return NewCoachService(
		NewCalorieService(),
		NewBodyCompositionService(),
		NewArchetypeService(),
		NewProjectionService(),
		llmClient,
	)
}

func coachTestRequest() *domain.CoachRequest {
	return &domain.CoachRequest{
		Age:             30,
		WeightKg:        70,
		HeightM:         1.75,
		Gender:          domain.GenderMale,
		MaxBPM:          160,
		DurationMinutes: 45,
		WeeklyFrequency: 4,
		Experience:      domain.ExperienceIntermediate,
		Intensity:       domain.IntensityMedium,
		WorkoutType:     domain.WorkoutCardio,
		Goal:            domain.GoalWeightLoss,
	}
}

func TestCoachService_Generate(t *testing.T) {
	mock := &mockCoachLLM{
		output: &domain.CoachOutput{
			Summary:      "Solid enthusiast profile.",
			Observations: []string{"BMI in the normal range"},
			Guidance:     []string{"Add one weekly session"},
		},
	}
	svc := newCoachServiceForTest(mock)

	got, err := svc.Generate(context.Background(), coachTestRequest())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if got.Insights.Summary != "Solid enthusiast profile." {
		t.Errorf("Insights.Summary = %q", got.Insights.Summary)
	}
	if got.Archetype.ID != domain.ArchetypeEnthusiast {
		t.Errorf("Archetype.ID = %v, want %v", got.Archetype.ID, domain.ArchetypeEnthusiast)
	}
	if got.Session.Calories != 87.32 {
		t.Errorf("Session.Calories = %v, want 87.32", got.Session.Calories)
	}
	if got.Body.Category != domain.BMINormal {
		t.Errorf("Body.Category = %v, want %v", got.Body.Category, domain.BMINormal)
	}
	if len(got.Projection.Series) == 0 {
		t.Error("Projection.Series is empty")
	}
	if mock.calls != 1 {
		t.Errorf("LLM calls = %d, want 1", mock.calls)
	}
}

func TestCoachService_Generate_ContextMatchesEstimates(t *testing.T) {
	mock := &mockCoachLLM{output: &domain.CoachOutput{Summary: "ok"}}
	svc := newCoachServiceForTest(mock)

	got, err := svc.Generate(context.Background(), coachTestRequest())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if mock.lastCtx == nil {
		t.Fatal("LLM received no context")
	}
	if mock.lastCtx.Goal != domain.GoalWeightLoss {
		t.Errorf("context goal = %v, want %v", mock.lastCtx.Goal, domain.GoalWeightLoss)
	}
	if mock.lastCtx.Session != got.Session {
		t.Errorf("context session = %+v, result session = %+v", mock.lastCtx.Session, got.Session)
	}
	if mock.lastCtx.Body != got.Body {
		t.Errorf("context body = %+v, result body = %+v", mock.lastCtx.Body, got.Body)
	}
	// The projection horizon is fixed regardless of the request.
	lastPoint := mock.lastCtx.Projection.Series[len(mock.lastCtx.Projection.Series)-1]
	if lastPoint.Week != CoachProjectionWeeks {
		t.Errorf("projection horizon = %d weeks, want %d", lastPoint.Week, CoachProjectionWeeks)
	}
}

func TestCoachService_Generate_LLMErrorsPropagate(t *testing.T) {
	mock := &mockCoachLLM{err: llm.ErrOpenAIUnavailable}
	svc := newCoachServiceForTest(mock)

	_, err := svc.Generate(context.Background(), coachTestRequest())
	if !errors.Is(err, llm.ErrOpenAIUnavailable) {
		t.Errorf("Generate() error = %v, want ErrOpenAIUnavailable", err)
	}
}

func TestCoachService_Generate_InvalidInput(t *testing.T) {
	mock := &mockCoachLLM{output: &domain.CoachOutput{}}
	svc := newCoachServiceForTest(mock)

	req := coachTestRequest()
	req.WeightKg = 0

	_, err := svc.Generate(context.Background(), req)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Generate() error = %v, want ErrInvalidInput", err)
	}
	if mock.calls != 0 {
		t.Errorf("LLM calls = %d, want 0 when estimation fails", mock.calls)
	}
}
