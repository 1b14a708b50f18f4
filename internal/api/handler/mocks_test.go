package handler

import (
	"context"

	"github.com/smartfit/fitness-api/internal/domain"
	"github.com/smartfit/fitness-api/internal/langfuse"
)

// Mock services for handler tests. Each falls back to a canned response
// when no override func is set.

type mockCalorieService struct {
	estimateFunc func(ctx context.Context, req *domain.CalorieEstimateRequest) (*domain.CalorieEstimate, error)
}

func (m *mockCalorieService) Estimate(ctx context.Context, req *domain.CalorieEstimateRequest) (*domain.CalorieEstimate, error) {
	if m.estimateFunc != nil {
		return m.estimateFunc(ctx, req)
	}
	return &domain.CalorieEstimate{
		Calories:            87.32,
		PerMinute:           1.94,
		FatBurnedGrams:      2.91,
		WeeklyThreeSessions: 261.95,
	}, nil
}

type mockBodyService struct {
	estimateFunc func(ctx context.Context, req *domain.BodyCompositionRequest) (*domain.BodyComposition, error)
}

func (m *mockBodyService) Estimate(ctx context.Context, req *domain.BodyCompositionRequest) (*domain.BodyComposition, error) {
	if m.estimateFunc != nil {
		return m.estimateFunc(ctx, req)
	}
	return &domain.BodyComposition{
		BMI:            22.86,
		BodyFatPercent: 18.13,
		Category:       domain.BMINormal,
	}, nil
}

type mockProjectionService struct {
	projectFunc func(ctx context.Context, req *domain.WeightProjectionRequest) (*domain.WeightProjection, error)
}

func (m *mockProjectionService) Project(ctx context.Context, req *domain.WeightProjectionRequest) (*domain.WeightProjection, error) {
	if m.projectFunc != nil {
		return m.projectFunc(ctx, req)
	}
	return &domain.WeightProjection{
		FinalWeightKg:      72.6,
		TotalChangeKg:      -2.4,
		TotalChangePercent: -3.2,
		Series: []domain.ProjectionPoint{
			{Week: 0, WeightKg: 75},
			{Week: 12, WeightKg: 72.6},
		},
	}, nil
}

type mockArchetypeService struct {
	classifyFunc func(ctx context.Context, req *domain.ClassifyRequest) (*domain.ClassifyResult, error)
	getFunc      func(ctx context.Context, id domain.ArchetypeID) (*domain.ArchetypeProfile, error)
}

func (m *mockArchetypeService) Classify(ctx context.Context, req *domain.ClassifyRequest) (*domain.ClassifyResult, error) {
	if m.classifyFunc != nil {
		return m.classifyFunc(ctx, req)
	}
	return &domain.ClassifyResult{
		ArchetypeID: domain.ArchetypeEnthusiast,
		BMI:         22.86,
		Profile:     domain.ProfileByID(domain.ArchetypeEnthusiast),
	}, nil
}

func (m *mockArchetypeService) List(ctx context.Context) []domain.ArchetypeProfile {
	return domain.Profiles()
}

func (m *mockArchetypeService) Get(ctx context.Context, id domain.ArchetypeID) (*domain.ArchetypeProfile, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	if id < 0 || id >= domain.ArchetypeCount {
		return nil, domain.ErrNotFound
	}
	profile := domain.ProfileByID(id)
	return &profile, nil
}

type mockDietService struct {
	planFunc func(ctx context.Context, req *domain.DietPlanRequest) (*domain.DietPlanResult, error)
}

func (m *mockDietService) Plan(ctx context.Context, req *domain.DietPlanRequest) (*domain.DietPlanResult, error) {
	if m.planFunc != nil {
		return m.planFunc(ctx, req)
	}
	return &domain.DietPlanResult{
		ArchetypeID:  domain.ArchetypeEnthusiast,
		BMI:          22.86,
		Plan:         domain.DietPlanForGoal(req.Goal),
		ShoppingList: domain.WeeklyShoppingList,
	}, nil
}

type mockWorkoutService struct {
	buildFunc func(ctx context.Context, req *domain.WorkoutPlanRequest) (*domain.WorkoutPlan, error)
}

func (m *mockWorkoutService) Build(ctx context.Context, req *domain.WorkoutPlanRequest) (*domain.WorkoutPlan, error) {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, req)
	}
	return &domain.WorkoutPlan{
		ArchetypeID:   domain.ArchetypeEnthusiast,
		ArchetypeName: "Fitness Enthusiasts",
		Difficulty:    req.Difficulty,
		Workouts:      domain.MenuFor(domain.ArchetypeEnthusiast, req.Difficulty),
	}, nil
}

type mockExplorerService struct {
	datasetFunc func(ctx context.Context, seed int64, samples, limit int) (*domain.Dataset, error)

	lastSeed    int64
	lastSamples int
	lastLimit   int
}

func (m *mockExplorerService) Dataset(ctx context.Context, seed int64, samples, limit int) (*domain.Dataset, error) {
	m.lastSeed, m.lastSamples, m.lastLimit = seed, samples, limit
	if m.datasetFunc != nil {
		return m.datasetFunc(ctx, seed, samples, limit)
	}
	return &domain.Dataset{Seed: seed, Samples: samples}, nil
}

func (m *mockExplorerService) Summary(ctx context.Context, seed int64, samples int) (*domain.DatasetSummary, error) {
	m.lastSeed, m.lastSamples = seed, samples
	return &domain.DatasetSummary{Seed: seed, Samples: samples}, nil
}

func (m *mockExplorerService) Correlations(ctx context.Context, seed int64, samples int) (*domain.CorrelationMatrix, error) {
	m.lastSeed, m.lastSamples = seed, samples
	return &domain.CorrelationMatrix{Seed: seed, Samples: samples}, nil
}

func (m *mockExplorerService) Clusters(ctx context.Context, seed int64, samples int) (*domain.ClusterReport, error) {
	m.lastSeed, m.lastSamples = seed, samples
	return &domain.ClusterReport{Seed: seed, Samples: samples}, nil
}

func (m *mockExplorerService) Overview(ctx context.Context) *domain.DashboardOverview {
	return &domain.DashboardOverview{UsersAnalyzed: 20000}
}

type mockCoachService struct {
	generateFunc func(ctx context.Context, req *domain.CoachRequest) (*domain.CoachResult, error)
}

func (m *mockCoachService) Generate(ctx context.Context, req *domain.CoachRequest) (*domain.CoachResult, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return &domain.CoachResult{
		Archetype: domain.ProfileByID(domain.ArchetypeEnthusiast),
		Insights: domain.CoachOutput{
			Summary:      "Solid profile.",
			Observations: []string{"BMI in range"},
			Guidance:     []string{"Keep training"},
		},
	}, nil
}

// mockLangfuseClient for feedback tests
type mockLangfuseClient struct {
	enabled    bool
	scoreCalls int
	lastScore  langfuse.ScoreInput
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scoreCalls++
	m.lastScore = in
	return nil
}
