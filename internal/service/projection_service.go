package service

import (
	"context"

	"github.com/smartfit/fitness-api/internal/domain"
)

const (
	// caloriesPerKg is the energy equivalent of one kilogram of bodyweight.
	caloriesPerKg = 7700.0

	// projectionReferenceAge is the fixed age fed to the calorie base for
	// projections, regardless of the user's actual age.
	projectionReferenceAge = 30

	// maxSeriesSteps bounds the number of interior sample points.
	maxSeriesSteps = 10
)

// goalCalorieDelta is the assumed daily caloric deficit/surplus per goal.
// Goals without an entry (e.g. Endurance) project as Maintenance.
var goalCalorieDelta = map[domain.Goal]float64{
	domain.GoalWeightLoss:  -500,
	domain.GoalMaintenance: 0,
	domain.GoalMuscleGain:  300,
}

// ProjectionService simulates weight change over a training period.
type ProjectionService interface {
	// Project computes the projected weight series for the request.
	Project(ctx context.Context, req *domain.WeightProjectionRequest) (*domain.WeightProjection, error)
}

type projectionService struct{}

// NewProjectionService creates a new ProjectionService.
func NewProjectionService() ProjectionService {
	return &projectionService{}
}

func (s *projectionService) Project(ctx context.Context, req *domain.WeightProjectionRequest) (*domain.WeightProjection, error) {
	if req.CurrentWeightKg <= 0 || req.AvgDurationMinutes <= 0 || req.Weeks <= 0 {
		return nil, domain.ErrInvalidInput
	}

	// The weekly burn uses the unadjusted calorie base at Medium intensity
	// and the reference age, not the user's own intensity or age.
	weeklyBurn := calorieBase(req.AvgDurationMinutes, domain.IntensityMedium, req.CurrentWeightKg, projectionReferenceAge) * float64(req.WeeklyWorkouts)

	netWeekly := weeklyBurn + goalCalorieDelta[req.Goal]*7
	changePerWeek := netWeekly / caloriesPerKg
	finalWeight := req.CurrentWeightKg + changePerWeek*float64(req.Weeks)
	totalChange := finalWeight - req.CurrentWeightKg

	step := req.Weeks / maxSeriesSteps
	if step < 1 {
		step = 1
	}

	var series []domain.ProjectionPoint
	for week := 0; week <= req.Weeks; week += step {
		series = append(series, domain.ProjectionPoint{
			Week:     week,
			WeightKg: req.CurrentWeightKg + changePerWeek*float64(week),
		})
	}

	return &domain.WeightProjection{
		FinalWeightKg:      finalWeight,
		TotalChangeKg:      totalChange,
		TotalChangePercent: totalChange / req.CurrentWeightKg * 100,
		Series:             series,
	}, nil
}
