package service

import (
	"context"
	"math"

	"github.com/smartfit/fitness-api/internal/domain"
)

// metValues maps workout intensity to its MET (metabolic equivalent)
// constant. Unknown intensities fall back to the Medium value.
var metValues = map[domain.Intensity]float64{
	domain.IntensityLow:      3.5,
	domain.IntensityMedium:   6.0,
	domain.IntensityHigh:     8.5,
	domain.IntensityVeryHigh: 10.5,
}

// genderFactors adjusts the base estimate per gender. Unknown values
// default to 1.0.
var genderFactors = map[domain.Gender]float64{
	domain.GenderMale:   1.1,
	domain.GenderFemale: 1.0,
}

// workoutTypeFactors adjusts the base estimate per workout category.
// Unknown values default to 1.0.
var workoutTypeFactors = map[domain.WorkoutType]float64{
	domain.WorkoutCardio:   1.2,
	domain.WorkoutStrength: 0.9,
	domain.WorkoutHIIT:     1.5,
	domain.WorkoutYoga:     0.6,
	domain.WorkoutSports:   1.3,
}

// fatCaloriesPerGram converts burned calories to estimated fat grams,
// assuming 30% of the burn comes from fat at 9 kcal per gram.
const fatShare = 0.3

// CalorieService estimates calories burned for a single workout session.
type CalorieService interface {
	// Estimate computes the calorie burn estimate for one session.
	Estimate(ctx context.Context, req *domain.CalorieEstimateRequest) (*domain.CalorieEstimate, error)
}

type calorieService struct{}

// NewCalorieService creates a new CalorieService.
func NewCalorieService() CalorieService {
	return &calorieService{}
}

func (s *calorieService) Estimate(ctx context.Context, req *domain.CalorieEstimateRequest) (*domain.CalorieEstimate, error) {
	if req.DurationMinutes <= 0 || req.WeightKg <= 0 {
		return nil, domain.ErrInvalidInput
	}

	base := calorieBase(req.DurationMinutes, req.Intensity, req.WeightKg, req.Age)
	calories := base * genderFactor(req.Gender) * workoutTypeFactor(req.WorkoutType)

	return &domain.CalorieEstimate{
		Calories:            round2(calories),
		PerMinute:           round2(calories / float64(req.DurationMinutes)),
		FatBurnedGrams:      round2(calories * fatShare / 9),
		WeeklyThreeSessions: round2(calories * 3),
	}, nil
}

// calorieBase computes the MET-based calorie estimate for a session.
// The base is rounded to two decimals before any gender or workout-type
// multiplier is applied. The age parameter is part of the contract but
// does not enter the formula.
func calorieBase(durationMinutes int, intensity domain.Intensity, weightKg float64, _ int) float64 {
	met, ok := metValues[intensity]
	if !ok {
		met = metValues[domain.IntensityMedium]
	}
	return round2((met * 3.5 * weightKg / 200) * float64(durationMinutes))
}

func genderFactor(g domain.Gender) float64 {
	if f, ok := genderFactors[g]; ok {
		return f
	}
	return 1.0
}

func workoutTypeFactor(t domain.WorkoutType) float64 {
	if f, ok := workoutTypeFactors[t]; ok {
		return f
	}
	return 1.0
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
