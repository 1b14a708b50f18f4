package service

import (
	"context"

	"github.com/smartfit/fitness-api/internal/domain"
)

// ArchetypeService assigns fitness archetypes and serves archetype profiles.
type ArchetypeService interface {
	// Classify assigns an archetype from the full metrics profile.
	Classify(ctx context.Context, req *domain.ClassifyRequest) (*domain.ClassifyResult, error)
	// List returns all archetype profiles in ID order.
	List(ctx context.Context) []domain.ArchetypeProfile
	// Get returns a single archetype profile.
	Get(ctx context.Context, id domain.ArchetypeID) (*domain.ArchetypeProfile, error)
}

type archetypeService struct{}

// NewArchetypeService creates a new ArchetypeService.
func NewArchetypeService() ArchetypeService {
	return &archetypeService{}
}

func (s *archetypeService) Classify(ctx context.Context, req *domain.ClassifyRequest) (*domain.ClassifyResult, error) {
	if req.WeightKg <= 0 || req.HeightM <= 0 {
		return nil, domain.ErrInvalidInput
	}

	bmi := bmiValue(req.WeightKg, req.HeightM)
	id := classifyArchetype(bmi, req.MaxBPM, req.Experience, req.DurationMinutes, req.WeeklyFrequency, req.Intensity)

	return &domain.ClassifyResult{
		ArchetypeID: id,
		BMI:         bmi,
		Profile:     domain.ProfileByID(id),
	}, nil
}

func (s *archetypeService) List(ctx context.Context) []domain.ArchetypeProfile {
	return domain.Profiles()
}

func (s *archetypeService) Get(ctx context.Context, id domain.ArchetypeID) (*domain.ArchetypeProfile, error) {
	if id < 0 || id >= domain.ArchetypeCount {
		return nil, domain.ErrNotFound
	}
	profile := domain.ProfileByID(id)
	return &profile, nil
}

// classifyArchetype is a priority-ordered rule list; the first matching rule
// wins. Rules are not mutually exclusive, so the order is load-bearing: a
// user matching both the elite and strength conditions is an Elite Athlete.
func classifyArchetype(bmi float64, maxBPM int, exp domain.Experience, durationMin, weeklyFreq int, intensity domain.Intensity) domain.ArchetypeID {
	switch {
	case maxBPM > 175 && exp == domain.ExperienceElite && durationMin > 60:
		return domain.ArchetypeEliteAthlete
	case (exp == domain.ExperienceAdvanced || exp == domain.ExperienceElite) &&
		(intensity == domain.IntensityHigh || intensity == domain.IntensityVeryHigh):
		return domain.ArchetypeStrengthBuilder
	case exp == domain.ExperienceIntermediate && weeklyFreq >= 3:
		return domain.ArchetypeEnthusiast
	case exp == domain.ExperienceBeginner || weeklyFreq <= 2:
		return domain.ArchetypeBeginner
	case bmi > 30:
		return domain.ArchetypeHealthFocus
	default:
		return domain.ArchetypeEnthusiast
	}
}

// classifyForDiet is the diet planner's own archetype assignment. Its rules
// deliberately differ from classifyArchetype and the two are kept separate:
// the same inputs can legitimately produce different assignments in the two
// modes.
func classifyForDiet(bmi float64, goal domain.Goal) domain.ArchetypeID {
	switch {
	case bmi < 22 && goal == domain.GoalMuscleGain:
		return domain.ArchetypeStrengthBuilder
	case goal == domain.GoalEndurance:
		return domain.ArchetypeEliteAthlete
	case bmi > 28 && goal == domain.GoalWeightLoss:
		return domain.ArchetypeHealthFocus
	default:
		return domain.ArchetypeEnthusiast
	}
}
