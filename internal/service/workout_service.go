package service

import (
	"context"

	"github.com/smartfit/fitness-api/internal/domain"
)

// experienceArchetypes maps experience level to the archetype whose workout
// menu feeds the schedule. Unknown levels fall back to Fitness Enthusiasts.
var experienceArchetypes = map[domain.Experience]domain.ArchetypeID{
	domain.ExperienceBeginner:     domain.ArchetypeBeginner,
	domain.ExperienceIntermediate: domain.ArchetypeEnthusiast,
	domain.ExperienceAdvanced:     domain.ArchetypeStrengthBuilder,
	domain.ExperienceElite:        domain.ArchetypeEliteAthlete,
}

// WorkoutPlanService builds weekly workout schedules.
type WorkoutPlanService interface {
	// Build creates the weekly schedule for the request.
	Build(ctx context.Context, req *domain.WorkoutPlanRequest) (*domain.WorkoutPlan, error)
}

type workoutPlanService struct{}

// NewWorkoutPlanService creates a new WorkoutPlanService.
func NewWorkoutPlanService() WorkoutPlanService {
	return &workoutPlanService{}
}

func (s *workoutPlanService) Build(ctx context.Context, req *domain.WorkoutPlanRequest) (*domain.WorkoutPlan, error) {
	if req.DaysPerWeek < 1 || req.DaysPerWeek > 7 {
		return nil, domain.ErrInvalidInput
	}

	id, ok := experienceArchetypes[req.Experience]
	if !ok {
		id = domain.ArchetypeEnthusiast
	}

	menu := domain.MenuFor(id, req.Difficulty)

	return &domain.WorkoutPlan{
		ArchetypeID:   id,
		ArchetypeName: domain.ProfileByID(id).Name,
		Difficulty:    req.Difficulty,
		Workouts:      menu,
		Schedule:      buildSchedule(menu, req.DaysPerWeek),
	}, nil
}

// buildSchedule assigns menu entries to the first daysPerWeek days and marks
// the remaining days as rest. Training day i picks menu[i%len] when i is
// even and menu[(i+1)%len] when i is odd, so adjacent training days differ
// whenever the menu length allows it.
func buildSchedule(menu []domain.WorkoutEntry, daysPerWeek int) []domain.ScheduleDay {
	schedule := make([]domain.ScheduleDay, 0, len(domain.WeekDays))

	for i, day := range domain.WeekDays {
		if i >= daysPerWeek || len(menu) == 0 {
			schedule = append(schedule, domain.ScheduleDay{Day: day, Rest: true})
			continue
		}

		idx := i % len(menu)
		if i%2 == 1 {
			idx = (i + 1) % len(menu)
		}

		entry := menu[idx]
		schedule = append(schedule, domain.ScheduleDay{Day: day, Workout: &entry})
	}

	return schedule
}
