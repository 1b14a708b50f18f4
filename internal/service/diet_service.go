package service

import (
	"context"

	"github.com/smartfit/fitness-api/internal/domain"
)

// DietPlanService builds personalized diet plans.
type DietPlanService interface {
	// Plan selects the diet plan for the request and resolves its macros.
	Plan(ctx context.Context, req *domain.DietPlanRequest) (*domain.DietPlanResult, error)
}

type dietPlanService struct{}

// NewDietPlanService creates a new DietPlanService.
func NewDietPlanService() DietPlanService {
	return &dietPlanService{}
}

func (s *dietPlanService) Plan(ctx context.Context, req *domain.DietPlanRequest) (*domain.DietPlanResult, error) {
	if req.WeightKg <= 0 || req.HeightM <= 0 {
		return nil, domain.ErrInvalidInput
	}

	bmi := bmiValue(req.WeightKg, req.HeightM)

	// The diet-mode archetype is reported to the caller, but the plan
	// lookup keys on the goal alone.
	id := classifyForDiet(bmi, req.Goal)
	plan := domain.DietPlanForGoal(req.Goal)

	return &domain.DietPlanResult{
		ArchetypeID:  id,
		BMI:          bmi,
		Plan:         plan,
		Macros:       macroBreakdown(plan, req.WeightKg),
		ShoppingList: domain.WeeklyShoppingList,
	}, nil
}

// macroBreakdown resolves the plan's lower-bound targets against the user's
// bodyweight. Protein scales per kg; carbs and fat are absolute daily grams.
// Calories use 4 kcal/g for protein and carbs and 9 kcal/g for fat.
func macroBreakdown(plan domain.DietPlan, weightKg float64) domain.MacroBreakdown {
	proteinGrams := plan.ProteinPerKg.Min * weightKg
	carbGrams := plan.CarbsPerDay.Min
	fatGrams := plan.FatPerDay.Min

	return domain.MacroBreakdown{
		ProteinGrams:    round2(proteinGrams),
		CarbGrams:       carbGrams,
		FatGrams:        fatGrams,
		ProteinCalories: round2(proteinGrams * 4),
		CarbCalories:    carbGrams * 4,
		FatCalories:     fatGrams * 9,
	}
}
