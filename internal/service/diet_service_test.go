package service

import (
	"context"
	"testing"

	"github.com/smartfit/fitness-api/internal/domain"
)

func TestDietPlanService_Plan(t *testing.T) {
	svc := NewDietPlanService()

	got, err := svc.Plan(context.Background(), &domain.DietPlanRequest{
		WeightKg: 70,
		HeightM:  1.75,
		Goal:     domain.GoalWeightLoss,
	})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if got.Plan.Goal != domain.GoalWeightLoss {
		t.Errorf("Plan.Goal = %v, want %v", got.Plan.Goal, domain.GoalWeightLoss)
	}
	if got.Plan.DailyCalories.Min != 1500 || got.Plan.DailyCalories.Max != 1800 {
		t.Errorf("DailyCalories = %+v, want 1500-1800", got.Plan.DailyCalories)
	}
	if len(got.Plan.Meals) != 4 {
		t.Errorf("Meals length = %d, want 4", len(got.Plan.Meals))
	}

	// Lower bounds resolved against 70 kg: 1.8 g/kg protein, 100 g carbs,
	// 40 g fat.
	if got.Macros.ProteinGrams != 126 {
		t.Errorf("ProteinGrams = %v, want 126", got.Macros.ProteinGrams)
	}
	if got.Macros.ProteinCalories != 504 {
		t.Errorf("ProteinCalories = %v, want 504", got.Macros.ProteinCalories)
	}
	if got.Macros.CarbGrams != 100 || got.Macros.CarbCalories != 400 {
		t.Errorf("carbs = %v g / %v kcal, want 100/400", got.Macros.CarbGrams, got.Macros.CarbCalories)
	}
	if got.Macros.FatGrams != 40 || got.Macros.FatCalories != 360 {
		t.Errorf("fat = %v g / %v kcal, want 40/360", got.Macros.FatGrams, got.Macros.FatCalories)
	}

	if len(got.ShoppingList.Proteins) == 0 || len(got.ShoppingList.CarbsAndVegetables) == 0 {
		t.Error("shopping list should not be empty")
	}
}

func TestDietPlanService_Plan_ArchetypeReportedButNotKeyed(t *testing.T) {
	svc := NewDietPlanService()

	// Endurance goal assigns the Elite Athletes diet archetype, yet the plan
	// itself is still the Endurance table entry.
	got, err := svc.Plan(context.Background(), &domain.DietPlanRequest{
		WeightKg: 65,
		HeightM:  1.80,
		Goal:     domain.GoalEndurance,
	})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if got.ArchetypeID != domain.ArchetypeEliteAthlete {
		t.Errorf("ArchetypeID = %v, want %v", got.ArchetypeID, domain.ArchetypeEliteAthlete)
	}
	if got.Plan.Goal != domain.GoalEndurance {
		t.Errorf("Plan.Goal = %v, want %v", got.Plan.Goal, domain.GoalEndurance)
	}
	if got.Plan.DailyCalories.Min != 2800 {
		t.Errorf("DailyCalories.Min = %v, want 2800", got.Plan.DailyCalories.Min)
	}
}

func TestDietPlanForGoal_UnknownFallsBackToMaintenance(t *testing.T) {
	plan := domain.DietPlanForGoal(domain.Goal("Bulking"))
	if plan.Goal != domain.GoalMaintenance {
		t.Errorf("Goal = %v, want %v", plan.Goal, domain.GoalMaintenance)
	}
}

func TestDietPlanService_Plan_InvalidInput(t *testing.T) {
	svc := NewDietPlanService()

	if _, err := svc.Plan(context.Background(), &domain.DietPlanRequest{WeightKg: 0, HeightM: 1.7, Goal: domain.GoalMaintenance}); err != domain.ErrInvalidInput {
		t.Errorf("Plan() error = %v, want ErrInvalidInput", err)
	}
}
