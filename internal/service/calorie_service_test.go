package service

import (
	"context"
	"math"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/smartfit/fitness-api/internal/domain"
)

func TestCalorieService_Estimate(t *testing.T) {
	tests := []struct {
		name         string
		req          *domain.CalorieEstimateRequest
		wantCalories float64
	}{
		{
			name: "male cardio medium intensity",
			req: &domain.CalorieEstimateRequest{
				DurationMinutes: 45,
				Intensity:       domain.IntensityMedium,
				WeightKg:        70,
				Age:             30,
				Gender:          domain.GenderMale,
				WorkoutType:     domain.WorkoutCardio,
			},
			// base (6.0*3.5*70/200)*45 = 66.15, then *1.1*1.2
			wantCalories: 87.32,
		},
		{
			name: "female yoga low intensity",
			req: &domain.CalorieEstimateRequest{
				DurationMinutes: 60,
				Intensity:       domain.IntensityLow,
				WeightKg:        60,
				Age:             25,
				Gender:          domain.GenderFemale,
				WorkoutType:     domain.WorkoutYoga,
			},
			// base (3.5*3.5*60/200)*60 = 220.5, then *1.0*0.6
			wantCalories: 132.3,
		},
		{
			name: "unknown intensity falls back to medium",
			req: &domain.CalorieEstimateRequest{
				DurationMinutes: 45,
				Intensity:       domain.Intensity("Extreme"),
				WeightKg:        70,
				Age:             30,
				Gender:          domain.GenderMale,
				WorkoutType:     domain.WorkoutCardio,
			},
			wantCalories: 87.32,
		},
		{
			name: "unknown workout type keeps factor 1.0",
			req: &domain.CalorieEstimateRequest{
				DurationMinutes: 45,
				Intensity:       domain.IntensityMedium,
				WeightKg:        70,
				Age:             30,
				Gender:          domain.GenderFemale,
				WorkoutType:     domain.WorkoutType("Swimming"),
			},
			wantCalories: 66.15,
		},
		{
			name: "very high intensity HIIT",
			req: &domain.CalorieEstimateRequest{
				DurationMinutes: 30,
				Intensity:       domain.IntensityVeryHigh,
				WeightKg:        80,
				Age:             40,
				Gender:          domain.GenderMale,
				WorkoutType:     domain.WorkoutHIIT,
			},
			// base (10.5*3.5*80/200)*30 = 441, then *1.1*1.5
			wantCalories: 727.65,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCalorieService()

			got, err := svc.Estimate(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Estimate() error = %v", err)
			}
			if got.Calories != tt.wantCalories {
				t.Errorf("Estimate() calories = %v, want %v", got.Calories, tt.wantCalories)
			}
		})
	}
}

func TestCalorieService_Estimate_DerivedFields(t *testing.T) {
	svc := NewCalorieService()

	got, err := svc.Estimate(context.Background(), &domain.CalorieEstimateRequest{
		DurationMinutes: 45,
		Intensity:       domain.IntensityMedium,
		WeightKg:        70,
		Age:             30,
		Gender:          domain.GenderMale,
		WorkoutType:     domain.WorkoutCardio,
	})
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}

	if got.PerMinute != 1.94 {
		t.Errorf("PerMinute = %v, want 1.94", got.PerMinute)
	}
	if got.FatBurnedGrams != 2.91 {
		t.Errorf("FatBurnedGrams = %v, want 2.91", got.FatBurnedGrams)
	}
	if got.WeeklyThreeSessions != 261.95 {
		t.Errorf("WeeklyThreeSessions = %v, want 261.95", got.WeeklyThreeSessions)
	}
}

func TestCalorieService_Estimate_InvalidInput(t *testing.T) {
	svc := NewCalorieService()

	tests := []struct {
		name string
		req  *domain.CalorieEstimateRequest
	}{
		{"zero duration", &domain.CalorieEstimateRequest{DurationMinutes: 0, WeightKg: 70}},
		{"negative weight", &domain.CalorieEstimateRequest{DurationMinutes: 45, WeightKg: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Estimate(context.Background(), tt.req); err != domain.ErrInvalidInput {
				t.Errorf("Estimate() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCalorieService_Estimate_RoundingOrder(t *testing.T) {
	// A weight chosen so the raw base has more than two decimals. The base
	// must be rounded before the multipliers are applied.
	svc := NewCalorieService()

	req := &domain.CalorieEstimateRequest{
		DurationMinutes: 37,
		Intensity:       domain.IntensityHigh,
		WeightKg:        71.3,
		Age:             30,
		Gender:          domain.GenderMale,
		WorkoutType:     domain.WorkoutStrength,
	}

	rawBase := (8.5 * 3.5 * 71.3 / 200) * 37
	roundedBase := math.Round(rawBase*100) / 100
	want := math.Round(roundedBase*1.1*0.9*100) / 100

	got, err := svc.Estimate(context.Background(), req)
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if got.Calories != want {
		t.Errorf("Estimate() calories = %v, want %v (rounded base %v)", got.Calories, want, roundedBase)
	}
}

func TestCalorieService_Estimate_Deterministic(t *testing.T) {
	gofakeit.Seed(11)
	svc := NewCalorieService()

	for i := 0; i < 50; i++ {
		req := &domain.CalorieEstimateRequest{
			DurationMinutes: gofakeit.Number(10, 180),
			Intensity:       domain.Intensity(gofakeit.RandomString([]string{"Low", "Medium", "High", "Very High"})),
			WeightKg:        gofakeit.Float64Range(40, 200),
			Age:             gofakeit.Number(18, 80),
			Gender:          domain.Gender(gofakeit.RandomString([]string{"Male", "Female"})),
			WorkoutType:     domain.WorkoutType(gofakeit.RandomString([]string{"Cardio", "Strength", "HIIT", "Yoga", "Sports"})),
		}

		first, err := svc.Estimate(context.Background(), req)
		if err != nil {
			t.Fatalf("Estimate() error = %v", err)
		}
		second, err := svc.Estimate(context.Background(), req)
		if err != nil {
			t.Fatalf("Estimate() error = %v", err)
		}

		if first.Calories != second.Calories {
			t.Fatalf("Estimate() not deterministic: %v vs %v", first.Calories, second.Calories)
		}
		if first.Calories <= 0 {
			t.Fatalf("Estimate() calories = %v, want > 0", first.Calories)
		}
	}
}
