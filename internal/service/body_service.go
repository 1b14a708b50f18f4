package service

import (
	"context"

	"github.com/smartfit/fitness-api/internal/domain"
)

// Body fat estimates are clamped into this range regardless of inputs.
const (
	MinBodyFatPercent = 5.0
	MaxBodyFatPercent = 50.0
)

// BodyCompositionService estimates BMI, body fat and the BMI category.
type BodyCompositionService interface {
	// Estimate computes the body composition estimate.
	Estimate(ctx context.Context, req *domain.BodyCompositionRequest) (*domain.BodyComposition, error)
}

type bodyCompositionService struct{}

// NewBodyCompositionService creates a new BodyCompositionService.
func NewBodyCompositionService() BodyCompositionService {
	return &bodyCompositionService{}
}

func (s *bodyCompositionService) Estimate(ctx context.Context, req *domain.BodyCompositionRequest) (*domain.BodyComposition, error) {
	if req.WeightKg <= 0 || req.HeightM <= 0 {
		return nil, domain.ErrInvalidInput
	}

	bmi := bmiValue(req.WeightKg, req.HeightM)

	return &domain.BodyComposition{
		BMI:            bmi,
		BodyFatPercent: bodyFatPercent(bmi, req.Age, req.Gender),
		Category:       bmiCategory(bmi),
	}, nil
}

// bmiValue computes the Body Mass Index from weight (kg) and height (m).
func bmiValue(weightKg, heightM float64) float64 {
	return weightKg / (heightM * heightM)
}

// bodyFatPercent applies the simplified linear body-fat estimate. The
// result is non-clinical and always clamped into [5,50].
func bodyFatPercent(bmi float64, age int, gender domain.Gender) float64 {
	offset := 5.4
	if gender == domain.GenderMale {
		offset = 16.2
	}
	bf := 1.20*bmi + 0.23*float64(age) - offset

	if bf < MinBodyFatPercent {
		return MinBodyFatPercent
	}
	if bf > MaxBodyFatPercent {
		return MaxBodyFatPercent
	}
	return bf
}

// bmiCategory maps BMI to its category. The ladder is strict: the lowest
// matching bound wins, with no overlap between bands.
func bmiCategory(bmi float64) domain.BMICategory {
	switch {
	case bmi < 18.5:
		return domain.BMIUnderweight
	case bmi < 25:
		return domain.BMINormal
	case bmi < 30:
		return domain.BMIOverweight
	default:
		return domain.BMIObese
	}
}
