package domain

// Gender is used by the calorie and body-fat estimators.
// @Description Biological sex used by the estimation formulas.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Intensity represents the workout intensity level used for MET lookup.
// @Description Workout intensity level: Low, Medium, High or Very High.
type Intensity string

const (
	IntensityLow      Intensity = "Low"
	IntensityMedium   Intensity = "Medium"
	IntensityHigh     Intensity = "High"
	IntensityVeryHigh Intensity = "Very High"
)

// WorkoutType selects the workout-type calorie multiplier.
// @Description Workout category: Cardio, Strength, HIIT, Yoga or Sports.
type WorkoutType string

const (
	WorkoutCardio   WorkoutType = "Cardio"
	WorkoutStrength WorkoutType = "Strength"
	WorkoutHIIT     WorkoutType = "HIIT"
	WorkoutYoga     WorkoutType = "Yoga"
	WorkoutSports   WorkoutType = "Sports"
)

// Experience is the self-reported training experience level.
// @Description Training experience: Beginner, Intermediate, Advanced or Elite.
type Experience string

const (
	ExperienceBeginner     Experience = "Beginner"
	ExperienceIntermediate Experience = "Intermediate"
	ExperienceAdvanced     Experience = "Advanced"
	ExperienceElite        Experience = "Elite"
)

// Difficulty selects a workout menu within an archetype.
// @Description Workout difficulty: Low, Medium or High.
type Difficulty string

const (
	DifficultyLow    Difficulty = "Low"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHigh   Difficulty = "High"
)

// Goal is the user's primary diet/training goal.
// @Description Primary goal: Weight Loss, Muscle Gain, Maintenance or Endurance.
type Goal string

const (
	GoalWeightLoss  Goal = "Weight Loss"
	GoalMuscleGain  Goal = "Muscle Gain"
	GoalMaintenance Goal = "Maintenance"
	GoalEndurance   Goal = "Endurance"
)

// CalorieEstimateRequest is the request body for the calorie burn estimator.
// @Description Inputs for a single-session calorie burn estimate.
type CalorieEstimateRequest struct {
	// Workout duration in minutes
	DurationMinutes int `json:"duration_minutes" validate:"required,min=10,max=180" example:"45" minimum:"10" maximum:"180"`
	// Workout intensity level
	Intensity Intensity `json:"intensity" validate:"required,oneof=Low Medium High 'Very High'" example:"Medium" enums:"Low,Medium,High,Very High"`
	// Body weight in kilograms
	WeightKg float64 `json:"weight_kg" validate:"required,min=40,max=200" example:"70" minimum:"40" maximum:"200"`
	// Age in years
	Age int `json:"age" validate:"required,min=18,max=80" example:"30" minimum:"18" maximum:"80"`
	// Gender for the calorie multiplier
	Gender Gender `json:"gender" validate:"required,oneof=Male Female" example:"Male" enums:"Male,Female"`
	// Workout category for the type multiplier
	WorkoutType WorkoutType `json:"workout_type" validate:"required,oneof=Cardio Strength HIIT Yoga Sports" example:"Cardio" enums:"Cardio,Strength,HIIT,Yoga,Sports"`
}

// CalorieEstimate is the result of a calorie burn estimate.
// @Description Estimated calories burned for a single session plus derived figures.
type CalorieEstimate struct {
	// Total estimated calories burned (kcal)
	Calories float64 `json:"calories" example:"87.32"`
	// Calories burned per minute (kcal/min)
	PerMinute float64 `json:"per_minute" example:"1.94"`
	// Estimated fat burned in grams
	FatBurnedGrams float64 `json:"fat_burned_grams" example:"2.91"`
	// Weekly total at three sessions (kcal)
	WeeklyThreeSessions float64 `json:"weekly_three_sessions" example:"261.95"`
}

// BodyCompositionRequest is the request body for the body composition estimator.
// @Description Inputs for the BMI and body-fat estimate.
type BodyCompositionRequest struct {
	// Body weight in kilograms
	WeightKg float64 `json:"weight_kg" validate:"required,min=40,max=200" example:"70"`
	// Height in meters
	HeightM float64 `json:"height_m" validate:"required,min=1.4,max=2.2" example:"1.75"`
	// Age in years
	Age int `json:"age" validate:"required,min=18,max=80" example:"30"`
	// Gender for the body-fat formula
	Gender Gender `json:"gender" validate:"required,oneof=Male Female" example:"Male" enums:"Male,Female"`
}

// BMICategory is the BMI classification band.
// @Description BMI category: Underweight, Normal Weight, Overweight or Obese.
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal Weight"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// BodyComposition is the result of a body composition estimate.
// @Description BMI, estimated body fat percentage and BMI category.
type BodyComposition struct {
	// Body Mass Index (kg/m²)
	BMI float64 `json:"bmi" example:"22.86"`
	// Estimated body fat percentage, clamped to [5,50]
	BodyFatPercent float64 `json:"body_fat_percent" example:"18.13"`
	// BMI category
	Category BMICategory `json:"category" example:"Normal Weight"`
}

// WeightProjectionRequest is the request body for the weight projection simulator.
// @Description Inputs for projecting weight change over a training period.
type WeightProjectionRequest struct {
	// Current body weight in kilograms
	CurrentWeightKg float64 `json:"current_weight_kg" validate:"required,min=40,max=200" example:"75"`
	// Workouts per week
	WeeklyWorkouts int `json:"weekly_workouts" validate:"required,min=1,max=7" example:"4"`
	// Average workout duration in minutes
	AvgDurationMinutes int `json:"avg_duration_minutes" validate:"required,min=20,max=120" example:"45"`
	// Diet goal driving the daily caloric delta
	Goal Goal `json:"goal" validate:"required,oneof='Weight Loss' Maintenance 'Muscle Gain'" example:"Weight Loss" enums:"Weight Loss,Maintenance,Muscle Gain"`
	// Projection period in weeks
	Weeks int `json:"weeks" validate:"required,min=4,max=52" example:"12"`
}

// ProjectionPoint is one sampled point of a weight projection series.
// @Description A (week, weight) sample of the projection.
type ProjectionPoint struct {
	Week     int     `json:"week" example:"4"`
	WeightKg float64 `json:"weight_kg" example:"74.2"`
}

// WeightProjection is the result of a weight projection.
// @Description Projected final weight and the sampled weekly series.
type WeightProjection struct {
	// Projected weight at the end of the period (kg)
	FinalWeightKg float64 `json:"final_weight_kg" example:"72.6"`
	// Total projected change (kg, signed)
	TotalChangeKg float64 `json:"total_change_kg" example:"-2.4"`
	// Total change as a percentage of the starting weight
	TotalChangePercent float64 `json:"total_change_percent" example:"-3.2"`
	// Sampled projection series, starting at week 0
	Series []ProjectionPoint `json:"series"`
}
