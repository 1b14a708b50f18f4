package domain

// CoachRequest is the request body for LLM coach insights.
// @Description Full user metrics for generating coaching advice.
type CoachRequest struct {
	// Age in years
	Age int `json:"age" validate:"required,min=18,max=80" example:"30"`
	// Body weight in kilograms
	WeightKg float64 `json:"weight_kg" validate:"required,min=40,max=200" example:"70"`
	// Height in meters
	HeightM float64 `json:"height_m" validate:"required,min=1.4,max=2.2" example:"1.75"`
	// Gender for the estimation formulas
	Gender Gender `json:"gender" validate:"required,oneof=Male Female" example:"Male" enums:"Male,Female"`
	// Maximum heart rate in BPM
	MaxBPM int `json:"max_bpm" validate:"required,min=100,max=200" example:"160"`
	// Typical workout duration in minutes
	DurationMinutes int `json:"duration_minutes" validate:"required,min=10,max=180" example:"45"`
	// Workouts per week
	WeeklyFrequency int `json:"weekly_frequency" validate:"required,min=1,max=7" example:"4"`
	// Training experience level
	Experience Experience `json:"experience" validate:"required,oneof=Beginner Intermediate Advanced Elite" example:"Intermediate" enums:"Beginner,Intermediate,Advanced,Elite"`
	// Preferred workout intensity
	Intensity Intensity `json:"intensity" validate:"required,oneof=Low Medium High 'Very High'" example:"Medium" enums:"Low,Medium,High,Very High"`
	// Usual workout category
	WorkoutType WorkoutType `json:"workout_type" validate:"required,oneof=Cardio Strength HIIT Yoga Sports" example:"Cardio" enums:"Cardio,Strength,HIIT,Yoga,Sports"`
	// Primary goal
	Goal Goal `json:"goal" validate:"required,oneof='Weight Loss' 'Muscle Gain' Maintenance Endurance" example:"Weight Loss" enums:"Weight Loss,Muscle Gain,Maintenance,Endurance"`
}

// CoachContext is the computed context handed to the LLM.
// @Description Engine outputs used as grounding for the coach.
type CoachContext struct {
	Goal       Goal             `json:"goal"`
	Body       BodyComposition  `json:"body"`
	Session    CalorieEstimate  `json:"session"`
	Archetype  ArchetypeProfile `json:"archetype"`
	Projection WeightProjection `json:"projection"`
}

// CoachOutput is the structured output from the LLM.
// @Description LLM-generated coaching advice.
type CoachOutput struct {
	// Summary of the user's current standing (2-3 sentences)
	Summary string `json:"summary" example:"Your numbers put you firmly in the enthusiast range..."`
	// Observations about the computed estimates (3-6 items)
	Observations []string `json:"observations" example:"[\"A BMI of 22.9 sits in the normal range\"]"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance" example:"[\"Adding one more weekly session would roughly double your projected loss\"]"`
}

// CoachResult is the response of the coach insights endpoint.
// @Description Coaching advice with the computed estimates it is based on.
type CoachResult struct {
	// Assigned archetype profile
	Archetype ArchetypeProfile `json:"archetype"`
	// Body composition estimate
	Body BodyComposition `json:"body"`
	// Per-session calorie estimate
	Session CalorieEstimate `json:"session"`
	// Twelve-week weight projection for the stated goal
	Projection WeightProjection `json:"projection"`
	// LLM-generated advice
	Insights CoachOutput `json:"insights"`
	// Trace ID for feedback (present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}
