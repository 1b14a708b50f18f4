package domain

// ArchetypeID identifies one of the five fixed fitness archetypes.
// @Description Fitness archetype ID in [0,4].
type ArchetypeID int

const (
	ArchetypeEliteAthlete    ArchetypeID = 0
	ArchetypeStrengthBuilder ArchetypeID = 1
	ArchetypeEnthusiast      ArchetypeID = 2
	ArchetypeBeginner        ArchetypeID = 3
	ArchetypeHealthFocus     ArchetypeID = 4
)

// ArchetypeCount is the number of defined archetypes.
const ArchetypeCount = 5

// AttributeScores holds the 0-100 attribute scores of an archetype.
// @Description Fitness attribute scores, each in [0,100].
type AttributeScores struct {
	Strength    int `json:"strength" example:"85"`
	Endurance   int `json:"endurance" example:"95"`
	Flexibility int `json:"flexibility" example:"70"`
	Power       int `json:"power" example:"90"`
	Recovery    int `json:"recovery" example:"80"`
}

// ArchetypeProfile describes one fitness archetype.
// @Description Static profile of a fitness archetype.
type ArchetypeProfile struct {
	// Archetype ID in [0,4]
	ID ArchetypeID `json:"id" example:"0"`
	// Display name
	Name string `json:"name" example:"Elite Athletes"`
	// Short description
	Description string `json:"description"`
	// Typical characteristics, in display order
	Traits []string `json:"traits"`
	// Attribute scores
	Attributes AttributeScores `json:"attributes"`
}

// archetypeProfiles is the static archetype table. Never mutated after init.
var archetypeProfiles = [ArchetypeCount]ArchetypeProfile{
	{
		ID:          ArchetypeEliteAthlete,
		Name:        "Elite Athletes",
		Description: "High intensity workouts, excellent cardiovascular health, low body fat",
		Traits: []string{
			"Max BPM: 170-190",
			"BMI: 18-23",
			"Fat %: 8-15%",
			"Workout Duration: 60-90 min",
		},
		Attributes: AttributeScores{Strength: 85, Endurance: 95, Flexibility: 70, Power: 90, Recovery: 80},
	},
	{
		ID:          ArchetypeStrengthBuilder,
		Name:        "Strength Builders",
		Description: "Focus on resistance training, moderate cardio, muscle building phase",
		Traits: []string{
			"Max BPM: 150-170",
			"BMI: 24-27",
			"Fat %: 15-22%",
			"Workout Duration: 45-75 min",
		},
		Attributes: AttributeScores{Strength: 95, Endurance: 70, Flexibility: 65, Power: 85, Recovery: 75},
	},
	{
		ID:          ArchetypeEnthusiast,
		Name:        "Fitness Enthusiasts",
		Description: "Balanced workout routine, maintaining healthy lifestyle",
		Traits: []string{
			"Max BPM: 140-165",
			"BMI: 22-26",
			"Fat %: 18-25%",
			"Workout Duration: 30-60 min",
		},
		Attributes: AttributeScores{Strength: 70, Endurance: 75, Flexibility: 75, Power: 70, Recovery: 80},
	},
	{
		ID:          ArchetypeBeginner,
		Name:        "Beginners",
		Description: "Starting fitness journey, building foundational strength",
		Traits: []string{
			"Max BPM: 130-150",
			"BMI: 25-30",
			"Fat %: 22-32%",
			"Workout Duration: 20-45 min",
		},
		Attributes: AttributeScores{Strength: 50, Endurance: 55, Flexibility: 60, Power: 50, Recovery: 65},
	},
	{
		ID:          ArchetypeHealthFocus,
		Name:        "Health Focus",
		Description: "Medical considerations, low-impact activities, gradual progression",
		Traits: []string{
			"Max BPM: 110-140",
			"BMI: 28-35+",
			"Fat %: 28-40%+",
			"Workout Duration: 15-30 min",
		},
		Attributes: AttributeScores{Strength: 45, Endurance: 50, Flexibility: 55, Power: 45, Recovery: 60},
	},
}

// Profiles returns all archetype profiles in ID order.
func Profiles() []ArchetypeProfile {
	out := make([]ArchetypeProfile, ArchetypeCount)
	copy(out, archetypeProfiles[:])
	return out
}

// ProfileByID returns the profile for the given archetype. Unknown IDs fall
// back to the Fitness Enthusiasts profile.
func ProfileByID(id ArchetypeID) ArchetypeProfile {
	if id < 0 || id >= ArchetypeCount {
		return archetypeProfiles[ArchetypeEnthusiast]
	}
	return archetypeProfiles[id]
}

// ClassifyRequest is the request body for the archetype classifier.
// @Description Inputs for the rule-based archetype classification.
type ClassifyRequest struct {
	// Age in years
	Age int `json:"age" validate:"required,min=18,max=80" example:"30"`
	// Body weight in kilograms
	WeightKg float64 `json:"weight_kg" validate:"required,min=40,max=200" example:"70"`
	// Height in meters
	HeightM float64 `json:"height_m" validate:"required,min=1.4,max=2.2" example:"1.75"`
	// Maximum heart rate in BPM
	MaxBPM int `json:"max_bpm" validate:"required,min=100,max=200" example:"160"`
	// Average workout duration in minutes
	DurationMinutes int `json:"duration_minutes" validate:"required,min=15,max=120" example:"45"`
	// Workouts per week
	WeeklyFrequency int `json:"weekly_frequency" validate:"required,min=1,max=7" example:"4"`
	// Training experience level
	Experience Experience `json:"experience" validate:"required,oneof=Beginner Intermediate Advanced Elite" example:"Intermediate" enums:"Beginner,Intermediate,Advanced,Elite"`
	// Preferred workout intensity
	Intensity Intensity `json:"intensity" validate:"required,oneof=Low Medium High 'Very High'" example:"Medium" enums:"Low,Medium,High,Very High"`
}

// ClassifyResult is the archetype classification result.
// @Description Assigned archetype with the derived BMI and full profile.
type ClassifyResult struct {
	// Assigned archetype ID
	ArchetypeID ArchetypeID `json:"archetype_id" example:"2"`
	// BMI derived from weight and height
	BMI float64 `json:"bmi" example:"22.86"`
	// Full archetype profile
	Profile ArchetypeProfile `json:"profile"`
}
