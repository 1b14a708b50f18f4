package domain

// WorkoutEntry is one workout in an archetype's menu.
// @Description A named workout with its duration.
type WorkoutEntry struct {
	Name    string `json:"name" example:"HIIT Training"`
	Minutes int    `json:"minutes" example:"45"`
}

// workoutMenus maps (archetype, difficulty) to an ordered workout list.
// Static content, never mutated after init.
var workoutMenus = map[ArchetypeID]map[Difficulty][]WorkoutEntry{
	ArchetypeEliteAthlete: {
		DifficultyHigh: {
			{Name: "HIIT Training", Minutes: 45},
			{Name: "Marathon Running", Minutes: 90},
			{Name: "CrossFit WOD", Minutes: 60},
			{Name: "Olympic Lifting", Minutes: 75},
		},
		DifficultyMedium: {
			{Name: "Tempo Running", Minutes: 60},
			{Name: "Circuit Training", Minutes: 45},
			{Name: "Swimming", Minutes: 60},
		},
		DifficultyLow: {
			{Name: "Easy Run", Minutes: 30},
			{Name: "Yoga", Minutes: 45},
			{Name: "Stretching", Minutes: 20},
		},
	},
	ArchetypeStrengthBuilder: {
		DifficultyHigh: {
			{Name: "Heavy Compound Lifts", Minutes: 75},
			{Name: "Powerlifting Session", Minutes: 90},
			{Name: "Strongman Training", Minutes: 60},
		},
		DifficultyMedium: {
			{Name: "Hypertrophy Training", Minutes: 60},
			{Name: "Push/Pull Workout", Minutes: 45},
			{Name: "Functional Training", Minutes: 50},
		},
		DifficultyLow: {
			{Name: "Light Weight Training", Minutes: 30},
			{Name: "Mobility Work", Minutes: 25},
			{Name: "Core Strength", Minutes: 20},
		},
	},
	ArchetypeEnthusiast: {
		DifficultyHigh: {
			{Name: "Interval Training", Minutes: 40},
			{Name: "Full Body Circuit", Minutes: 45},
			{Name: "Spin Class", Minutes: 50},
		},
		DifficultyMedium: {
			{Name: "Jogging", Minutes: 35},
			{Name: "Bodyweight Exercises", Minutes: 30},
			{Name: "Pilates", Minutes: 40},
		},
		DifficultyLow: {
			{Name: "Walking", Minutes: 25},
			{Name: "Gentle Yoga", Minutes: 30},
			{Name: "Stretching", Minutes: 20},
		},
	},
	ArchetypeBeginner: {
		DifficultyHigh: {
			{Name: "Beginner HIIT", Minutes: 25},
			{Name: "Light Circuit", Minutes: 30},
			{Name: "Brisk Walking Hills", Minutes: 30},
		},
		DifficultyMedium: {
			{Name: "Beginner Strength", Minutes: 30},
			{Name: "Low-Impact Cardio", Minutes: 25},
			{Name: "Basic Yoga", Minutes: 30},
		},
		DifficultyLow: {
			{Name: "Gentle Walking", Minutes: 20},
			{Name: "Chair Exercises", Minutes: 15},
			{Name: "Breathing Exercises", Minutes: 10},
		},
	},
	ArchetypeHealthFocus: {
		DifficultyHigh: {
			{Name: "Water Aerobics", Minutes: 30},
			{Name: "Recumbent Bike", Minutes: 25},
			{Name: "Resistance Bands", Minutes: 20},
		},
		DifficultyMedium: {
			{Name: "Gentle Walking", Minutes: 20},
			{Name: "Chair Yoga", Minutes: 25},
			{Name: "Balance Training", Minutes: 20},
		},
		DifficultyLow: {
			{Name: "Stretching", Minutes: 15},
			{Name: "Seated Exercises", Minutes: 15},
			{Name: "Meditation", Minutes: 10},
		},
	},
}

// MenuFor returns the ordered workout list for an archetype and difficulty.
// Unknown archetypes fall back to the Fitness Enthusiasts menus; unknown
// difficulties fall back to that archetype's Medium list.
func MenuFor(id ArchetypeID, difficulty Difficulty) []WorkoutEntry {
	menus, ok := workoutMenus[id]
	if !ok {
		menus = workoutMenus[ArchetypeEnthusiast]
	}
	list, ok := menus[difficulty]
	if !ok {
		list = menus[DifficultyMedium]
	}
	out := make([]WorkoutEntry, len(list))
	copy(out, list)
	return out
}

// WeekDays are the schedule day names in order.
var WeekDays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ScheduleDay is one day of a weekly training schedule.
// @Description A scheduled training or rest day.
type ScheduleDay struct {
	// Day name (Monday through Sunday)
	Day string `json:"day" example:"Monday"`
	// Assigned workout; omitted on rest days
	Workout *WorkoutEntry `json:"workout,omitempty"`
	// True when this is a rest day
	Rest bool `json:"rest" example:"false"`
}

// WorkoutPlanRequest is the request body for the workout schedule builder.
// @Description Inputs for building a weekly workout schedule.
type WorkoutPlanRequest struct {
	// Training experience level (mapped to an archetype menu)
	Experience Experience `json:"experience" validate:"required,oneof=Beginner Intermediate Advanced Elite" example:"Intermediate" enums:"Beginner,Intermediate,Advanced,Elite"`
	// Difficulty preference
	Difficulty Difficulty `json:"difficulty" validate:"required,oneof=Low Medium High" example:"Medium" enums:"Low,Medium,High"`
	// Training days per week
	DaysPerWeek int `json:"days_per_week" validate:"required,min=1,max=7" example:"4"`
}

// WorkoutPlan is the weekly workout schedule result.
// @Description Weekly schedule built from the archetype's workout menu.
type WorkoutPlan struct {
	// Archetype whose menu was used
	ArchetypeID ArchetypeID `json:"archetype_id" example:"2"`
	// Archetype display name
	ArchetypeName string `json:"archetype_name" example:"Fitness Enthusiasts"`
	// Difficulty of the selected menu
	Difficulty Difficulty `json:"difficulty" example:"Medium"`
	// The menu the schedule draws from, in order
	Workouts []WorkoutEntry `json:"workouts"`
	// Seven-day schedule, Monday first
	Schedule []ScheduleDay `json:"schedule"`
}
