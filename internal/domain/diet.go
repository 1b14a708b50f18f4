package domain

// MacroRange is an inclusive low/high range for a nutrition figure.
// @Description Inclusive low/high range.
type MacroRange struct {
	Min float64 `json:"min" example:"1500"`
	Max float64 `json:"max" example:"1800"`
}

// DietPlan is the canned nutrition plan for a goal.
// @Description Daily calorie and macro targets with sample meals.
type DietPlan struct {
	// Goal the plan targets
	Goal Goal `json:"goal" example:"Weight Loss"`
	// Daily calories (kcal/day)
	DailyCalories MacroRange `json:"daily_calories"`
	// Protein in g per kg bodyweight
	ProteinPerKg MacroRange `json:"protein_per_kg"`
	// Carbohydrates in g/day
	CarbsPerDay MacroRange `json:"carbs_per_day"`
	// Fat in g/day
	FatPerDay MacroRange `json:"fat_per_day"`
	// Four sample meals, in order
	Meals []string `json:"meals"`
}

// dietPlans is the static plan table, keyed by goal only. The archetype
// assigned by the diet classifier does not influence the lookup.
var dietPlans = map[Goal]DietPlan{
	GoalWeightLoss: {
		Goal:          GoalWeightLoss,
		DailyCalories: MacroRange{Min: 1500, Max: 1800},
		ProteinPerKg:  MacroRange{Min: 1.8, Max: 2.2},
		CarbsPerDay:   MacroRange{Min: 100, Max: 150},
		FatPerDay:     MacroRange{Min: 40, Max: 60},
		Meals: []string{
			"Breakfast: Oatmeal with berries",
			"Lunch: Grilled chicken salad",
			"Dinner: Salmon with vegetables",
			"Snacks: Greek yogurt, almonds",
		},
	},
	GoalMuscleGain: {
		Goal:          GoalMuscleGain,
		DailyCalories: MacroRange{Min: 2500, Max: 3200},
		ProteinPerKg:  MacroRange{Min: 2.0, Max: 2.5},
		CarbsPerDay:   MacroRange{Min: 300, Max: 450},
		FatPerDay:     MacroRange{Min: 70, Max: 100},
		Meals: []string{
			"Breakfast: Eggs, whole grain toast, avocado",
			"Lunch: Rice, chicken, vegetables",
			"Dinner: Steak, sweet potato, broccoli",
			"Snacks: Protein shake, nuts, banana",
		},
	},
	GoalMaintenance: {
		Goal:          GoalMaintenance,
		DailyCalories: MacroRange{Min: 2000, Max: 2400},
		ProteinPerKg:  MacroRange{Min: 1.5, Max: 1.8},
		CarbsPerDay:   MacroRange{Min: 200, Max: 280},
		FatPerDay:     MacroRange{Min: 55, Max: 75},
		Meals: []string{
			"Breakfast: Smoothie bowl with granola",
			"Lunch: Turkey wrap with vegetables",
			"Dinner: Pasta with lean meat sauce",
			"Snacks: Fruit, trail mix",
		},
	},
	GoalEndurance: {
		Goal:          GoalEndurance,
		DailyCalories: MacroRange{Min: 2800, Max: 3500},
		ProteinPerKg:  MacroRange{Min: 1.4, Max: 1.8},
		CarbsPerDay:   MacroRange{Min: 400, Max: 600},
		FatPerDay:     MacroRange{Min: 60, Max: 90},
		Meals: []string{
			"Breakfast: Pancakes with maple syrup",
			"Lunch: Quinoa bowl with chicken",
			"Dinner: Pasta with vegetables",
			"Snacks: Energy bars, dried fruit, sports drinks",
		},
	},
}

// DietPlanForGoal returns the plan for the given goal. Unknown goals fall
// back to the Maintenance plan.
func DietPlanForGoal(goal Goal) DietPlan {
	plan, ok := dietPlans[goal]
	if !ok {
		return dietPlans[GoalMaintenance]
	}
	return plan
}

// MacroBreakdown is the plan's lower-bound macros resolved against the
// user's bodyweight, in grams and kcal (4/4/9 kcal per gram).
// @Description Macro grams and calorie contributions at the plan's lower bounds.
type MacroBreakdown struct {
	ProteinGrams    float64 `json:"protein_grams" example:"126"`
	CarbGrams       float64 `json:"carb_grams" example:"100"`
	FatGrams        float64 `json:"fat_grams" example:"40"`
	ProteinCalories float64 `json:"protein_calories" example:"504"`
	CarbCalories    float64 `json:"carb_calories" example:"400"`
	FatCalories     float64 `json:"fat_calories" example:"360"`
}

// ShoppingList is the static weekly shopping list shown with every plan.
// @Description Weekly shopping list grouped by section.
type ShoppingList struct {
	Proteins           []string `json:"proteins"`
	CarbsAndVegetables []string `json:"carbs_and_vegetables"`
}

// WeeklyShoppingList is the canned shopping list content.
var WeeklyShoppingList = ShoppingList{
	Proteins: []string{
		"Chicken breast (2kg)",
		"Salmon fillets (1kg)",
		"Greek yogurt (1.5kg)",
		"Eggs (2 dozen)",
		"Lean beef (1kg)",
	},
	CarbsAndVegetables: []string{
		"Brown rice (2kg)",
		"Oatmeal (1kg)",
		"Sweet potatoes (2kg)",
		"Mixed vegetables (3kg)",
		"Fruits (variety, 3kg)",
	},
}

// DietPlanRequest is the request body for the diet planner.
// @Description Inputs for the personalized diet plan.
type DietPlanRequest struct {
	// Current body weight in kilograms
	WeightKg float64 `json:"weight_kg" validate:"required,min=40,max=200" example:"70"`
	// Height in meters
	HeightM float64 `json:"height_m" validate:"required,min=1.4,max=2.2" example:"1.75"`
	// Primary goal
	Goal Goal `json:"goal" validate:"required,oneof='Weight Loss' 'Muscle Gain' Maintenance Endurance" example:"Weight Loss" enums:"Weight Loss,Muscle Gain,Maintenance,Endurance"`
}

// DietPlanResult is the diet planner response.
// @Description Diet plan with the diet-mode archetype, macros and shopping list.
type DietPlanResult struct {
	// Archetype assigned by the diet-mode classifier
	ArchetypeID ArchetypeID `json:"archetype_id" example:"2"`
	// BMI derived from weight and height
	BMI float64 `json:"bmi" example:"22.86"`
	// The plan for the requested goal
	Plan DietPlan `json:"plan"`
	// Macro breakdown at the plan's lower bounds
	Macros MacroBreakdown `json:"macros"`
	// Weekly shopping list
	ShoppingList ShoppingList `json:"shopping_list"`
}
