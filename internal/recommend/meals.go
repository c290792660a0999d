package recommend

import (
	"fittrack/backend/internal/domain"
)

// Meal is one recommended meal slot in a day.
type Meal struct {
	Meal     string   `json:"meal"`
	Items    []string `json:"items"`
	Calories int      `json:"calories"`
}

// Baseline daily intake for the default weight, split across slots below.
const baselineDailyCalories = 2000.0

// Calorie split per meal slot, as fractions of the daily target.
var mealSlots = []struct {
	name  string
	share float64
}{
	{"Breakfast", 0.25},
	{"Lunch", 0.35},
	{"Dinner", 0.30},
	{"Snack", 0.10},
}

var mealItemsByGoal = map[string][][]string{
	domain.GoalWeightLoss: {
		{"Oatmeal with berries", "Green tea"},
		{"Grilled chicken salad", "Quinoa"},
		{"Steamed fish", "Roasted vegetables"},
		{"Greek yogurt"},
	},
	domain.GoalMuscleGain: {
		{"Scrambled eggs", "Whole grain toast", "Banana"},
		{"Beef and rice bowl", "Avocado"},
		{"Salmon", "Sweet potato", "Broccoli"},
		{"Protein shake", "Almonds"},
	},
	domain.GoalStayFit: {
		{"Smoothie bowl", "Granola"},
		{"Turkey wrap", "Mixed greens"},
		{"Chicken stir-fry", "Brown rice"},
		{"Fruit and nuts"},
	},
}

// Daily-target multiplier per goal category.
var calorieFactorByGoal = map[string]float64{
	domain.GoalWeightLoss: 0.85,
	domain.GoalMuscleGain: 1.15,
	domain.GoalStayFit:    1.0,
}

// MealPlan builds a day of meal recommendations for the profile. The
// daily calorie target scales linearly with body weight around the
// default-weight baseline, then splits across the four meal slots.
func (e *Engine) MealPlan(profile *domain.UserProfile) []Meal {
	goal := resolveGoal(profile.Goal)

	weight := profile.Weight
	if weight <= 0 {
		weight = domain.DefaultWeight
	}
	daily := baselineDailyCalories * (weight / domain.DefaultWeight) * calorieFactorByGoal[goal]

	items := mealItemsByGoal[goal]
	plan := make([]Meal, 0, len(mealSlots))
	for i, slot := range mealSlots {
		plan = append(plan, Meal{
			Meal:     slot.name,
			Items:    items[i],
			Calories: int(daily * slot.share),
		})
	}
	return plan
}
