package calculator

import (
	"fmt"
	"math"
)

// kcal per gram
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// bmrPerKg is a flat per-kilogram estimate, not a clinical BMR formula.
const bmrPerKg = 22

type goalPlan struct {
	calorieOffset float64
	proteinPerKg  float64
	fatPerKg      float64
}

// Plan is the planner output: rounded macros plus any warnings raised while
// computing them.
type Plan struct {
	Macros   Macros
	Warnings []Warning
}

// ActivityMultiplier returns the TDEE multiplier for a level. Unrecognised
// levels get the notVeryActive multiplier.
func ActivityMultiplier(a ActivityLevel) float64 {
	switch a {
	case NotVeryActive:
		return 1.2
	case LightlyActive:
		return 1.375
	case Active:
		return 1.55
	case VeryActive:
		return 1.725
	default:
		return 1.2
	}
}

// planFor returns the calorie offset and per-kg protein/fat ratios for a goal.
// Unrecognised goals get the manageStress plan.
func planFor(g Goal) goalPlan {
	switch g {
	case GainWeight:
		return goalPlan{calorieOffset: 500, proteinPerKg: 1.6, fatPerKg: 0.8}
	case LoseWeight:
		return goalPlan{calorieOffset: -500, proteinPerKg: 2.0, fatPerKg: 0.5}
	case GainMuscle:
		return goalPlan{calorieOffset: 200, proteinPerKg: 2.2, fatPerKg: 0.6}
	case ManageStress:
		return goalPlan{calorieOffset: 0, proteinPerKg: 1.4, fatPerKg: 0.7}
	default:
		return goalPlan{calorieOffset: 0, proteinPerKg: 1.4, fatPerKg: 0.7}
	}
}

// PlanMacros computes the daily calorie target and macro split. Carbs fill the
// energy left after protein and fat and are not clamped: a negative value is
// returned as is, together with a NegativeMacroWarning.
func PlanMacros(weightKg float64, goal Goal, activity ActivityLevel) Plan {
	p := planFor(goal)

	bmr := weightKg * bmrPerKg
	calories := bmr*ActivityMultiplier(activity) + p.calorieOffset
	protein := weightKg * p.proteinPerKg
	fats := weightKg * p.fatPerKg
	carbs := (calories - (protein*kcalPerGramProtein + fats*kcalPerGramFat)) / kcalPerGramCarbs

	plan := Plan{Macros: Macros{
		Calories: roundMacro(calories),
		Protein:  roundMacro(protein),
		Carbs:    roundMacro(carbs),
		Fats:     roundMacro(fats),
	}}
	if carbs < 0 {
		plan.Warnings = append(plan.Warnings, Warning{
			Kind:    NegativeMacroWarning,
			Field:   "carbs",
			Value:   plan.Macros.Carbs,
			Message: fmt.Sprintf("protein and fat targets exceed the %d kcal budget; carbs computed as %.1fg", plan.Macros.Calories, carbs),
		})
	}
	return plan
}

// roundMacro rounds to the nearest whole gram (or kcal), half away from zero.
func roundMacro(v float64) int {
	return int(math.Round(v))
}
