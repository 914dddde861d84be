package calculator

type WeightUnit string

const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lbs"
)

type HeightUnit string

const (
	Centimeters HeightUnit = "cm"
	Feet        HeightUnit = "feet"
)

// Goal is the user's primary fitness goal.
type Goal string

const (
	GainWeight   Goal = "gainWeight"
	LoseWeight   Goal = "loseWeight"
	GainMuscle   Goal = "gainMuscle"
	ManageStress Goal = "manageStress"
)

func (g Goal) Valid() bool {
	switch g {
	case GainWeight, LoseWeight, GainMuscle, ManageStress:
		return true
	default:
		return false
	}
}

// Label is the display name shown on results and dashboard pages.
func (g Goal) Label() string {
	switch g {
	case GainWeight:
		return "Gain Weight"
	case LoseWeight:
		return "Lose Weight"
	case GainMuscle:
		return "Gain Muscle"
	case ManageStress:
		return "Manage Stress"
	default:
		return ""
	}
}

// ActivityLevel is the self-reported activity level.
type ActivityLevel string

const (
	NotVeryActive ActivityLevel = "notVeryActive"
	LightlyActive ActivityLevel = "lightlyActive"
	Active        ActivityLevel = "active"
	VeryActive    ActivityLevel = "veryActive"
)

func (a ActivityLevel) Valid() bool {
	switch a {
	case NotVeryActive, LightlyActive, Active, VeryActive:
		return true
	default:
		return false
	}
}

func (a ActivityLevel) Label() string {
	switch a {
	case NotVeryActive:
		return "Not Very Active"
	case LightlyActive:
		return "Lightly Active"
	case Active:
		return "Active"
	case VeryActive:
		return "Very Active"
	default:
		return ""
	}
}

type Classification string

const (
	Underweight Classification = "Underweight"
	Balanced    Classification = "Balanced"
	Overweight  Classification = "Overweight"
)

// ProfileInput is one submission of measurements and goal selections.
type ProfileInput struct {
	Weight     float64       `json:"weight"`
	WeightUnit WeightUnit    `json:"weightUnit"`
	Height     float64       `json:"height"`
	HeightUnit HeightUnit    `json:"heightUnit"`
	Goal       Goal          `json:"fitnessGoal"`
	Activity   ActivityLevel `json:"activityLevel"`
}

// Macros are daily targets: calories in kcal, the rest in grams.
type Macros struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
}

type Recommendations struct {
	Diet     []string `json:"diet"`
	Exercise []string `json:"exercise"`
}

type WarningKind string

// NegativeMacroWarning flags a macro that computed below zero and was left unclamped.
const NegativeMacroWarning WarningKind = "NegativeMacroWarning"

type Warning struct {
	Kind    WarningKind `json:"kind"`
	Field   string      `json:"field"`
	Value   int         `json:"value"`
	Message string      `json:"message"`
}

// Result is the output of Calculate.
type Result struct {
	BMI             float64         `json:"bmi"`
	Classification  Classification  `json:"bmiClassification"`
	Macros          Macros          `json:"macros"`
	Recommendations Recommendations `json:"recommendations"`
	Warnings        []Warning       `json:"warnings,omitempty"`
}
