package models

import (
	"time"

	"fitnessmap/calculator"
)

// FitnessProfile is one stored form submission together with its computed
// result. Every submission creates a new row; the newest row is the current
// profile.
type FitnessProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Name       string   `json:"name"`
	Gender     string   `gorm:"size:16" json:"gender"`
	Age        int      `json:"age"`
	GoalReason string   `gorm:"type:text" json:"goalReason"`
	GoalWeight *float64 `json:"goalWeight,omitempty"` // in WeightUnit

	Weight        float64                  `json:"weight"`
	WeightUnit    calculator.WeightUnit    `gorm:"size:8" json:"weightUnit"`
	Height        float64                  `json:"height"`
	HeightUnit    calculator.HeightUnit    `gorm:"size:8" json:"heightUnit"`
	FitnessGoal   calculator.Goal          `gorm:"size:32" json:"fitnessGoal"`
	ActivityLevel calculator.ActivityLevel `gorm:"size:32" json:"activityLevel"`

	BMI               float64                    `json:"bmi"`
	BMIClassification calculator.Classification  `gorm:"size:16" json:"bmiClassification"`
	Macros            calculator.Macros          `gorm:"embedded;embeddedPrefix:macro_" json:"macros"`
	Recommendations   calculator.Recommendations `gorm:"serializer:json" json:"recommendations"`
	Warnings          []calculator.Warning       `gorm:"serializer:json" json:"warnings,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `gorm:"index" json:"updatedAt"`
}

// Input rebuilds the calculator input this profile was computed from.
func (p *FitnessProfile) Input() calculator.ProfileInput {
	return calculator.ProfileInput{
		Weight:     p.Weight,
		WeightUnit: p.WeightUnit,
		Height:     p.Height,
		HeightUnit: p.HeightUnit,
		Goal:       p.FitnessGoal,
		Activity:   p.ActivityLevel,
	}
}

// ApplyResult copies a calculation result onto the profile.
func (p *FitnessProfile) ApplyResult(r calculator.Result) {
	p.BMI = r.BMI
	p.BMIClassification = r.Classification
	p.Macros = r.Macros
	p.Recommendations = r.Recommendations
	p.Warnings = r.Warnings
}
