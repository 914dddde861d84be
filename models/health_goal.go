package models

import (
	"gorm.io/gorm"
)

const (
	GoalSourceCalculated = "calculated"
	GoalSourceManual     = "manual"
)

// DailyGoal holds each user's daily intake targets. It is refreshed from the
// latest fitness calculation and can be overridden by hand.
type DailyGoal struct {
	gorm.Model
	UserID   uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Calories float64 `json:"calories"` // e.g. 2200 kcal
	Protein  float64 `json:"protein"`  // e.g. 120 g
	Carbs    float64 `json:"carbs"`    // e.g. 275 g
	Fat      float64 `json:"fat"`      // e.g. 70 g
	Source   string  `gorm:"size:16" json:"source"`
}
