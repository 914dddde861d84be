package services

import (
	"context"
	"errors"

	"fitnessmap/calculator"
	"fitnessmap/models"

	"gorm.io/gorm"
)

type GoalService struct{ db *gorm.DB }

func NewGoalService(db *gorm.DB) *GoalService { return &GoalService{db: db} }

// GoalInput is a manual override of the daily targets.
type GoalInput struct {
	Calories float64 `json:"calories" binding:"gte=0"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fat      float64 `json:"fat" binding:"gte=0"`
}

// Get returns the user's goals. A user without goals gets a zero-valued goal.
func (s *GoalService) Get(ctx context.Context, userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.DailyGoal{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpsertFromMacros replaces the targets with a fresh calculation.
func (s *GoalService) UpsertFromMacros(ctx context.Context, userID uint, m calculator.Macros) error {
	return s.upsert(ctx, userID, GoalInput{
		Calories: float64(m.Calories),
		Protein:  float64(m.Protein),
		Carbs:    float64(m.Carbs),
		Fat:      float64(m.Fats),
	}, models.GoalSourceCalculated)
}

func (s *GoalService) Update(ctx context.Context, userID uint, in GoalInput) error {
	return s.upsert(ctx, userID, in, models.GoalSourceManual)
}

func (s *GoalService) upsert(ctx context.Context, userID uint, in GoalInput, source string) error {
	db := s.db.WithContext(ctx)

	var goal models.DailyGoal
	err := db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{UserID: userID}
	} else if err != nil {
		return err
	}

	goal.Calories = in.Calories
	goal.Protein = in.Protein
	goal.Carbs = in.Carbs
	goal.Fat = in.Fat
	goal.Source = source

	return db.Save(&goal).Error
}
