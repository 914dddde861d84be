package services

import (
	"context"

	"fitnessmap/calculator"
	"fitnessmap/models"
)

// Dashboard is the landing-page view of the current profile.
type Dashboard struct {
	Profile         *models.FitnessProfile     `json:"profile"`
	GoalLabel       string                     `json:"goalLabel"`
	ActivityLabel   string                     `json:"activityLabel"`
	Recommendations calculator.Recommendations `json:"recommendations"`
	Tip             string                     `json:"tip"`
	Focus           []string                   `json:"focus"`
}

type RecService struct {
	store ProfileStore
}

func NewRecService(store ProfileStore) *RecService {
	return &RecService{store: store}
}

// Dashboard builds the dashboard from the latest profile. Advice is looked up
// again so stored profiles pick up the current wording.
func (r *RecService) Dashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	p, err := r.store.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Profile:         p,
		GoalLabel:       p.FitnessGoal.Label(),
		ActivityLabel:   p.ActivityLevel.Label(),
		Recommendations: calculator.SelectRecommendations(p.FitnessGoal),
		Tip:             calculator.DailyTip(p.FitnessGoal),
		Focus:           calculator.DailyFocus(p.FitnessGoal, p.Macros),
	}, nil
}
