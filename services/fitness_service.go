package services

import (
	"context"
	"time"

	"fitnessmap/calculator"
	"fitnessmap/models"

	"github.com/rs/zerolog"
)

// FitnessForm is the profile form as submitted by the client.
type FitnessForm struct {
	Name          string                   `json:"name" binding:"required"`
	Gender        string                   `json:"gender" binding:"required,oneof=male female other"`
	Age           int                      `json:"age" binding:"required,min=1,max=120"`
	Weight        float64                  `json:"weight" binding:"required"`
	WeightUnit    calculator.WeightUnit    `json:"weightUnit" binding:"required,oneof=kg lbs"`
	Height        float64                  `json:"height" binding:"required"`
	HeightUnit    calculator.HeightUnit    `json:"heightUnit" binding:"required,oneof=cm feet"`
	FitnessGoal   calculator.Goal          `json:"fitnessGoal" binding:"required,oneof=gainWeight loseWeight gainMuscle manageStress"`
	GoalReason    string                   `json:"goalReason" binding:"required"`
	ActivityLevel calculator.ActivityLevel `json:"activityLevel" binding:"required,oneof=notVeryActive lightlyActive active veryActive"`
	GoalWeight    *float64                 `json:"goalWeight" binding:"omitempty,gt=0"`
}

func (f FitnessForm) Input() calculator.ProfileInput {
	return calculator.ProfileInput{
		Weight:     f.Weight,
		WeightUnit: f.WeightUnit,
		Height:     f.Height,
		HeightUnit: f.HeightUnit,
		Goal:       f.FitnessGoal,
		Activity:   f.ActivityLevel,
	}
}

type FitnessService struct {
	store   ProfileStore
	goals   *GoalService
	alerts  *AlertBus
	broker  Broker
	metrics *Metrics
	log     zerolog.Logger
}

func NewFitnessService(store ProfileStore, goals *GoalService, alerts *AlertBus, broker Broker, m *Metrics, log zerolog.Logger) *FitnessService {
	return &FitnessService{
		store:   store,
		goals:   goals,
		alerts:  alerts,
		broker:  broker,
		metrics: m,
		log:     log.With().Str("component", "fitness").Logger(),
	}
}

// Preview runs the calculation without storing anything.
func (s *FitnessService) Preview(in calculator.ProfileInput) (calculator.Result, error) {
	start := time.Now()
	res, err := calculator.Calculate(in)
	s.metrics.observeCalculation(in.Goal, res, err, time.Since(start))
	return res, err
}

// Submit calculates, stores and publishes a new profile for the user. When the
// measurements are invalid the error wraps calculator.ErrInvalidMeasurement
// and nothing is stored.
func (s *FitnessService) Submit(ctx context.Context, userID uint, form FitnessForm) (*models.FitnessProfile, error) {
	res, err := s.Preview(form.Input())
	if err != nil {
		s.log.Info().Err(err).Uint("user_id", userID).Msg("rejected measurements")
		return nil, err
	}

	p := &models.FitnessProfile{
		UserID:        userID,
		Name:          form.Name,
		Gender:        form.Gender,
		Age:           form.Age,
		GoalReason:    form.GoalReason,
		GoalWeight:    form.GoalWeight,
		Weight:        form.Weight,
		WeightUnit:    form.WeightUnit,
		Height:        form.Height,
		HeightUnit:    form.HeightUnit,
		FitnessGoal:   form.FitnessGoal,
		ActivityLevel: form.ActivityLevel,
	}
	p.ApplyResult(res)

	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}

	if s.goals != nil {
		if err := s.goals.UpsertFromMacros(ctx, userID, res.Macros); err != nil {
			s.log.Warn().Err(err).Uint("user_id", userID).Msg("update daily goals")
		}
	}
	if s.alerts != nil {
		for _, w := range res.Warnings {
			s.alerts.Emit(ctx, userID, AlertWarning, w.Message)
		}
	}
	if s.broker != nil {
		s.broker.Publish(ctx, Event{Kind: EventProfileUpdated, UserID: userID, Profile: p})
	}

	s.log.Debug().
		Uint("user_id", userID).
		Float64("bmi", res.BMI).
		Str("goal", string(form.FitnessGoal)).
		Int("calories", res.Macros.Calories).
		Msg("profile saved")
	return p, nil
}

func (s *FitnessService) Latest(ctx context.Context, userID uint) (*models.FitnessProfile, error) {
	return s.store.Latest(ctx, userID)
}

func (s *FitnessService) History(ctx context.Context, userID uint, limit int) ([]models.FitnessProfile, error) {
	return s.store.History(ctx, userID, limit)
}
