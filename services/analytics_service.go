package services

import (
	"context"
	"math"
	"time"

	"fitnessmap/calculator"
)

type AnalyticsService struct{ store ProfileStore }

func NewAnalyticsService(store ProfileStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// ProgressPoint is one submission in a progress range.
type ProgressPoint struct {
	Date           string                    `json:"date"` // YYYY-MM-DD
	WeightKg       float64                   `json:"weight_kg"`
	BMI            float64                   `json:"bmi"`
	Classification calculator.Classification `json:"classification"`
	Calories       int                       `json:"calories"`
}

type ProgressSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	Points []ProgressPoint `json:"points"`

	WeightChangeKg float64 `json:"weight_change_kg"`
	BMIChange      float64 `json:"bmi_change"`
	Submissions    int     `json:"submissions"`
}

// Progress summarises the submissions between from and to, both inclusive days.
func (s *AnalyticsService) Progress(ctx context.Context, userID uint, from, to time.Time) (*ProgressSummary, error) {
	rows, err := s.store.Between(ctx, userID, dayStart(from), dayStart(to).AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	out := &ProgressSummary{Points: make([]ProgressPoint, 0, len(rows)), Submissions: len(rows)}
	out.Range.From = from.Format("2006-01-02")
	out.Range.To = to.Format("2006-01-02")

	for _, r := range rows {
		kg := r.Weight
		if n, err := calculator.Normalize(r.Weight, r.WeightUnit, r.Height, r.HeightUnit); err == nil {
			kg = n.WeightKg
		}
		out.Points = append(out.Points, ProgressPoint{
			Date:           r.UpdatedAt.Format("2006-01-02"),
			WeightKg:       round2(kg),
			BMI:            r.BMI,
			Classification: r.BMIClassification,
			Calories:       r.Macros.Calories,
		})
	}

	if n := len(out.Points); n > 1 {
		first, last := out.Points[0], out.Points[n-1]
		out.WeightChangeKg = round2(last.WeightKg - first.WeightKg)
		out.BMIChange = round2(last.BMI - first.BMI)
	}
	return out, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
