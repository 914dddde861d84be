// Package calculator turns body measurements and goal selections into BMI,
// daily macro targets and advice. Every function is pure and safe for
// concurrent use.
package calculator

// Calculate runs the full pipeline: unit normalisation, BMI, macro planning
// and recommendation lookup. On error no partial result is returned.
func Calculate(in ProfileInput) (Result, error) {
	n, err := Normalize(in.Weight, in.WeightUnit, in.Height, in.HeightUnit)
	if err != nil {
		return Result{}, err
	}

	bmi, err := ComputeBMI(n.WeightKg, n.HeightM)
	if err != nil {
		return Result{}, err
	}

	plan := PlanMacros(n.WeightKg, in.Goal, in.Activity)

	return Result{
		BMI:             bmi,
		Classification:  Classify(bmi),
		Macros:          plan.Macros,
		Recommendations: SelectRecommendations(in.Goal),
		Warnings:        plan.Warnings,
	}, nil
}
