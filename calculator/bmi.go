package calculator

import "math"

const (
	underweightBelow = 18.5
	balancedUpTo     = 24.9
)

// ComputeBMI expects weight in kilograms and height in meters. The result is
// rounded to two decimal places.
func ComputeBMI(weightKg, heightM float64) (float64, error) {
	if err := checkPositive("weight", weightKg); err != nil {
		return 0, err
	}
	if err := checkPositive("height", heightM); err != nil {
		return 0, err
	}
	return roundBMI(weightKg / (heightM * heightM)), nil
}

// Classify buckets a rounded BMI. Both 18.5 and 24.9 are Balanced.
func Classify(bmi float64) Classification {
	switch {
	case bmi < underweightBelow:
		return Underweight
	case bmi <= balancedUpTo:
		return Balanced
	default:
		return Overweight
	}
}

// roundBMI rounds half away from zero to two decimal places.
func roundBMI(v float64) float64 {
	return math.Round(v*100) / 100
}
