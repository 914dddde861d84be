package calculator

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidMeasurement is returned when a weight or height cannot be used:
// non-positive, NaN, infinite, or given in an unsupported unit.
var ErrInvalidMeasurement = errors.New("invalid measurement")

const (
	kgPerPound    = 0.453592
	metersPerFoot = 0.3048
	cmPerMeter    = 100.0
)

// Normalized holds a body measurement in SI units.
type Normalized struct {
	WeightKg float64
	HeightM  float64
}

// Normalize converts weight to kilograms and height to meters.
func Normalize(weight float64, wu WeightUnit, height float64, hu HeightUnit) (Normalized, error) {
	if err := checkPositive("weight", weight); err != nil {
		return Normalized{}, err
	}
	if err := checkPositive("height", height); err != nil {
		return Normalized{}, err
	}

	var n Normalized
	switch wu {
	case Kilograms:
		n.WeightKg = weight
	case Pounds:
		n.WeightKg = weight * kgPerPound
	default:
		return Normalized{}, fmt.Errorf("weight unit %q: %w", wu, ErrInvalidMeasurement)
	}

	switch hu {
	case Centimeters:
		n.HeightM = height / cmPerMeter
	case Feet:
		n.HeightM = height * metersPerFoot
	default:
		return Normalized{}, fmt.Errorf("height unit %q: %w", hu, ErrInvalidMeasurement)
	}
	return n, nil
}

func checkPositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be a finite number: %w", field, ErrInvalidMeasurement)
	}
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %v: %w", field, v, ErrInvalidMeasurement)
	}
	return nil
}
