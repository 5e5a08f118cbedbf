package domain

import "math"

// Category is the health classification of a BMI value.
type Category string

// Categories in increasing BMI order.
const (
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal"
	CategoryOverweight  Category = "Overweight"
	CategoryObese       Category = "Obese"
)

// Thresholds are the upper cuts of the first three BMI categories.
type Thresholds struct {
	UnderweightMax float64
	NormalMax      float64
	OverweightMax  float64
}

// DefaultThresholds returns the WHO adult classification cuts.
func DefaultThresholds() Thresholds {
	return Thresholds{
		UnderweightMax: 18.5,
		NormalMax:      25.0,
		OverweightMax:  30.0,
	}
}

// ComputeBMI returns weight(kg) / height(m)^2. Both inputs must be positive.
func ComputeBMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 {
		return 0, invalidMeasurement("weight must be > 0 kg")
	}
	if heightCm <= 0 {
		return 0, invalidMeasurement("height must be > 0 cm")
	}
	hm := heightCm / 100
	return weightKg / (hm * hm), nil
}

// Classify maps a BMI value onto one of the four categories. Intervals are
// half-open with `bmi < threshold` as the cut, so a value exactly at a
// threshold falls in the category above it: [0,18.5) [18.5,25) [25,30) [30,∞)
// under the defaults.
func (t Thresholds) Classify(bmi float64) Category {
	switch {
	case bmi < t.UnderweightMax:
		return CategoryUnderweight
	case bmi < t.NormalMax:
		return CategoryNormal
	case bmi < t.OverweightMax:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// Round1 rounds to one decimal place, the precision measurements are stored at.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
