package utils

import "errors"

// Profile metrics outside these bounds are treated as typos, not people.
const (
	minHeightCm = 50
	maxHeightCm = 250
	minWeightKg = 10
	maxWeightKg = 400
)

var errImplausibleMetrics = errors.New("height or weight outside plausible range")

// CalculateBMI derives the profile BMI from the stored height (cm) and
// weight (kg).
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm < minHeightCm || heightCm > maxHeightCm || weightKg < minWeightKg || weightKg > maxWeightKg {
		return 0, errImplausibleMetrics
	}
	m := heightCm / 100
	return weightKg / (m * m), nil
}

// ProfileBMI is CalculateBMI for the nullable profile columns. ok is false
// when either metric is missing or implausible.
func ProfileBMI(heightCm, weightKg *float64) (bmi float64, ok bool) {
	if heightCm == nil || weightKg == nil {
		return 0, false
	}
	bmi, err := CalculateBMI(*heightCm, *weightKg)
	if err != nil {
		return 0, false
	}
	return bmi, true
}

// BMICategory is the label shown next to the profile BMI (WHO adult bands).
func BMICategory(bmi float64) string {
	bands := []struct {
		below float64
		label string
	}{
		{18.5, "Underweight"},
		{25, "Normal weight"},
		{30, "Overweight"},
		{35, "Obesity class I"},
		{40, "Obesity class II"},
	}
	for _, b := range bands {
		if bmi < b.below {
			return b.label
		}
	}
	return "Obesity class III"
}
