package utils

import (
	"math"
	"testing"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 81)
	if err != nil {
		t.Fatalf("CalculateBMI: %v", err)
	}
	if math.Abs(bmi-25) > 0.01 {
		t.Fatalf("expected bmi 25, got %.2f", bmi)
	}

	if _, err := CalculateBMI(0, 70); err == nil {
		t.Fatalf("expected error for zero height")
	}
	if _, err := CalculateBMI(1.8, 70); err == nil {
		t.Fatalf("expected error for height given in meters")
	}
}

func TestProfileBMI(t *testing.T) {
	h, w := 160.0, 64.0
	if _, ok := ProfileBMI(nil, &w); ok {
		t.Fatalf("missing height must not yield a bmi")
	}
	bmi, ok := ProfileBMI(&h, &w)
	if !ok || math.Abs(bmi-25) > 0.01 {
		t.Fatalf("ProfileBMI = %.2f, %v", bmi, ok)
	}
}

func TestBMICategory(t *testing.T) {
	cases := map[float64]string{
		17:   "Underweight",
		18.5: "Normal weight",
		25:   "Overweight",
		22:   "Normal weight",
		27:   "Overweight",
		32:   "Obesity class I",
		37:   "Obesity class II",
		45.5: "Obesity class III",
	}
	for bmi, want := range cases {
		if got := BMICategory(bmi); got != want {
			t.Fatalf("BMICategory(%v) = %q, want %q", bmi, got, want)
		}
	}
}
