package utils

import (
	"errors"
	"fmt"
	"math"
)

var ErrImplausibleBody = errors.New("height/weight out of plausible range")

// CalculateBMI expects height in centimeters and weight in kilograms and
// rounds to one decimal place.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, ErrImplausibleBody
	}

	h := heightCm / 100.0
	return math.Round(weightKg/(h*h)*10) / 10, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

// FormatBMI renders e.g. "22.9 (Normal weight)".
func FormatBMI(bmi float64) string {
	return fmt.Sprintf("%.1f (%s)", bmi, BMICategory(bmi))
}
