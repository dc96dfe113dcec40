package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	require.NoError(t, err)
	assert.Equal(t, 22.9, bmi)
	assert.Equal(t, "22.9 (Normal weight)", FormatBMI(bmi))

	_, err = CalculateBMI(0, 70)
	assert.Error(t, err)

	_, err = CalculateBMI(30, 70)
	assert.ErrorIs(t, err, ErrImplausibleBody)
}

func TestBMICategory(t *testing.T) {
	cases := map[float64]string{
		17.0: "Underweight",
		18.5: "Normal weight",
		24.9: "Normal weight",
		25.0: "Overweight",
		29.9: "Overweight",
		30.0: "Obese",
	}
	for bmi, want := range cases {
		assert.Equal(t, want, BMICategory(bmi), "bmi %.1f", bmi)
	}
}
