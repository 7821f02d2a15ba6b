package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative midpoint rounds away from zero", -1.235, -1.24},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
		{"Very small negative", -0.001, 0.00},
		{"Decimal midpoint below binary value", 1.005, 1.01},
		{"Nearly two cents", 0.019, 0.02},
		{"Projection value", 232339.07635194052, 232339.08},
		{"Trailing binary noise", 1060.8999999999999, 1060.90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRoundNonFinite(t *testing.T) {
	if !math.IsInf(Round(math.Inf(1)), 1) {
		t.Errorf("Round(+Inf) should stay +Inf")
	}
	if !math.IsNaN(Round(math.NaN())) {
		t.Errorf("Round(NaN) should stay NaN")
	}
}

func TestMax(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		expected float64
	}{
		{"First larger", 2.0, 1.0, 2.0},
		{"Second larger", 1.0, 2.0, 2.0},
		{"Negative and zero", -563.67, 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Max(tt.a, tt.b); result != tt.expected {
				t.Errorf("Max(%v, %v) = %v, expected %v", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		percentage float64
		expected   float64
	}{
		{"50% of 100", 100.0, 50.0, 50.0},
		{"10% tax on gain", 112339.08, 10.0, 11233.908},
		{"0% of value", 100.0, 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyPercentage(tt.value, tt.percentage)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v",
					tt.value, tt.percentage, result, tt.expected)
			}
		})
	}
}

func TestMonthlyRate(t *testing.T) {
	tests := map[float64]float64{
		12:  0.01,
		6:   0.005,
		0:   0,
		7.5: 0.00625,
	}

	for annual, expected := range tests {
		if got := MonthlyRate(annual); math.Abs(got-expected) > 1e-12 {
			t.Errorf("MonthlyRate(%v) = %v, expected %v", annual, got, expected)
		}
	}
}
