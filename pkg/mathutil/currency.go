// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/finance-projections/pkg/constants"
	"github.com/shopspring/decimal"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Halves round away from zero, evaluated on the shortest decimal form of val
// so that 1.005 rounds to 1.01 rather than following its binary expansion.
func Round(val float64) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return val
	}
	return decimal.NewFromFloat(val).Round(constants.CurrencyDecimalPlaces).InexactFloat64()
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// PercentToDecimal converts a percentage such as 12.5 into 0.125.
func PercentToDecimal(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * PercentToDecimal(percentage)
}

// MonthlyRate converts an annual percentage rate into the effective monthly
// decimal rate used for monthly compounding.
func MonthlyRate(annualPercent float64) float64 {
	return annualPercent / constants.MonthsPerYear / constants.PercentageMultiplier
}
