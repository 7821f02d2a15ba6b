// Package projection implements the time-value-of-money calculations behind
// SIP, SWP and lump-sum investment projections. All functions are pure.
package projection

import (
	"math"

	"github.com/iwvelando/finance-projections/pkg/constants"
	"github.com/iwvelando/finance-projections/pkg/mathutil"
)

// realMonthlyRate converts a nominal annual return and an annual inflation
// rate (both in percent) into the monthly inflation-adjusted rate.
func realMonthlyRate(annualReturn, inflationRate float64) float64 {
	realReturn := (1+mathutil.PercentToDecimal(annualReturn))/(1+mathutil.PercentToDecimal(inflationRate)) - 1
	return realReturn / constants.MonthsPerYear
}

// annuityDue is the future value of amount paid at the start of each of
// periods months, compounding monthly at rate. rate must be non-zero.
func annuityDue(amount, rate, periods float64) float64 {
	return amount * ((math.Pow(1+rate, periods) - 1) / rate) * (1 + rate)
}

// compound is the future value of a single amount after periods months.
func compound(amount, rate, periods float64) float64 {
	return amount * math.Pow(1+rate, periods)
}

// months converts a period in years to a (possibly fractional) month count.
func months(years float64) float64 {
	return years * constants.MonthsPerYear
}

func allFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
