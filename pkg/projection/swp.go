package projection

import (
	"math"

	"github.com/iwvelando/finance-projections/pkg/mathutil"
)

// horizonEpsilon absorbs rounding error in time_period*12 before truncating
// to whole months. It is far below any value a caller can express in
// months, so 0.0833333 years still gives zero months.
const horizonEpsilon = 1e-9

// SWPResult is the outcome of a systematic withdrawal plan.
type SWPResult struct {
	MonthsLasted                     int     `json:"months_lasted"`
	TotalWithdrawal                  float64 `json:"total_withdrawal"`
	RemainingBalance                 float64 `json:"remaining_balance"`
	InflationAdjustedFinalWithdrawal float64 `json:"inflation_adjusted_final_withdrawal"`
}

// Rounded returns a copy with every amount rounded to cents.
func (r SWPResult) Rounded() SWPResult {
	return SWPResult{
		MonthsLasted:                     r.MonthsLasted,
		TotalWithdrawal:                  mathutil.Round(r.TotalWithdrawal),
		RemainingBalance:                 mathutil.Round(r.RemainingBalance),
		InflationAdjustedFinalWithdrawal: mathutil.Round(r.InflationAdjustedFinalWithdrawal),
	}
}

// HorizonMonths is the maximum number of withdrawals an SWP over the given
// number of years can make. A product within horizonEpsilon below a whole
// month counts as that month. Years must already be validated.
func HorizonMonths(years float64) int {
	return int(math.Floor(months(years) + horizonEpsilon))
}

// ComputeSWP simulates monthly withdrawals from an initial balance and returns
// the result rounded to cents.
func ComputeSWP(in SWPInput) (SWPResult, error) {
	result, err := ProjectSWP(in)
	if err != nil {
		return SWPResult{}, err
	}
	return result.Rounded(), nil
}

// ProjectSWP is ComputeSWP without the final rounding. Each month the balance
// earns interest, tax is taken from that interest, and the withdrawal is paid.
// The loop stops when the balance is exhausted or the horizon is reached; the
// last withdrawal may overdraw the balance, which is reported as zero.
func ProjectSWP(in SWPInput) (SWPResult, error) {
	const op = "projection.ProjectSWP"
	if err := in.Validate(); err != nil {
		return SWPResult{}, err
	}

	monthlyRate := mathutil.MonthlyRate(in.ExpectedReturn)
	horizon := HorizonMonths(in.TimePeriod)

	balance := in.InitialInvestment
	totalWithdrawal := 0.0
	lasted := 0
	for balance > 0 && lasted < horizon {
		interest := balance * monthlyRate
		taxOnInterest := mathutil.ApplyPercentage(interest, in.TaxRate)
		balance += interest - taxOnInterest - in.MonthlyWithdrawal
		totalWithdrawal += in.MonthlyWithdrawal
		lasted++
	}

	// Annual compounding over the whole period, independent of the loop.
	finalWithdrawal := in.MonthlyWithdrawal * math.Pow(1+mathutil.PercentToDecimal(in.InflationRate), in.TimePeriod)

	result := SWPResult{
		MonthsLasted:                     lasted,
		TotalWithdrawal:                  totalWithdrawal,
		RemainingBalance:                 mathutil.Max(0, balance),
		InflationAdjustedFinalWithdrawal: finalWithdrawal,
	}
	if !allFinite(balance, finalWithdrawal) {
		return SWPResult{}, domainError(op, ErrNonFinite)
	}
	return result, nil
}
