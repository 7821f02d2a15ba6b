package projection

import (
	"github.com/iwvelando/finance-projections/pkg/mathutil"
)

// SIPResult is the outcome of a systematic investment plan.
type SIPResult struct {
	FutureValue            float64 `json:"future_value"`
	InflationAdjustedValue float64 `json:"inflation_adjusted_value"`
	TotalInvestment        float64 `json:"total_investment"`
	TotalGain              float64 `json:"total_gain"`
	AfterTaxFutureValue    float64 `json:"after_tax_future_value"`
}

// Rounded returns a copy with every amount rounded to cents.
func (r SIPResult) Rounded() SIPResult {
	return SIPResult{
		FutureValue:            mathutil.Round(r.FutureValue),
		InflationAdjustedValue: mathutil.Round(r.InflationAdjustedValue),
		TotalInvestment:        mathutil.Round(r.TotalInvestment),
		TotalGain:              mathutil.Round(r.TotalGain),
		AfterTaxFutureValue:    mathutil.Round(r.AfterTaxFutureValue),
	}
}

// ComputeSIP projects a monthly investment made at the start of every month
// and returns the result rounded to cents.
func ComputeSIP(in SIPInput) (SIPResult, error) {
	result, err := ProjectSIP(in)
	if err != nil {
		return SIPResult{}, err
	}
	return result.Rounded(), nil
}

// ProjectSIP is ComputeSIP without the final rounding.
func ProjectSIP(in SIPInput) (SIPResult, error) {
	const op = "projection.ProjectSIP"
	if err := in.Validate(); err != nil {
		return SIPResult{}, err
	}

	monthlyRate := mathutil.MonthlyRate(in.ExpectedReturn)
	realRate := realMonthlyRate(in.ExpectedReturn, in.InflationRate)
	if monthlyRate == 0 || realRate == 0 {
		return SIPResult{}, domainError(op, ErrZeroRate)
	}

	periods := months(in.TimePeriod)
	futureValue := annuityDue(in.MonthlyInvestment, monthlyRate, periods)
	inflationAdjusted := annuityDue(in.MonthlyInvestment, realRate, periods)

	totalInvestment := in.MonthlyInvestment * periods
	totalGain := futureValue - totalInvestment
	taxOnGain := mathutil.ApplyPercentage(totalGain, in.TaxRate)

	result := SIPResult{
		FutureValue:            futureValue,
		InflationAdjustedValue: inflationAdjusted,
		TotalInvestment:        totalInvestment,
		TotalGain:              totalGain,
		AfterTaxFutureValue:    futureValue - taxOnGain,
	}
	if !allFinite(futureValue, inflationAdjusted, totalGain, result.AfterTaxFutureValue) {
		return SIPResult{}, domainError(op, ErrNonFinite)
	}
	return result, nil
}
