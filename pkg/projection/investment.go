package projection

import (
	"github.com/iwvelando/finance-projections/pkg/mathutil"
)

// InvestmentResult is the outcome of a lump-sum plus recurring contribution
// investment scenario.
type InvestmentResult struct {
	FutureValue            float64 `json:"future_value"`
	InflationAdjustedValue float64 `json:"inflation_adjusted_value"`
	TotalContributions     float64 `json:"total_contributions"`
	TotalGain              float64 `json:"total_gain"`
	AfterTaxFutureValue    float64 `json:"after_tax_future_value"`
}

// Rounded returns a copy with every amount rounded to cents.
func (r InvestmentResult) Rounded() InvestmentResult {
	return InvestmentResult{
		FutureValue:            mathutil.Round(r.FutureValue),
		InflationAdjustedValue: mathutil.Round(r.InflationAdjustedValue),
		TotalContributions:     mathutil.Round(r.TotalContributions),
		TotalGain:              mathutil.Round(r.TotalGain),
		AfterTaxFutureValue:    mathutil.Round(r.AfterTaxFutureValue),
	}
}

// ComputeInvestment projects a principal compounded monthly plus a monthly
// contribution made at the start of every month, rounded to cents.
func ComputeInvestment(in ScenarioInput) (InvestmentResult, error) {
	result, err := ProjectInvestment(in)
	if err != nil {
		return InvestmentResult{}, err
	}
	return result.Rounded(), nil
}

// ProjectInvestment is ComputeInvestment without the final rounding.
func ProjectInvestment(in ScenarioInput) (InvestmentResult, error) {
	const op = "projection.ProjectInvestment"
	if err := in.Validate(); err != nil {
		return InvestmentResult{}, err
	}

	monthlyRate := mathutil.MonthlyRate(in.InterestRate)
	realRate := realMonthlyRate(in.InterestRate, in.InflationRate)
	if monthlyRate == 0 || realRate == 0 {
		return InvestmentResult{}, domainError(op, ErrZeroRate)
	}

	periods := months(in.Years)
	futureValue := compound(in.Principal, monthlyRate, periods) +
		annuityDue(in.MonthlyContribution, monthlyRate, periods)
	inflationAdjusted := compound(in.Principal, realRate, periods) +
		annuityDue(in.MonthlyContribution, realRate, periods)

	totalContributions := in.Principal + in.MonthlyContribution*periods
	totalGain := futureValue - totalContributions
	taxOnGain := mathutil.ApplyPercentage(totalGain, in.TaxRate)

	result := InvestmentResult{
		FutureValue:            futureValue,
		InflationAdjustedValue: inflationAdjusted,
		TotalContributions:     totalContributions,
		TotalGain:              totalGain,
		AfterTaxFutureValue:    futureValue - taxOnGain,
	}
	if !allFinite(futureValue, inflationAdjusted, totalGain, result.AfterTaxFutureValue) {
		return InvestmentResult{}, domainError(op, ErrNonFinite)
	}
	return result, nil
}
