package projection

import (
	"fmt"
	"math"

	"github.com/iwvelando/finance-projections/pkg/constants"
)

// SIPInput holds the parameters of a systematic investment plan.
type SIPInput struct {
	MonthlyInvestment float64 `json:"monthly_investment"`
	ExpectedReturn    float64 `json:"expected_return"`
	TimePeriod        float64 `json:"time_period"`
	InflationRate     float64 `json:"inflation_rate"`
	TaxRate           float64 `json:"tax_rate"`
}

// SWPInput holds the parameters of a systematic withdrawal plan.
type SWPInput struct {
	InitialInvestment float64 `json:"initial_investment"`
	MonthlyWithdrawal float64 `json:"monthly_withdrawal"`
	ExpectedReturn    float64 `json:"expected_return"`
	TimePeriod        float64 `json:"time_period"`
	InflationRate     float64 `json:"inflation_rate"`
	TaxRate           float64 `json:"tax_rate"`
}

// ScenarioInput holds the parameters of a lump-sum plus recurring contribution
// investment. ID is optional and only meaningful to a scenario store.
type ScenarioInput struct {
	ID                  string  `json:"id,omitempty"`
	Principal           float64 `json:"principal"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	Years               float64 `json:"years"`
	InterestRate        float64 `json:"interest_rate"`
	InflationRate       float64 `json:"inflation_rate"`
	TaxRate             float64 `json:"tax_rate"`
}

type field struct {
	name  string
	value float64
}

// Validate checks that every amount and rate is a finite, non-negative number
// and that the time period is positive and at most MaxProjectionYears.
func (in SIPInput) Validate() error {
	return validate(
		field{"time_period", in.TimePeriod},
		field{"monthly_investment", in.MonthlyInvestment},
		field{"expected_return", in.ExpectedReturn},
		field{"inflation_rate", in.InflationRate},
		field{"tax_rate", in.TaxRate},
	)
}

// Validate checks that every amount and rate is a finite, non-negative number
// and that the time period is positive and at most MaxProjectionYears.
func (in SWPInput) Validate() error {
	return validate(
		field{"time_period", in.TimePeriod},
		field{"initial_investment", in.InitialInvestment},
		field{"monthly_withdrawal", in.MonthlyWithdrawal},
		field{"expected_return", in.ExpectedReturn},
		field{"inflation_rate", in.InflationRate},
		field{"tax_rate", in.TaxRate},
	)
}

// Validate checks that every amount and rate is a finite, non-negative number
// and that the number of years is positive and at most MaxProjectionYears.
func (in ScenarioInput) Validate() error {
	return validate(
		field{"years", in.Years},
		field{"principal", in.Principal},
		field{"monthly_contribution", in.MonthlyContribution},
		field{"interest_rate", in.InterestRate},
		field{"inflation_rate", in.InflationRate},
		field{"tax_rate", in.TaxRate},
	)
}

// validate expects the period field first.
func validate(period field, rest ...field) error {
	if math.IsNaN(period.value) || math.IsInf(period.value, 0) || period.value <= 0 {
		return fmt.Errorf("%w: %s must be greater than zero", ErrInvalidInput, period.name)
	}
	if period.value > constants.MaxProjectionYears {
		return fmt.Errorf("%w: %s cannot exceed %g years", ErrInvalidInput, period.name, constants.MaxProjectionYears)
	}
	for _, f := range rest {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, f.name)
		}
		if f.value < 0 {
			return fmt.Errorf("%w: %s cannot be negative", ErrInvalidInput, f.name)
		}
	}
	return nil
}
