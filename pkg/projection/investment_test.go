package projection

import (
	"errors"
	"testing"
)

func TestComputeInvestment(t *testing.T) {
	tests := []struct {
		name     string
		input    ScenarioInput
		expected InvestmentResult
	}{
		{
			name: "Principal with contributions",
			input: ScenarioInput{
				Principal:           10000,
				MonthlyContribution: 500,
				Years:               5,
				InterestRate:        8,
				InflationRate:       3,
				TaxRate:             15,
			},
			expected: InvestmentResult{
				FutureValue:            51881.81,
				InflationAdjustedValue: 46754.89,
				TotalContributions:     40000,
				TotalGain:              11881.81,
				AfterTaxFutureValue:    50099.54,
			},
		},
		{
			name: "Principal only",
			input: ScenarioInput{
				Principal:     50000,
				Years:         20,
				InterestRate:  7,
				InflationRate: 2.5,
				TaxRate:       25,
			},
			expected: InvestmentResult{
				FutureValue:            201936.94,
				InflationAdjustedValue: 120117.39,
				TotalContributions:     50000,
				TotalGain:              151936.94,
				AfterTaxFutureValue:    163952.71,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeInvestment(tt.input)
			if err != nil {
				t.Fatalf("ComputeInvestment() error = %v", err)
			}
			assertClose(t, "FutureValue", result.FutureValue, tt.expected.FutureValue, 0.01)
			assertClose(t, "InflationAdjustedValue", result.InflationAdjustedValue, tt.expected.InflationAdjustedValue, 0.01)
			assertClose(t, "TotalContributions", result.TotalContributions, tt.expected.TotalContributions, 0.01)
			assertClose(t, "TotalGain", result.TotalGain, tt.expected.TotalGain, 0.01)
			assertClose(t, "AfterTaxFutureValue", result.AfterTaxFutureValue, tt.expected.AfterTaxFutureValue, 0.01)
		})
	}
}

func TestComputeInvestmentWithoutPrincipalMatchesSIP(t *testing.T) {
	scenario, err := ComputeInvestment(ScenarioInput{
		MonthlyContribution: 1000,
		Years:               10,
		InterestRate:        12,
		InflationRate:       6,
		TaxRate:             10,
	})
	if err != nil {
		t.Fatalf("ComputeInvestment() error = %v", err)
	}

	sip, err := ComputeSIP(SIPInput{
		MonthlyInvestment: 1000,
		ExpectedReturn:    12,
		TimePeriod:        10,
		InflationRate:     6,
		TaxRate:           10,
	})
	if err != nil {
		t.Fatalf("ComputeSIP() error = %v", err)
	}

	assertClose(t, "FutureValue", scenario.FutureValue, sip.FutureValue, 0.01)
	assertClose(t, "InflationAdjustedValue", scenario.InflationAdjustedValue, sip.InflationAdjustedValue, 0.01)
	assertClose(t, "TotalGain", scenario.TotalGain, sip.TotalGain, 0.01)
}

func TestProjectInvestmentInvariants(t *testing.T) {
	in := ScenarioInput{Principal: 2500, MonthlyContribution: 75, Years: 12, InterestRate: 6.5, InflationRate: 2, TaxRate: 18}

	result, err := ProjectInvestment(in)
	if err != nil {
		t.Fatalf("ProjectInvestment() error = %v", err)
	}
	assertClose(t, "TotalGain", result.TotalGain, result.FutureValue-result.TotalContributions, 1e-6)
	assertClose(t, "AfterTaxFutureValue", result.AfterTaxFutureValue,
		result.FutureValue-result.TotalGain*in.TaxRate/100, 1e-6)
	if result.InflationAdjustedValue >= result.FutureValue {
		t.Errorf("inflation adjusted value %v should be below nominal %v", result.InflationAdjustedValue, result.FutureValue)
	}
}

func TestComputeInvestmentErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  ScenarioInput
		target error
	}{
		{"Zero interest", ScenarioInput{Principal: 100, Years: 1, InterestRate: 0}, ErrZeroRate},
		{"Interest equal to inflation", ScenarioInput{Principal: 100, Years: 1, InterestRate: 4, InflationRate: 4}, ErrZeroRate},
		{"Zero years", ScenarioInput{Principal: 100, Years: 0, InterestRate: 4}, ErrInvalidInput},
		{"Years too long", ScenarioInput{Principal: 100, Years: 1e12, InterestRate: 4}, ErrInvalidInput},
		{"Negative principal", ScenarioInput{Principal: -100, Years: 1, InterestRate: 4}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ComputeInvestment(tt.input); !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}
		})
	}
}
