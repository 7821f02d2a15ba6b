package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/iwvelando/finance-projections/internal/config"
	"github.com/iwvelando/finance-projections/pkg/projection"
	"go.uber.org/zap"
)

func sampleConfiguration() config.Configuration {
	return config.Configuration{
		SIP: []config.SIPScenario{
			{Name: "Index fund", Active: true, MonthlyInvestment: 1000, ExpectedReturn: 12, TimePeriod: 10, InflationRate: 6, TaxRate: 10},
			{Name: "Skipped", Active: false, MonthlyInvestment: 1, ExpectedReturn: 0, TimePeriod: 1},
		},
		SWP: []config.SWPScenario{
			{Name: "Retirement", Active: true, InitialInvestment: 1000000, MonthlyWithdrawal: 10000, ExpectedReturn: 8, TimePeriod: 10, InflationRate: 6, TaxRate: 10},
		},
		Investments: []config.InvestmentScenario{
			{Name: "College", Active: true, Principal: 10000, MonthlyContribution: 500, Years: 5, InterestRate: 8, InflationRate: 3, TaxRate: 15},
		},
	}
}

func TestCompute(t *testing.T) {
	results, err := Compute(zap.NewNop(), sampleConfiguration())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if len(results.SIP) != 1 || len(results.SWP) != 1 || len(results.Investments) != 1 {
		t.Fatalf("unexpected outcome counts: sip=%d swp=%d investments=%d",
			len(results.SIP), len(results.SWP), len(results.Investments))
	}
	if results.Empty() {
		t.Fatal("Empty() = true, expected false")
	}

	if got := results.SIP[0].Result.FutureValue; got != 232339.08 {
		t.Errorf("SIP future value = %.2f, expected 232339.08", got)
	}
	if got := results.SWP[0].Result.MonthsLasted; got != 120 {
		t.Errorf("SWP months lasted = %d, expected 120", got)
	}
	if got := results.SWP[0].Result.RemainingBalance; got != 299987.96 {
		t.Errorf("SWP remaining balance = %.2f, expected 299987.96", got)
	}
	if got := results.Investments[0].Result.FutureValue; got != 51881.81 {
		t.Errorf("investment future value = %.2f, expected 51881.81", got)
	}
	if results.Investments[0].Input.ID != "College" {
		t.Errorf("investment input ID = %q, expected College", results.Investments[0].Input.ID)
	}
}

func TestComputeNilLogger(t *testing.T) {
	if _, err := Compute(nil, config.Configuration{}); err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
}

func TestComputeNamesFailingScenario(t *testing.T) {
	conf := config.Configuration{
		Investments: []config.InvestmentScenario{
			{Name: "Mattress", Active: true, Principal: 1000, Years: 2, InterestRate: 0},
		},
	}

	_, err := Compute(zap.NewNop(), conf)
	if err == nil {
		t.Fatal("expected error for zero interest rate")
	}
	if !errors.Is(err, projection.ErrZeroRate) {
		t.Errorf("expected ErrZeroRate, got %v", err)
	}
	if !strings.Contains(err.Error(), `"Mattress"`) {
		t.Errorf("expected scenario name in error, got %v", err)
	}
}

func TestPrettyFormat(t *testing.T) {
	results, err := Compute(zap.NewNop(), sampleConfiguration())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	var buf bytes.Buffer
	PrettyFormat(&buf, results)
	output := buf.String()

	expected := []string{
		"--- SIP results for scenario Index fund ---",
		"Future value             | $232,339.08",
		"Total investment         | $120,000.00",
		"--- SWP results for scenario Retirement ---",
		"Months lasted            | 120 of 120",
		"Total withdrawal         | $1,200,000.00",
		"Remaining balance        | $299,987.96",
		"--- Investment results for scenario College ---",
		"Total contributions      | $40,000.00",
		"After-tax future value   | $50,099.54",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("PrettyFormat output missing %q", want)
		}
	}
	if strings.Contains(output, "Skipped") {
		t.Errorf("PrettyFormat printed an inactive scenario")
	}
}

func TestPrettyFormatEmptyResults(t *testing.T) {
	var buf bytes.Buffer
	PrettyFormat(&buf, Results{})
	if buf.Len() != 0 {
		t.Errorf("expected no output for empty results, got %q", buf.String())
	}
}

func TestCsvFormat(t *testing.T) {
	results := Results{
		SIP: []SIPOutcome{{
			Name:   `The "best" plan`,
			Result: projection.SIPResult{FutureValue: 1500.5, TotalInvestment: 1200},
		}},
		SWP: []SWPOutcome{{
			Name:   "Drawdown",
			Result: projection.SWPResult{MonthsLasted: 21, TotalWithdrawal: 105000},
		}},
		Investments: []InvestmentOutcome{{
			Name:   "College",
			Result: projection.InvestmentResult{TotalContributions: 40000},
		}},
	}

	var buf bytes.Buffer
	CsvFormat(&buf, results)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	if lines[0] != `"plan","scenario","metric","value"` {
		t.Errorf("unexpected header %q", lines[0])
	}
	if len(lines) != 1+5+4+5 {
		t.Fatalf("expected 15 lines, got %d", len(lines))
	}

	expected := []string{
		`"sip","The ""best"" plan","future_value","1500.50"`,
		`"sip","The ""best"" plan","total_investment","1200.00"`,
		`"swp","Drawdown","months_lasted","21"`,
		`"swp","Drawdown","total_withdrawal","105000.00"`,
		`"investment","College","total_contributions","40000.00"`,
	}
	body := strings.Join(lines[1:], "\n")
	for _, want := range expected {
		if !strings.Contains(body, want) {
			t.Errorf("CsvFormat output missing %s", want)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"pretty", false},
		{"csv", false},
		{"", true},
		{"json", true},
		{"CSV", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	results := Results{SIP: []SIPOutcome{{Name: "a", Result: projection.SIPResult{FutureValue: 1234.5}}}}

	var pretty, csv bytes.Buffer
	if err := Write(&pretty, "pretty", results); err != nil {
		t.Fatalf("Write(pretty) error = %v", err)
	}
	if !strings.Contains(pretty.String(), "$1,234.50") {
		t.Errorf("pretty output missing grouped amount: %q", pretty.String())
	}

	if err := Write(&csv, "csv", results); err != nil {
		t.Fatalf("Write(csv) error = %v", err)
	}
	if !strings.Contains(csv.String(), `"sip","a","future_value","1234.50"`) {
		t.Errorf("csv output missing row: %q", csv.String())
	}

	var other bytes.Buffer
	if err := Write(&other, "xml", results); err == nil {
		t.Error("expected error for unsupported format")
	}
	if other.Len() != 0 {
		t.Errorf("expected no output for unsupported format")
	}
}
