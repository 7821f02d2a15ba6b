package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/finance-projections/pkg/constants"
	"github.com/iwvelando/finance-projections/pkg/projection"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ValidateFormat checks that format names a supported output format.
func ValidateFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// Write renders results in the given format.
func Write(w io.Writer, format string, results Results) error {
	switch format {
	case constants.OutputFormatPretty:
		PrettyFormat(w, results)
	case constants.OutputFormatCSV:
		CsvFormat(w, results)
	default:
		return ValidateFormat(format)
	}
	return nil
}

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, results Results) {
	p := message.NewPrinter(language.English)
	sections := 0

	separate := func() {
		if sections > 0 {
			fmt.Fprintf(w, "\n")
		}
		sections++
	}

	for _, o := range results.SIP {
		separate()
		fmt.Fprintf(w, "--- SIP results for scenario %s ---\n", o.Name)
		_, _ = p.Fprintf(w, "Monthly investment       | $%.2f\n", o.Input.MonthlyInvestment)
		_, _ = p.Fprintf(w, "Total investment         | $%.2f\n", o.Result.TotalInvestment)
		_, _ = p.Fprintf(w, "Future value             | $%.2f\n", o.Result.FutureValue)
		_, _ = p.Fprintf(w, "Inflation-adjusted value | $%.2f\n", o.Result.InflationAdjustedValue)
		_, _ = p.Fprintf(w, "Total gain               | $%.2f\n", o.Result.TotalGain)
		_, _ = p.Fprintf(w, "After-tax future value   | $%.2f\n", o.Result.AfterTaxFutureValue)
	}

	for _, o := range results.SWP {
		separate()
		fmt.Fprintf(w, "--- SWP results for scenario %s ---\n", o.Name)
		_, _ = p.Fprintf(w, "Initial investment       | $%.2f\n", o.Input.InitialInvestment)
		_, _ = p.Fprintf(w, "Months lasted            | %d of %d\n", o.Result.MonthsLasted, projection.HorizonMonths(o.Input.TimePeriod))
		_, _ = p.Fprintf(w, "Total withdrawal         | $%.2f\n", o.Result.TotalWithdrawal)
		_, _ = p.Fprintf(w, "Remaining balance        | $%.2f\n", o.Result.RemainingBalance)
		_, _ = p.Fprintf(w, "Final monthly withdrawal | $%.2f (inflation-adjusted)\n", o.Result.InflationAdjustedFinalWithdrawal)
	}

	for _, o := range results.Investments {
		separate()
		fmt.Fprintf(w, "--- Investment results for scenario %s ---\n", o.Name)
		_, _ = p.Fprintf(w, "Principal                | $%.2f\n", o.Input.Principal)
		_, _ = p.Fprintf(w, "Total contributions      | $%.2f\n", o.Result.TotalContributions)
		_, _ = p.Fprintf(w, "Future value             | $%.2f\n", o.Result.FutureValue)
		_, _ = p.Fprintf(w, "Inflation-adjusted value | $%.2f\n", o.Result.InflationAdjustedValue)
		_, _ = p.Fprintf(w, "Total gain               | $%.2f\n", o.Result.TotalGain)
		_, _ = p.Fprintf(w, "After-tax future value   | $%.2f\n", o.Result.AfterTaxFutureValue)
	}
}

// CsvFormat writes one row per scenario metric in comma-separated value format.
func CsvFormat(w io.Writer, results Results) {
	fmt.Fprintf(w, `"plan","scenario","metric","value"`+"\n")

	row := func(plan, name, metric string, value float64) {
		fmt.Fprintf(w, `"%s","%s","%s","%.2f"`+"\n", plan, quote(name), metric, value)
	}

	for _, o := range results.SIP {
		row("sip", o.Name, "future_value", o.Result.FutureValue)
		row("sip", o.Name, "inflation_adjusted_value", o.Result.InflationAdjustedValue)
		row("sip", o.Name, "total_investment", o.Result.TotalInvestment)
		row("sip", o.Name, "total_gain", o.Result.TotalGain)
		row("sip", o.Name, "after_tax_future_value", o.Result.AfterTaxFutureValue)
	}
	for _, o := range results.SWP {
		fmt.Fprintf(w, `"swp","%s","months_lasted","%d"`+"\n", quote(o.Name), o.Result.MonthsLasted)
		row("swp", o.Name, "total_withdrawal", o.Result.TotalWithdrawal)
		row("swp", o.Name, "remaining_balance", o.Result.RemainingBalance)
		row("swp", o.Name, "inflation_adjusted_final_withdrawal", o.Result.InflationAdjustedFinalWithdrawal)
	}
	for _, o := range results.Investments {
		row("investment", o.Name, "future_value", o.Result.FutureValue)
		row("investment", o.Name, "inflation_adjusted_value", o.Result.InflationAdjustedValue)
		row("investment", o.Name, "total_contributions", o.Result.TotalContributions)
		row("investment", o.Name, "total_gain", o.Result.TotalGain)
		row("investment", o.Name, "after_tax_future_value", o.Result.AfterTaxFutureValue)
	}
}

// quote escapes embedded double quotes for a quoted CSV field.
func quote(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}
