// Package config defines the data structures of the projection file read by
// the command line tool and includes functions for loading and checking it.
package config

import (
	"fmt"

	"github.com/iwvelando/finance-projections/internal/logging"
	"github.com/iwvelando/finance-projections/pkg/projection"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for finance-projections.
type Configuration struct {
	Logging     logging.Config       `mapstructure:"logging"`
	Output      OutputConfig         `mapstructure:"output"`
	SIP         []SIPScenario        `mapstructure:"sip"`
	SWP         []SWPScenario        `mapstructure:"swp"`
	Investments []InvestmentScenario `mapstructure:"investments"`
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format"` // pretty, csv
}

// SIPScenario is a named systematic investment plan.
type SIPScenario struct {
	Name              string  `mapstructure:"name"`
	Active            bool    `mapstructure:"active"`
	MonthlyInvestment float64 `mapstructure:"monthly_investment"`
	ExpectedReturn    float64 `mapstructure:"expected_return"`
	TimePeriod        float64 `mapstructure:"time_period"`
	InflationRate     float64 `mapstructure:"inflation_rate"`
	TaxRate           float64 `mapstructure:"tax_rate"`
}

// SWPScenario is a named systematic withdrawal plan.
type SWPScenario struct {
	Name              string  `mapstructure:"name"`
	Active            bool    `mapstructure:"active"`
	InitialInvestment float64 `mapstructure:"initial_investment"`
	MonthlyWithdrawal float64 `mapstructure:"monthly_withdrawal"`
	ExpectedReturn    float64 `mapstructure:"expected_return"`
	TimePeriod        float64 `mapstructure:"time_period"`
	InflationRate     float64 `mapstructure:"inflation_rate"`
	TaxRate           float64 `mapstructure:"tax_rate"`
}

// InvestmentScenario is a named lump sum with optional monthly contributions.
type InvestmentScenario struct {
	Name                string  `mapstructure:"name"`
	Active              bool    `mapstructure:"active"`
	Principal           float64 `mapstructure:"principal"`
	MonthlyContribution float64 `mapstructure:"monthly_contribution"`
	Years               float64 `mapstructure:"years"`
	InterestRate        float64 `mapstructure:"interest_rate"`
	InflationRate       float64 `mapstructure:"inflation_rate"`
	TaxRate             float64 `mapstructure:"tax_rate"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Input converts the scenario into projection parameters.
func (s SIPScenario) Input() projection.SIPInput {
	return projection.SIPInput{
		MonthlyInvestment: s.MonthlyInvestment,
		ExpectedReturn:    s.ExpectedReturn,
		TimePeriod:        s.TimePeriod,
		InflationRate:     s.InflationRate,
		TaxRate:           s.TaxRate,
	}
}

// Input converts the scenario into projection parameters.
func (s SWPScenario) Input() projection.SWPInput {
	return projection.SWPInput{
		InitialInvestment: s.InitialInvestment,
		MonthlyWithdrawal: s.MonthlyWithdrawal,
		ExpectedReturn:    s.ExpectedReturn,
		TimePeriod:        s.TimePeriod,
		InflationRate:     s.InflationRate,
		TaxRate:           s.TaxRate,
	}
}

// Input converts the scenario into projection parameters. The scenario name
// becomes the input ID.
func (s InvestmentScenario) Input() projection.ScenarioInput {
	return projection.ScenarioInput{
		ID:                  s.Name,
		Principal:           s.Principal,
		MonthlyContribution: s.MonthlyContribution,
		Years:               s.Years,
		InterestRate:        s.InterestRate,
		InflationRate:       s.InflationRate,
		TaxRate:             s.TaxRate,
	}
}

// ActiveCount returns the number of active scenarios across all sections.
func (c *Configuration) ActiveCount() int {
	n := 0
	for _, s := range c.SIP {
		if s.Active {
			n++
		}
	}
	for _, s := range c.SWP {
		if s.Active {
			n++
		}
	}
	for _, s := range c.Investments {
		if s.Active {
			n++
		}
	}
	return n
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.ActiveCount() == 0 {
		warnings = append(warnings, "No active scenarios found - nothing will be projected")
	}

	sip := newSectionChecker("sip")
	for _, s := range c.SIP {
		sip.check(s.Name, s.Active, s.ExpectedReturn, s.InflationRate)
	}
	swp := newSectionChecker("swp")
	for _, s := range c.SWP {
		swp.check(s.Name, s.Active, s.ExpectedReturn, s.InflationRate)
		if s.Active && s.MonthlyWithdrawal*12 > s.InitialInvestment && s.InitialInvestment > 0 {
			swp.warn("Scenario '%s' withdraws more than the initial investment each year", s.Name)
		}
	}
	inv := newSectionChecker("investments")
	for _, s := range c.Investments {
		inv.check(s.Name, s.Active, s.InterestRate, s.InflationRate)
	}

	warnings = append(warnings, sip.warnings...)
	warnings = append(warnings, swp.warnings...)
	warnings = append(warnings, inv.warnings...)
	return warnings
}

type sectionChecker struct {
	section  string
	seen     map[string]bool
	warnings []string
}

func newSectionChecker(section string) *sectionChecker {
	return &sectionChecker{section: section, seen: make(map[string]bool)}
}

func (sc *sectionChecker) warn(format string, args ...interface{}) {
	sc.warnings = append(sc.warnings, fmt.Sprintf("[%s] ", sc.section)+fmt.Sprintf(format, args...))
}

func (sc *sectionChecker) check(name string, active bool, annualReturn, inflation float64) {
	if name == "" {
		sc.warn("Scenario has no name")
	} else if sc.seen[name] {
		sc.warn("Duplicate scenario name '%s'", name)
	}
	sc.seen[name] = true

	if !active {
		sc.warn("Scenario '%s' is inactive and will be skipped", name)
		return
	}
	if inflation >= annualReturn {
		sc.warn("Scenario '%s' has inflation (%.2f%%) at or above its return (%.2f%%) - real value will not grow",
			name, inflation, annualReturn)
	}
}
