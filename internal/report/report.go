// Package report computes the scenarios of a projection file and renders the
// results for the command line.
package report

import (
	"fmt"

	"github.com/iwvelando/finance-projections/internal/config"
	"github.com/iwvelando/finance-projections/pkg/projection"
	"go.uber.org/zap"
)

// SIPOutcome is the result of one named SIP scenario.
type SIPOutcome struct {
	Name   string
	Input  projection.SIPInput
	Result projection.SIPResult
}

// SWPOutcome is the result of one named SWP scenario.
type SWPOutcome struct {
	Name   string
	Input  projection.SWPInput
	Result projection.SWPResult
}

// InvestmentOutcome is the result of one named investment scenario.
type InvestmentOutcome struct {
	Name   string
	Input  projection.ScenarioInput
	Result projection.InvestmentResult
}

// Results holds the outcome of every active scenario in file order.
type Results struct {
	SIP         []SIPOutcome
	SWP         []SWPOutcome
	Investments []InvestmentOutcome
}

// Empty reports whether no scenario produced a result.
func (r Results) Empty() bool {
	return len(r.SIP) == 0 && len(r.SWP) == 0 && len(r.Investments) == 0
}

// Compute runs every active scenario in conf. The first failing scenario
// aborts the run and is named in the returned error.
func Compute(logger *zap.Logger, conf config.Configuration) (Results, error) {
	const op = "report.Compute"
	if logger == nil {
		logger = zap.NewNop()
	}

	var results Results

	for _, s := range conf.SIP {
		if !s.Active {
			continue
		}
		result, err := projection.ComputeSIP(s.Input())
		if err != nil {
			return Results{}, fmt.Errorf("sip scenario %q: %w", s.Name, err)
		}
		logger.Debug("computed sip scenario",
			zap.String("op", op),
			zap.String("scenario", s.Name),
			zap.Float64("futureValue", result.FutureValue),
		)
		results.SIP = append(results.SIP, SIPOutcome{Name: s.Name, Input: s.Input(), Result: result})
	}

	for _, s := range conf.SWP {
		if !s.Active {
			continue
		}
		result, err := projection.ComputeSWP(s.Input())
		if err != nil {
			return Results{}, fmt.Errorf("swp scenario %q: %w", s.Name, err)
		}
		logger.Debug("computed swp scenario",
			zap.String("op", op),
			zap.String("scenario", s.Name),
			zap.Int("monthsLasted", result.MonthsLasted),
		)
		results.SWP = append(results.SWP, SWPOutcome{Name: s.Name, Input: s.Input(), Result: result})
	}

	for _, s := range conf.Investments {
		if !s.Active {
			continue
		}
		result, err := projection.ComputeInvestment(s.Input())
		if err != nil {
			return Results{}, fmt.Errorf("investment scenario %q: %w", s.Name, err)
		}
		logger.Debug("computed investment scenario",
			zap.String("op", op),
			zap.String("scenario", s.Name),
			zap.Float64("futureValue", result.FutureValue),
		)
		results.Investments = append(results.Investments, InvestmentOutcome{Name: s.Name, Input: s.Input(), Result: result})
	}

	logger.Info("projections computed",
		zap.String("op", op),
		zap.Int("sip", len(results.SIP)),
		zap.Int("swp", len(results.SWP)),
		zap.Int("investments", len(results.Investments)),
	)

	return results, nil
}
