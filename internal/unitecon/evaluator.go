// Package unitecon answers "is this loan profitable to originate" from a
// handful of closed-form components: expected loss on the average exposure,
// funding, opex and target margin, all on a monthly basis.
package unitecon

import (
	"math"

	"loan-pricing/internal/model"
)

// Config holds the unit-economics policy parameters. Loaded once at startup
// and shared read-only.
type Config struct {
	// LGD is loss given default, fraction of exposure lost on default.
	LGD float64 `yaml:"lgd" json:"lgd"`
	// FundingMonthly is the monthly cost of funds (decimal rate).
	FundingMonthly float64 `yaml:"funding_rate_monthly" json:"funding_rate_monthly"`
	// OpexMonthly is the monthly operating cost (decimal rate).
	OpexMonthly float64 `yaml:"opex_rate_monthly" json:"opex_rate_monthly"`
	// MarginMonthly is the target margin (decimal rate).
	MarginMonthly float64 `yaml:"margin_monthly" json:"margin_monthly"`
	// EADFraction approximates average exposure at default as a fraction of
	// principal; 0.5 for an amortizing (Price-table) loan.
	EADFraction float64 `yaml:"ead_fraction" json:"ead_fraction"`
}

// Validate rejects internally inconsistent policy parameters at load time.
func (c Config) Validate() error {
	if c.LGD < 0 || c.LGD > 1 {
		return model.ConfigErrorf("unit_economics.lgd", "must be in [0,1], got %g", c.LGD)
	}
	if c.EADFraction <= 0 || c.EADFraction > 1 {
		return model.ConfigErrorf("unit_economics.ead_fraction", "must be in (0,1], got %g", c.EADFraction)
	}
	if c.FundingMonthly < 0 || c.OpexMonthly < 0 || c.MarginMonthly < 0 {
		return model.ConfigErrorf("unit_economics", "funding/opex/margin rates must be >= 0")
	}
	return nil
}

// Result is the unit-economics sub-record of a quote.
type Result struct {
	ExpectedLoss         float64 `json:"expected_loss"`
	ELOverPrincipal      float64 `json:"el_over_principal"`
	RiskComponentMonthly float64 `json:"risk_component_monthly"`
	Funding              float64 `json:"funding"`
	Opex                 float64 `json:"opex"`
	MarginTarget         float64 `json:"margin_target"`
	IMinMonthly          float64 `json:"i_min_monthly"`
	// RateVsMinBps is the spread of the suggested rate over break-even, in
	// basis points. Negative means the rate undercuts the floor; that is a
	// valid output state, not an error.
	RateVsMinBps int  `json:"rate_vs_min_bps"`
	OKToLend     bool `json:"ok_to_lend"`
}

// Evaluate computes the break-even monthly rate and the go/no-go decision
// for one loan. termMonths pro-rates the 12-month expected loss: risk is
// assumed roughly proportional to exposure time.
func Evaluate(pd, principal float64, termMonths int, rateMonthly float64, cfg Config) (Result, error) {
	if math.IsNaN(pd) || math.IsInf(pd, 0) || pd < 0 || pd > 1 {
		return Result{}, model.InvalidInput("pd", "must be a finite probability in [0,1], got %v", pd)
	}
	if math.IsNaN(principal) || math.IsInf(principal, 0) || principal <= 0 {
		return Result{}, model.InvalidInput("principal", "must be finite and > 0, got %v", principal)
	}
	if termMonths <= 0 {
		return Result{}, model.InvalidInput("term_months", "must be > 0, got %d", termMonths)
	}
	if math.IsNaN(rateMonthly) || math.IsInf(rateMonthly, 0) || rateMonthly < 0 {
		return Result{}, model.InvalidInput("rate_monthly", "must be finite and >= 0, got %v", rateMonthly)
	}

	ead := cfg.EADFraction * principal
	el := pd * cfg.LGD * ead
	elOverP := el / principal
	riskMonthly := elOverP / (float64(termMonths) / 12.0)
	iMin := cfg.FundingMonthly + cfg.OpexMonthly + riskMonthly + cfg.MarginMonthly

	return Result{
		ExpectedLoss:         el,
		ELOverPrincipal:      elOverP,
		RiskComponentMonthly: riskMonthly,
		Funding:              cfg.FundingMonthly,
		Opex:                 cfg.OpexMonthly,
		MarginTarget:         cfg.MarginMonthly,
		IMinMonthly:          iMin,
		RateVsMinBps:         int(math.Round((rateMonthly - iMin) * 10000)),
		OKToLend:             rateMonthly >= iMin,
	}, nil
}
