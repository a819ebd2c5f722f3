package main

import (
	"flag"
	"fmt"

	"loan-pricing/internal/config"
	"loan-pricing/internal/model"
	"loan-pricing/internal/pricing"
	"loan-pricing/internal/quote"
	"loan-pricing/internal/registry"
	"loan-pricing/internal/unitecon"
)

// Demo:
// - Build a default scorecard + pricing artifact + unit-economics policy
// - Quote a PD grid for a fixed loan to show how the pieces fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional; built-in defaults otherwise)")
	amount := flag.Float64("amount", 10000, "Principal amount")
	term := flag.Int("term", 24, "Term in months")
	flag.Parse()

	var bundle *registry.Bundle
	if *cfgPath != "" {
		reg := registry.New(*cfgPath)
		if err := reg.Load(); err != nil {
			panic(err)
		}
		bundle = reg.Current()
	} else {
		b, err := registry.Build(defaultConfig())
		if err != nil {
			panic(err)
		}
		bundle = b
	}

	pds := []float64{0.01, 0.02, 0.03, 0.05, 0.08, 0.12, 0.20, 0.35}

	fmt.Printf("%-8s %-6s %-5s %-10s %-10s %-11s %-6s %-10s\n",
		"pd", "score", "band", "rate_am", "i_min_am", "spread_bps", "lend", "pmt")
	for _, pd := range pds {
		q, err := bundle.Engine.Build(quote.Input{PD: pd, Principal: *amount, TermMonths: *term})
		if err != nil {
			panic(err)
		}
		fmt.Printf("%-8.4f %-6d %-5s %-10.4f %-10.4f %-11d %-6v %-10.2f\n",
			q.PD,
			q.Score,
			q.Band,
			q.RateMonthly,
			q.UnitEconomics.IMinMonthly,
			q.UnitEconomics.RateVsMinBps,
			q.UnitEconomics.OKToLend,
			q.Installment,
		)
	}
}

// defaultConfig mirrors examples/config.yaml so the demo runs standalone.
func defaultConfig() *config.Config {
	return &config.Config{
		Scorecard: config.ScorecardSection{S0: 700, O0: 20, PDO: 50},
		Limits: config.LimitsSection{
			PDFloor:    0.002,
			PDCeiling:  0.60,
			ScoreMin:   0,
			ScoreMax:   1000,
			RoundScore: true,
		},
		Bands: map[string]config.Band{
			"A": {Min: 800},
			"B": {Min: 680},
			"C": {Min: 580},
			"D": {Min: 450},
			"E": {Min: 0},
		},
		Pricing: config.PricingSection{
			Artifact: pricing.Artifact{
				Intercept:    0.0128,
				Coefficients: []float64{0.11},
				Isotonic: &pricing.IsotonicCurve{
					X: []float64{0.002, 0.01, 0.02, 0.05, 0.10, 0.20, 0.35, 0.60},
					Y: []float64{0.0131, 0.0148, 0.0172, 0.0265, 0.0410, 0.0600, 0.0720, 0.0790},
				},
				Caps: model.RateCaps{MinRateMonthly: 0.012, MaxRateMonthly: 0.079},
			},
		},
		UnitEcon: unitecon.Config{
			LGD:            0.45,
			FundingMonthly: 0.008,
			OpexMonthly:    0.003,
			MarginMonthly:  0.002,
			EADFraction:    0.5,
		},
	}
}
