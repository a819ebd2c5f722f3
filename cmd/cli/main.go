package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"loan-pricing/internal/analysis"
	"loan-pricing/internal/data"
	"loan-pricing/internal/quote"
	"loan-pricing/internal/registry"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "quote":
		cmdQuote(os.Args[2:])
	case "batch":
		cmdBatch(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli quote --config examples/config.yaml --pd 0.03 --amount 10000 --term 24 --out results/schedule.csv")
	fmt.Println("  cli batch --config examples/config.yaml --data examples/applicants.json")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - quote prints the full priced quote and optionally writes the amortization schedule CSV")
	fmt.Println("  - batch prices an applicants JSON and ranks by spread over break-even")
}

func cmdQuote(args []string) {
	fs := flag.NewFlagSet("quote", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	pd := fs.Float64("pd", 0, "Probability of default (12m)")
	amount := fs.Float64("amount", 0, "Principal amount")
	term := fs.Int("term", 0, "Term in months")
	upfront := fs.Float64("fee-upfront", 0, "Upfront fee deducted at disbursement")
	monthly := fs.Float64("fee-monthly", 0, "Fee added to every installment")
	outPath := fs.String("out", "", "Optional path to write the amortization schedule CSV")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	bundle := loadBundle(*cfgPath)

	in := quote.Input{PD: *pd, Principal: *amount, TermMonths: *term}
	in.Fees.Upfront = *upfront
	in.Fees.Monthly = *monthly

	q, err := bundle.Engine.Build(in)
	if err != nil {
		panic(err)
	}

	fmt.Printf("pd=%.6f score=%d band=%s\n", q.PD, q.Score, q.Band)
	fmt.Printf("rate=%.4f%% a.m. (%.2f%% a.a. eff)  mode=%s deg=%d caps=[%.4f, %.4f]\n",
		q.RateMonthly*100, q.RateYearlyEff*100,
		q.Pricing.Mode, q.Pricing.PolyDegree,
		q.Pricing.Caps.MinRateMonthly, q.Pricing.Caps.MaxRateMonthly)
	ue := q.UnitEconomics
	fmt.Printf("i_min=%.4f%% spread=%+dbps ok_to_lend=%v (el/P=%.6f risk=%.6f)\n",
		ue.IMinMonthly*100, ue.RateVsMinBps, ue.OKToLend, ue.ELOverPrincipal, ue.RiskComponentMonthly)
	fmt.Printf("installment=%.2f cet=%.4f%% a.m. / %.2f%% a.a.\n",
		q.Installment, q.CETMonthly*100, q.CETYearly*100)

	if *outPath != "" {
		rows, err := bundle.Engine.Schedule(in)
		if err != nil {
			panic(err)
		}
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := quote.WriteScheduleCSV(*outPath, rows); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(rows), *outPath)
	}
}

func cmdBatch(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	dataPath := fs.String("data", "examples/applicants.json", "Path to applicants JSON")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	bundle := loadBundle(*cfgPath)

	batch, err := data.LoadApplicantsJSON(*dataPath)
	if err != nil {
		panic(err)
	}

	rows, skipped, err := analysis.QuoteAll(bundle.Engine, batch.Applicants)
	if err != nil {
		panic(err)
	}
	ranked := analysis.RankBySpread(rows)
	summary := analysis.Summarize(ranked, skipped)

	fmt.Printf("%-4s %-12s %-8s %-6s %-5s %-10s %-10s %-6s\n",
		"rank", "id", "pd", "score", "band", "rate_am", "spread_bps", "lend")
	for i, r := range ranked {
		q := r.Quote
		fmt.Printf("%-4d %-12s %-8.4f %-6d %-5s %-10.4f %-10d %-6v\n",
			i+1,
			r.Applicant.ID,
			q.PD,
			q.Score,
			q.Band,
			q.RateMonthly,
			q.UnitEconomics.RateVsMinBps,
			q.UnitEconomics.OKToLend,
		)
	}
	fmt.Printf("\npriced=%d skipped=%d approved=%d (%.1f%%) mean_rate=%.4f mean_spread=%.1fbps\n",
		summary.Count, summary.Skipped, summary.Approved, summary.ApprovalRate*100,
		summary.MeanRateMonthly, summary.MeanSpreadBps)
}

func loadBundle(cfgPath string) *registry.Bundle {
	reg := registry.New(cfgPath)
	if err := reg.Load(); err != nil {
		panic(err)
	}
	return reg.Current()
}
