package analysis

import (
	"errors"
	"math"

	"loan-pricing/internal/model"
	"loan-pricing/internal/quote"
)

// ApplicantQuote pairs a batch applicant with its priced quote.
type ApplicantQuote struct {
	Applicant model.Applicant
	Quote     quote.Quote
}

// PortfolioSummary aggregates a batch pricing run. It is a book-level view:
// how much of the batch clears the break-even floor and where the risk sits.
type PortfolioSummary struct {
	Count        int     `json:"count"`
	Skipped      int     `json:"skipped"`
	Approved     int     `json:"approved"`
	ApprovalRate float64 `json:"approval_rate"`

	MeanRateMonthly float64 `json:"mean_rate_monthly"`
	MinRateMonthly  float64 `json:"min_rate_monthly"`
	MaxRateMonthly  float64 `json:"max_rate_monthly"`
	MeanSpreadBps   float64 `json:"mean_spread_bps"`

	BandCounts map[string]int `json:"band_counts"`
}

// QuoteAll prices every applicant. Applicants with invalid inputs are
// skipped rather than failing the batch; the skip count is reported in the
// summary.
func QuoteAll(eng *quote.Engine, applicants []model.Applicant) (rows []ApplicantQuote, skipped int, err error) {
	rows = make([]ApplicantQuote, 0, len(applicants))
	for _, a := range applicants {
		q, err := eng.Build(quote.Input{PD: a.PD, Principal: a.Principal, TermMonths: a.TermMonths})
		if err != nil {
			var invalid *model.InvalidInputError
			if errors.As(err, &invalid) {
				skipped++
				continue
			}
			return nil, skipped, err
		}
		rows = append(rows, ApplicantQuote{Applicant: a, Quote: q})
	}
	return rows, skipped, nil
}

// Summarize computes the portfolio view over priced rows.
func Summarize(rows []ApplicantQuote, skipped int) PortfolioSummary {
	s := PortfolioSummary{
		Count:          len(rows),
		Skipped:        skipped,
		BandCounts:     map[string]int{},
		MinRateMonthly: math.Inf(1),
		MaxRateMonthly: math.Inf(-1),
	}
	if len(rows) == 0 {
		s.MinRateMonthly, s.MaxRateMonthly = 0, 0
		return s
	}

	var rateSum, spreadSum float64
	for _, r := range rows {
		q := r.Quote
		if q.UnitEconomics.OKToLend {
			s.Approved++
		}
		rateSum += q.RateMonthly
		spreadSum += float64(q.UnitEconomics.RateVsMinBps)
		if q.RateMonthly < s.MinRateMonthly {
			s.MinRateMonthly = q.RateMonthly
		}
		if q.RateMonthly > s.MaxRateMonthly {
			s.MaxRateMonthly = q.RateMonthly
		}
		s.BandCounts[q.Band]++
	}
	n := float64(len(rows))
	s.ApprovalRate = float64(s.Approved) / n
	s.MeanRateMonthly = rateSum / n
	s.MeanSpreadBps = spreadSum / n
	return s
}
