package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-pricing/internal/analysis"
	"loan-pricing/internal/model"
	"loan-pricing/internal/pricing"
	"loan-pricing/internal/quote"
	"loan-pricing/internal/scorecard"
	"loan-pricing/internal/unitecon"
)

func testEngine(t *testing.T) *quote.Engine {
	t.Helper()

	sc, err := scorecard.New(scorecard.Params{
		S0:         700,
		O0:         20,
		PDO:        50,
		PDFloor:    0.002,
		PDCeiling:  0.60,
		ScoreMin:   0,
		ScoreMax:   1000,
		RoundScore: true,
	}, map[string]int{"A": 800, "B": 680, "C": 580, "D": 450, "E": 0})
	require.NoError(t, err)

	pw, err := pricing.NewWrapper(pricing.Artifact{
		Intercept:    0.0128,
		Coefficients: []float64{0.11},
		Caps:         model.RateCaps{MinRateMonthly: 0.012, MaxRateMonthly: 0.079},
	})
	require.NoError(t, err)

	return quote.New(sc, pw, unitecon.Config{
		LGD:            0.45,
		FundingMonthly: 0.008,
		OpexMonthly:    0.003,
		MarginMonthly:  0.002,
		EADFraction:    0.5,
	})
}

func testApplicants() []model.Applicant {
	return []model.Applicant{
		{ID: "a-1", PD: 0.012, Principal: 8000, TermMonths: 12},
		{ID: "a-2", PD: 0.030, Principal: 10000, TermMonths: 24},
		{ID: "a-3", PD: 0.090, Principal: 5000, TermMonths: 18},
		{ID: "a-4", PD: 0.260, Principal: 7000, TermMonths: 12},
	}
}

func TestQuoteAll(t *testing.T) {
	eng := testEngine(t)

	t.Run("prices a clean batch", func(t *testing.T) {
		rows, skipped, err := analysis.QuoteAll(eng, testApplicants())
		require.NoError(t, err)
		assert.Zero(t, skipped)
		require.Len(t, rows, 4)
		assert.Equal(t, "a-1", rows[0].Applicant.ID)
		assert.Greater(t, rows[0].Quote.RateMonthly, 0.0)
	})

	t.Run("skips invalid applicants instead of failing", func(t *testing.T) {
		batch := append(testApplicants(),
			model.Applicant{ID: "bad-principal", PD: 0.03, Principal: -100, TermMonths: 24},
			model.Applicant{ID: "bad-pd", PD: 1.5, Principal: 10000, TermMonths: 24},
		)
		rows, skipped, err := analysis.QuoteAll(eng, batch)
		require.NoError(t, err)
		assert.Equal(t, 2, skipped)
		assert.Len(t, rows, 4)
	})

	t.Run("empty batch", func(t *testing.T) {
		rows, skipped, err := analysis.QuoteAll(eng, nil)
		require.NoError(t, err)
		assert.Zero(t, skipped)
		assert.Empty(t, rows)
	})
}

func TestSummarize(t *testing.T) {
	eng := testEngine(t)
	rows, skipped, err := analysis.QuoteAll(eng, testApplicants())
	require.NoError(t, err)

	t.Run("aggregates the book", func(t *testing.T) {
		s := analysis.Summarize(rows, skipped)
		assert.Equal(t, 4, s.Count)
		assert.Zero(t, s.Skipped)
		assert.GreaterOrEqual(t, s.Approved, 0)
		assert.LessOrEqual(t, s.Approved, 4)
		assert.InDelta(t, float64(s.Approved)/4.0, s.ApprovalRate, 1e-12)

		assert.LessOrEqual(t, s.MinRateMonthly, s.MeanRateMonthly)
		assert.LessOrEqual(t, s.MeanRateMonthly, s.MaxRateMonthly)

		total := 0
		for _, n := range s.BandCounts {
			total += n
		}
		assert.Equal(t, 4, total)
	})

	t.Run("carries the skip count through", func(t *testing.T) {
		s := analysis.Summarize(rows, 3)
		assert.Equal(t, 3, s.Skipped)
	})

	t.Run("empty book", func(t *testing.T) {
		s := analysis.Summarize(nil, 1)
		assert.Zero(t, s.Count)
		assert.Equal(t, 1, s.Skipped)
		assert.Zero(t, s.MinRateMonthly)
		assert.Zero(t, s.MaxRateMonthly)
		assert.Zero(t, s.ApprovalRate)
	})
}

func TestRankBySpread(t *testing.T) {
	eng := testEngine(t)
	rows, _, err := analysis.QuoteAll(eng, testApplicants())
	require.NoError(t, err)

	ranked := analysis.RankBySpread(rows)
	require.Len(t, ranked, len(rows))

	t.Run("descending by spread, pd breaks ties", func(t *testing.T) {
		for i := 1; i < len(ranked); i++ {
			prev := ranked[i-1].Quote.UnitEconomics.RateVsMinBps
			cur := ranked[i].Quote.UnitEconomics.RateVsMinBps
			assert.GreaterOrEqual(t, prev, cur)
			if prev == cur {
				assert.LessOrEqual(t, ranked[i-1].Quote.PD, ranked[i].Quote.PD)
			}
		}
	})

	t.Run("input order untouched", func(t *testing.T) {
		assert.Equal(t, "a-1", rows[0].Applicant.ID)
		assert.Equal(t, "a-4", rows[3].Applicant.ID)
	})
}
