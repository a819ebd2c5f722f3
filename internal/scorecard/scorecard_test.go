package scorecard_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-pricing/internal/model"
	"loan-pricing/internal/scorecard"
)

func testParams() scorecard.Params {
	return scorecard.Params{
		S0:         700,
		O0:         20,
		PDO:        50,
		PDFloor:    0.002,
		PDCeiling:  0.60,
		ScoreMin:   0,
		ScoreMax:   1000,
		RoundScore: true,
	}
}

func testCuts() map[string]int {
	return map[string]int{"A": 800, "B": 680, "C": 580, "D": 450}
}

func TestScorecard_New(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		sc, err := scorecard.New(testParams(), testCuts())
		require.NoError(t, err)
		require.NotNil(t, sc)
	})

	t.Run("rejects duplicate band cutoffs", func(t *testing.T) {
		cuts := map[string]int{"A": 800, "B": 800, "C": 580}
		_, err := scorecard.New(testParams(), cuts)
		require.Error(t, err)
		var cfgErr *model.ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("rejects empty bands", func(t *testing.T) {
		_, err := scorecard.New(testParams(), map[string]int{})
		require.Error(t, err)
	})

	t.Run("rejects inverted pd bounds", func(t *testing.T) {
		p := testParams()
		p.PDFloor, p.PDCeiling = 0.6, 0.002
		_, err := scorecard.New(p, testCuts())
		require.Error(t, err)
	})

	t.Run("rejects non-positive anchors", func(t *testing.T) {
		p := testParams()
		p.O0 = 0
		_, err := scorecard.New(p, testCuts())
		require.Error(t, err)
	})
}

func TestScorecard_ScoreAndBand(t *testing.T) {
	sc, err := scorecard.New(testParams(), testCuts())
	require.NoError(t, err)

	t.Run("reference point", func(t *testing.T) {
		// S0=700, O0=20, PDO=50: pd=0.067388 sits ~half an octave below
		// anchor odds.
		a, err := sc.ScoreAndBand(0.067388)
		require.NoError(t, err)
		assert.Equal(t, 673, a.Score)
		assert.Equal(t, "C", a.Band)
	})

	t.Run("anchor odds give anchor score", func(t *testing.T) {
		// odds=20 <=> pd=1/21
		score, err := sc.ScoreFromPD(1.0 / 21.0)
		require.NoError(t, err)
		assert.Equal(t, 700, score)
	})

	t.Run("monotonic: higher pd never scores higher", func(t *testing.T) {
		pds := []float64{0.002, 0.005, 0.01, 0.02, 0.03, 0.05, 0.067388, 0.10, 0.15, 0.25, 0.40, 0.60}
		prev := math.MaxInt
		for _, pd := range pds {
			score, err := sc.ScoreFromPD(pd)
			require.NoError(t, err)
			assert.LessOrEqual(t, score, prev, "pd=%v", pd)
			prev = score
		}
	})

	t.Run("clips pd to floor and ceiling", func(t *testing.T) {
		atFloor, err := sc.ScoreFromPD(0.002)
		require.NoError(t, err)
		below, err := sc.ScoreFromPD(0.00001)
		require.NoError(t, err)
		assert.Equal(t, atFloor, below)

		atCeiling, err := sc.ScoreFromPD(0.60)
		require.NoError(t, err)
		above, err := sc.ScoreFromPD(0.95)
		require.NoError(t, err)
		assert.Equal(t, atCeiling, above)
	})

	t.Run("rejects non-finite pd", func(t *testing.T) {
		var invalid *model.InvalidInputError
		_, err := sc.ScoreFromPD(math.NaN())
		require.Error(t, err)
		assert.ErrorAs(t, err, &invalid)

		_, err = sc.ScoreFromPD(math.Inf(1))
		require.Error(t, err)
	})
}

func TestScorecard_BandOf(t *testing.T) {
	sc, err := scorecard.New(testParams(), testCuts())
	require.NoError(t, err)

	t.Run("every score maps to exactly one configured band", func(t *testing.T) {
		valid := map[string]bool{"A": true, "B": true, "C": true, "D": true}
		for score := 0; score <= 1000; score++ {
			band := sc.BandOf(score)
			assert.True(t, valid[band], "score %d got band %q", score, band)
		}
	})

	t.Run("cutoffs are inclusive", func(t *testing.T) {
		assert.Equal(t, "A", sc.BandOf(800))
		assert.Equal(t, "B", sc.BandOf(799))
		assert.Equal(t, "B", sc.BandOf(680))
		assert.Equal(t, "C", sc.BandOf(580))
		assert.Equal(t, "D", sc.BandOf(450))
	})

	t.Run("scores below every cutoff get the worst band", func(t *testing.T) {
		assert.Equal(t, "D", sc.BandOf(0))
		assert.Equal(t, "D", sc.BandOf(449))
	})
}

func TestScorecard_PDFromScore(t *testing.T) {
	sc, err := scorecard.New(testParams(), testCuts())
	require.NoError(t, err)

	t.Run("inverts the transform up to score rounding", func(t *testing.T) {
		for _, pd := range []float64{0.01, 0.05, 0.10, 0.30} {
			score, err := sc.ScoreFromPD(pd)
			require.NoError(t, err)
			back := sc.PDFromScore(score)
			assert.InDelta(t, pd, back, 0.001, "pd=%v score=%d", pd, score)
		}
	})

	t.Run("clamps out-of-range scores", func(t *testing.T) {
		assert.Equal(t, sc.PDFromScore(0), sc.PDFromScore(-50))
		assert.Equal(t, sc.PDFromScore(1000), sc.PDFromScore(2000))
	})
}
