package calc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-pricing/internal/calc"
	"loan-pricing/internal/model"
)

func TestNPV(t *testing.T) {
	assert.InDelta(t, 0, calc.NPV(0.10, []float64{-100, 110}), 1e-12)
	assert.InDelta(t, 10, calc.NPV(0, []float64{-100, 50, 60}), 1e-12)
	// Discounting at a higher rate shrinks future inflows.
	assert.Less(t, calc.NPV(0.20, []float64{-100, 60, 60}), calc.NPV(0.05, []float64{-100, 60, 60}))
}

func TestIRR(t *testing.T) {
	t.Run("two-period loan", func(t *testing.T) {
		// 100 out, 60 back twice: root of 60x^2 + 60x - 100 with x = 1/(1+r).
		flows := []float64{100, -60, -60}
		r := calc.IRR(flows, 0.10)
		assert.InDelta(t, 0, calc.NPV(r, flows), 1e-8)
		assert.InDelta(t, 0.1306, r, 0.001)
	})

	t.Run("contract-rate guess converges on fee-free flows", func(t *testing.T) {
		pmt, err := calc.PMT(0.025, 36, 20000)
		require.NoError(t, err)
		flows := make([]float64, 0, 37)
		flows = append(flows, 20000)
		for i := 0; i < 36; i++ {
			flows = append(flows, -pmt)
		}
		r := calc.IRR(flows, 0.025)
		assert.InDelta(t, 0.025, r, 1e-9)
	})

	t.Run("bisection fallback handles a wild guess", func(t *testing.T) {
		flows := []float64{100, -60, -60}
		r := calc.IRR(flows, 0.99)
		assert.InDelta(t, 0, calc.NPV(r, flows), 1e-6)
	})
}

func TestCETFromFlows(t *testing.T) {
	t.Run("no fees collapses to the contract rate", func(t *testing.T) {
		cetM, cetY, err := calc.CETFromFlows(10000, 0.02, 24, model.FeeSchedule{})
		require.NoError(t, err)
		assert.InDelta(t, 0.02, cetM, 1e-9)
		assert.InDelta(t, calc.EffAnnualFromMonthly(0.02), cetY, 1e-8)
	})

	t.Run("upfront fee raises effective cost", func(t *testing.T) {
		cetM, cetY, err := calc.CETFromFlows(10000, 0.02, 24, model.FeeSchedule{Upfront: 150})
		require.NoError(t, err)
		assert.Greater(t, cetM, 0.02)
		assert.InDelta(t, calc.EffAnnualFromMonthly(cetM), cetY, 1e-10)
	})

	t.Run("monthly fee raises effective cost", func(t *testing.T) {
		cetM, _, err := calc.CETFromFlows(10000, 0.02, 24, model.FeeSchedule{Monthly: 10})
		require.NoError(t, err)
		assert.Greater(t, cetM, 0.02)
	})

	t.Run("disbursement discount behaves like an upfront fee", func(t *testing.T) {
		withFee, _, err := calc.CETFromFlows(10000, 0.02, 24, model.FeeSchedule{Upfront: 150})
		require.NoError(t, err)
		withDiscount, _, err := calc.CETFromFlows(10000, 0.02, 24, model.FeeSchedule{DisbursementDiscount: 150})
		require.NoError(t, err)
		assert.InDelta(t, withFee, withDiscount, 1e-12)
	})

	t.Run("stacked fees compound the spread", func(t *testing.T) {
		small, _, err := calc.CETFromFlows(10000, 0.02, 24, model.FeeSchedule{Upfront: 100})
		require.NoError(t, err)
		big, _, err := calc.CETFromFlows(10000, 0.02, 24, model.FeeSchedule{Upfront: 100, Monthly: 15})
		require.NoError(t, err)
		assert.Greater(t, big, small)
	})

	t.Run("fees consuming the disbursement are rejected", func(t *testing.T) {
		_, _, err := calc.CETFromFlows(1000, 0.02, 24, model.FeeSchedule{Upfront: 1000})
		require.Error(t, err)
		var invalid *model.InvalidInputError
		assert.ErrorAs(t, err, &invalid)

		_, _, err = calc.CETFromFlows(1000, 0.02, 24, model.FeeSchedule{Upfront: 600, DisbursementDiscount: 500})
		require.Error(t, err)
	})

	t.Run("zero-rate loan with fees still has positive cost", func(t *testing.T) {
		cetM, _, err := calc.CETFromFlows(1200, 0, 12, model.FeeSchedule{Upfront: 60})
		require.NoError(t, err)
		assert.Greater(t, cetM, 0.0)
		assert.False(t, math.IsNaN(cetM))
	})
}
