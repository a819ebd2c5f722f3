package calc

import (
	"math"

	"loan-pricing/internal/model"
)

// Cash flow convention for CET:
//
//	t=0:    +net disbursement (principal minus upfront fees/discounts)
//	t=1..n: -(installment + monthly fee)
//
// The monthly CET is the IRR of these flows; without fees it collapses to
// the contract rate.

// NPV discounts cashflows at a periodic rate, t starting at 0.
func NPV(rate float64, cashflows []float64) float64 {
	total := 0.0
	for t, cf := range cashflows {
		total += cf / math.Pow(1+rate, float64(t))
	}
	return total
}

const (
	irrMaxNewtonIter = 100
	irrMaxBisectIter = 200
	irrTol           = 1e-10
)

// IRR finds the periodic rate that zeroes the NPV. Newton-Raphson first;
// if it diverges or leaves the bracket, falls back to bisection. The guess
// (the contract rate) converges in one step for fee-free flows.
func IRR(cashflows []float64, guess float64) float64 {
	lo, hi := -0.9999, 1.0

	dnpv := func(rate float64) float64 {
		s := 0.0
		for t := 1; t < len(cashflows); t++ {
			s -= float64(t) * cashflows[t] / math.Pow(1+rate, float64(t+1))
		}
		return s
	}

	r := guess
	for i := 0; i < irrMaxNewtonIter; i++ {
		f := NPV(r, cashflows)
		if math.Abs(f) < irrTol {
			return r
		}
		df := dnpv(r)
		if df == 0 || math.IsNaN(df) || math.IsInf(df, 0) {
			break
		}
		next := r - f/df
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= lo || next >= hi {
			break
		}
		r = next
	}

	// Bisection fallback; widen the bracket once if it doesn't straddle.
	a, b := lo, hi
	fa, fb := NPV(a, cashflows), NPV(b, cashflows)
	if fa*fb > 0 {
		a, b = -0.9999, 3.0
		fa, fb = NPV(a, cashflows), NPV(b, cashflows)
		if fa*fb > 0 {
			return guess
		}
	}
	for i := 0; i < irrMaxBisectIter; i++ {
		m := (a + b) / 2
		fm := NPV(m, cashflows)
		if math.Abs(fm) < irrTol {
			return m
		}
		if fa*fm <= 0 {
			b = m
		} else {
			a, fa = m, fm
		}
	}
	return (a + b) / 2
}

// CETFromFlows computes the monthly and annual effective cost of credit for
// a Price-table loan with an optional fee schedule.
func CETFromFlows(pv, rateMonthly float64, nMonths int, fees model.FeeSchedule) (cetMonthly, cetYearly float64, err error) {
	pmt, err := PMT(rateMonthly, nMonths, pv)
	if err != nil {
		return 0, 0, err
	}

	netDisbursement := pv - fees.Upfront - fees.DisbursementDiscount
	if netDisbursement <= 0 {
		return 0, 0, model.InvalidInput("fees", "upfront fees %g consume the whole disbursement of %g",
			fees.Upfront+fees.DisbursementDiscount, pv)
	}

	cashflows := make([]float64, 0, nMonths+1)
	cashflows = append(cashflows, netDisbursement)
	outflow := -(pmt + fees.Monthly)
	for t := 0; t < nMonths; t++ {
		cashflows = append(cashflows, outflow)
	}

	cetMonthly = IRR(cashflows, rateMonthly)
	cetYearly = EffAnnualFromMonthly(cetMonthly)
	return cetMonthly, cetYearly, nil
}
