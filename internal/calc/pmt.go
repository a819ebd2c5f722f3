// Package calc holds the closed-form loan math: Price-table installments,
// amortization schedules, and fee-aware effective cost (CET) via IRR.
package calc

import (
	"math"

	"loan-pricing/internal/model"
)

// PMT returns the fixed monthly installment for a Price-table loan.
// rateMonthly is a decimal rate (0.025 = 2.5% a.m.). A zero rate degenerates
// to straight-line principal repayment.
func PMT(rateMonthly float64, nMonths int, pv float64) (float64, error) {
	if nMonths <= 0 {
		return 0, model.InvalidInput("term_months", "must be > 0, got %d", nMonths)
	}
	if math.IsNaN(pv) || math.IsInf(pv, 0) || pv <= 0 {
		return 0, model.InvalidInput("principal", "must be finite and > 0, got %v", pv)
	}
	if math.IsNaN(rateMonthly) || math.IsInf(rateMonthly, 0) || rateMonthly < 0 {
		return 0, model.InvalidInput("rate_monthly", "must be finite and >= 0, got %v", rateMonthly)
	}
	if rateMonthly == 0 {
		return pv / float64(nMonths), nil
	}
	growth := math.Pow(1+rateMonthly, float64(nMonths))
	return pv * (rateMonthly * growth) / (growth - 1), nil
}

// EffAnnualFromMonthly compounds a monthly rate to its effective annual
// equivalent: (1+i)^12 - 1. With no fees this equals the annual CET.
func EffAnnualFromMonthly(rateMonthly float64) float64 {
	return math.Pow(1+rateMonthly, 12) - 1
}

// ScheduleRow is one period of an amortization schedule. Monetary fields
// are rounded to cents; the row set is an audit artifact, not an input to
// further math.
type ScheduleRow struct {
	Period         int     `json:"period"`
	OpeningBalance float64 `json:"opening_balance"`
	Interest       float64 `json:"interest"`
	Amortization   float64 `json:"amortization"`
	Installment    float64 `json:"installment"`
	ClosingBalance float64 `json:"closing_balance"`
}

// AmortizationSchedule expands a Price-table loan into per-month rows.
func AmortizationSchedule(pv, rateMonthly float64, nMonths int) ([]ScheduleRow, error) {
	pmt, err := PMT(rateMonthly, nMonths, pv)
	if err != nil {
		return nil, err
	}
	rows := make([]ScheduleRow, 0, nMonths)
	balance := pv
	for t := 1; t <= nMonths; t++ {
		interest := balance * rateMonthly
		amort := pmt - interest
		closing := balance - amort
		rows = append(rows, ScheduleRow{
			Period:         t,
			OpeningBalance: roundCents(balance),
			Interest:       roundCents(interest),
			Amortization:   roundCents(amort),
			Installment:    roundCents(pmt),
			ClosingBalance: roundCents(math.Max(closing, 0)),
		})
		balance = closing
	}
	return rows, nil
}

func roundCents(x float64) float64 {
	return math.Round(x*100) / 100
}
