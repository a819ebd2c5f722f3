// Package quote composes the scorecard, pricing and unit-economics stages
// into a single priced, sanity-checked loan quote.
package quote

import (
	"math"

	"loan-pricing/internal/calc"
	"loan-pricing/internal/model"
	"loan-pricing/internal/pricing"
	"loan-pricing/internal/scorecard"
	"loan-pricing/internal/unitecon"
)

// Input is one quote request after the external classifier has produced PD.
type Input struct {
	PD         float64
	Principal  float64
	TermMonths int
	Fees       model.FeeSchedule
}

// Quote is the composite pricing result. Ephemeral, never persisted here.
type Quote struct {
	PD    float64 `json:"pd"`
	Score int     `json:"score"`
	Band  string  `json:"band"`

	// Scorecard echoes the anchor parameters used, for auditability.
	Scorecard scorecard.Params `json:"scorecard"`

	RateMonthly   float64      `json:"rate_monthly"`
	RateYearlyEff float64      `json:"rate_yearly_eff"`
	Pricing       pricing.Info `json:"pricing"`

	UnitEconomics unitecon.Result `json:"unit_economics"`

	Installment float64           `json:"installment"`
	CETMonthly  float64           `json:"cet_monthly"`
	CETYearly   float64           `json:"cet_yearly"`
	Fees        model.FeeSchedule `json:"fees"`
}

// Engine holds the load-once configuration bundle. All fields are read-only
// after construction; Build is a pure function of its input.
type Engine struct {
	Scorecard *scorecard.Scorecard
	Pricing   *pricing.Wrapper
	UnitEcon  unitecon.Config
}

// New wires an engine from its three stages.
func New(sc *scorecard.Scorecard, pw *pricing.Wrapper, ue unitecon.Config) *Engine {
	return &Engine{Scorecard: sc, Pricing: pw, UnitEcon: ue}
}

// Build runs score/band -> suggested rate -> unit economics, then the
// installment and effective-cost math, and assembles the quote. InvalidInput
// from any stage propagates verbatim.
func (e *Engine) Build(in Input) (Quote, error) {
	if math.IsNaN(in.PD) || math.IsInf(in.PD, 0) || in.PD < 0 || in.PD > 1 {
		return Quote{}, model.InvalidInput("pd", "must be a finite probability in [0,1], got %v", in.PD)
	}
	if math.IsNaN(in.Principal) || math.IsInf(in.Principal, 0) || in.Principal <= 0 {
		return Quote{}, model.InvalidInput("principal", "must be finite and > 0, got %v", in.Principal)
	}
	if in.TermMonths <= 0 {
		return Quote{}, model.InvalidInput("term_months", "must be > 0, got %d", in.TermMonths)
	}

	assessment, err := e.Scorecard.ScoreAndBand(in.PD)
	if err != nil {
		return Quote{}, err
	}

	rate, err := e.Pricing.SuggestRate(in.PD)
	if err != nil {
		return Quote{}, err
	}

	ue, err := unitecon.Evaluate(in.PD, in.Principal, in.TermMonths, rate, e.UnitEcon)
	if err != nil {
		return Quote{}, err
	}

	installment, err := calc.PMT(rate, in.TermMonths, in.Principal)
	if err != nil {
		return Quote{}, err
	}
	cetM, cetY, err := calc.CETFromFlows(in.Principal, rate, in.TermMonths, in.Fees)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		PD:            in.PD,
		Score:         assessment.Score,
		Band:          assessment.Band,
		Scorecard:     e.Scorecard.Params(),
		RateMonthly:   rate,
		RateYearlyEff: calc.EffAnnualFromMonthly(rate),
		Pricing:       e.Pricing.Info(),
		UnitEconomics: ue,
		Installment:   installment,
		CETMonthly:    cetM,
		CETYearly:     cetY,
		Fees:          in.Fees,
	}, nil
}

// Schedule expands the amortization schedule for an already-built quote.
func (e *Engine) Schedule(in Input) ([]calc.ScheduleRow, error) {
	rate, err := e.Pricing.SuggestRate(in.PD)
	if err != nil {
		return nil, err
	}
	return calc.AmortizationSchedule(in.Principal, rate, in.TermMonths)
}
