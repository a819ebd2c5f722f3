package model

// RiskAssessment is the per-request result of the scorecard transform.
// Computed from a probability of default, never mutated afterwards.
type RiskAssessment struct {
	// PD is the 12-month probability of default, as supplied (pre-clip).
	PD float64
	// Score is the 0..1000 scorecard score after clipping.
	Score int
	// Band is the discrete risk tier the score falls into (e.g. "A".."E").
	Band string
}

// RateCaps bounds the suggested monthly rate. Policy, not model output.
type RateCaps struct {
	MinRateMonthly float64 `yaml:"min_rate_monthly" json:"min_rate_monthly"`
	MaxRateMonthly float64 `yaml:"max_rate_monthly" json:"max_rate_monthly"`
}

// Clip clamps a monthly rate into the cap range.
func (c RateCaps) Clip(rate float64) float64 {
	if rate < c.MinRateMonthly {
		return c.MinRateMonthly
	}
	if rate > c.MaxRateMonthly {
		return c.MaxRateMonthly
	}
	return rate
}
