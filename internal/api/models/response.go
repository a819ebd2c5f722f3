package models

// QuoteResponse represents the composite pricing result.
// Rates are rounded to 6 decimals and monetary amounts to cents at this
// boundary; the core keeps full precision.
type QuoteResponse struct {
	PD    float64 `json:"pd"`
	Score int     `json:"score"`
	Band  string  `json:"band"`

	Scorecard ScorecardParams `json:"scorecard"`

	RateMonthly   float64     `json:"rate_monthly"`
	RateYearlyEff float64     `json:"rate_yearly_eff"`
	Pricing       PricingInfo `json:"pricing"`

	UnitEconomics *UnitEconomics `json:"unit_economics,omitempty"`

	Installment *float64     `json:"installment,omitempty"`
	CETMonthly  *float64     `json:"cet_monthly,omitempty"`
	CETYearly   *float64     `json:"cet_yearly,omitempty"`
	Fees        *FeesPayload `json:"fees,omitempty"`

	Schedule []ScheduleRow `json:"schedule,omitempty"`
}

// ScorecardParams echoes the anchors used, for auditability
type ScorecardParams struct {
	S0  float64 `json:"s0"`
	O0  float64 `json:"o0"`
	PDO float64 `json:"pdo"`
}

// PricingInfo describes which pricing path produced the rate
type PricingInfo struct {
	Mode       string   `json:"mode"`
	PolyDegree int      `json:"poly_degree"`
	Caps       RateCaps `json:"caps"`
}

// RateCaps are the policy bounds applied to the suggested rate
type RateCaps struct {
	MinRateMonthly float64 `json:"min_rate_monthly"`
	MaxRateMonthly float64 `json:"max_rate_monthly"`
}

// UnitEconomics is the go/no-go sub-record of a quote
type UnitEconomics struct {
	ELOverPrincipal      float64 `json:"el_over_principal"`
	RiskComponentMonthly float64 `json:"risk_component_monthly"`
	Funding              float64 `json:"funding"`
	Opex                 float64 `json:"opex"`
	MarginTarget         float64 `json:"margin_target"`
	IMinMonthly          float64 `json:"i_min_monthly"`
	RateVsMinBps         int     `json:"rate_vs_min_bps"`
	OKToLend             bool    `json:"ok_to_lend"`
}

// ScheduleRow is one amortization period
type ScheduleRow struct {
	Period         int     `json:"period"`
	OpeningBalance float64 `json:"opening_balance"`
	Interest       float64 `json:"interest"`
	Amortization   float64 `json:"amortization"`
	Installment    float64 `json:"installment"`
	ClosingBalance float64 `json:"closing_balance"`
}

// BatchQuoteResponse returns per-applicant quotes ranked by spread plus a
// portfolio summary
type BatchQuoteResponse struct {
	Results []BatchQuoteResult `json:"results"`
	Summary PortfolioSummary   `json:"summary"`
}

// BatchQuoteResult is one ranked batch row
type BatchQuoteResult struct {
	Rank  int           `json:"rank"`
	ID    string        `json:"id,omitempty"`
	Quote QuoteResponse `json:"quote"`
}

// PortfolioSummary aggregates a batch run
type PortfolioSummary struct {
	Count           int            `json:"count"`
	Skipped         int            `json:"skipped"`
	Approved        int            `json:"approved"`
	ApprovalRate    float64        `json:"approval_rate"`
	MeanRateMonthly float64        `json:"mean_rate_monthly"`
	MinRateMonthly  float64        `json:"min_rate_monthly"`
	MaxRateMonthly  float64        `json:"max_rate_monthly"`
	MeanSpreadBps   float64        `json:"mean_spread_bps"`
	BandCounts      map[string]int `json:"band_counts"`
}

// ScorecardResponse describes the configured scorecard
type ScorecardResponse struct {
	Scorecard ScorecardParams `json:"scorecard"`
	PDFloor   float64         `json:"pd_floor"`
	PDCeiling float64         `json:"pd_ceiling"`
	ScoreMin  int             `json:"score_min"`
	ScoreMax  int             `json:"score_max"`
	Bands     []BandCut       `json:"bands"`
}

// BandCut is one band cutoff, best bands first
type BandCut struct {
	Band string `json:"band"`
	Min  int    `json:"min"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
